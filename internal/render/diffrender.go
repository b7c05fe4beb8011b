package render

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/klauseduard/hl7-tools/internal/defs"
	"github.com/klauseduard/hl7-tools/internal/diff"
)

// DiffOptions controls comparison rendering.
type DiffOptions struct {
	Color         bool
	ShowIdentical bool
}

const diffValueWidth = 18

// Diff renders a MessageDiff as a table of changed fields. Identical
// segments and fields are skipped unless ShowIdentical is set.
func Diff(d *diff.MessageDiff, opts DiffOptions) string {
	var b strings.Builder

	typeA, typeB := d.TypeA, d.TypeB
	if typeA == "" {
		typeA = "???"
	}
	if typeB == "" {
		typeB = "???"
	}
	verA, verB := "v?", "v?"
	if d.VersionA != "" {
		verA = "v" + d.VersionA
	}
	if d.VersionB != "" {
		verB = "v" + d.VersionB
	}
	fmt.Fprintf(&b, "%s %s %s  vs  %s %s\n",
		paint(bold, "Compare:", opts.Color),
		paint(rose, typeA, opts.Color), verA,
		paint(rose, typeB, opts.Color), verB)

	s := d.Summary
	diffCount := s.Modified + s.AOnly + s.BOnly
	segCount := 0
	for _, sd := range d.Segments {
		if sd.Status != diff.StatusIdentical {
			segCount++
		}
	}
	var parts []string
	if s.Modified > 0 {
		parts = append(parts, paint(orange, fmt.Sprintf("%d modified", s.Modified), opts.Color))
	}
	if s.AOnly > 0 {
		parts = append(parts, paint(red, fmt.Sprintf("%d A-only", s.AOnly), opts.Color))
	}
	if s.BOnly > 0 {
		parts = append(parts, paint(green, fmt.Sprintf("%d B-only", s.BOnly), opts.Color))
	}
	summaryText := "no differences"
	if len(parts) > 0 {
		summaryText = strings.Join(parts, ", ")
	}
	fmt.Fprintf(&b, "%d %s across %d %s: %s\n",
		diffCount, plural("difference", diffCount), segCount, plural("segment", segCount), summaryText)

	b.WriteString(strings.Repeat("═", 90) + "\n")
	b.WriteString(paint(dim, fmt.Sprintf("%-12s %-28s %-20s %-20s Status", "Address", "Field Name", "Message A", "Message B"), opts.Color) + "\n")
	b.WriteString(strings.Repeat("─", 90) + "\n")

	genA := defs.ResolveVersion(d.VersionA)
	genB := defs.ResolveVersion(d.VersionB)

	for _, sd := range d.Segments {
		if !opts.ShowIdentical && sd.Status == diff.StatusIdentical {
			continue
		}
		hasDiffs := false
		for _, fd := range sd.Fields {
			if fd.Status != diff.StatusIdentical {
				hasDiffs = true
				break
			}
		}
		if !opts.ShowIdentical && !hasDiffs {
			continue
		}

		// Field names come from A's generation except for B-only segments.
		gen := genA
		if sd.Status == diff.StatusBOnly {
			gen = genB
		}
		b.WriteString(diffSegmentHeader(sd, gen, opts))

		for _, fd := range sd.Fields {
			if !opts.ShowIdentical && fd.Status == diff.StatusIdentical {
				continue
			}
			b.WriteString(diffFieldRow(sd.Name, fd, gen, opts))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func diffSegmentHeader(sd diff.SegmentDiff, gen string, opts DiffOptions) string {
	segDesc := ""
	if def, ok := defs.Segment(sd.Name, gen); ok {
		segDesc = def.Name
	}
	label := sd.Name
	if sd.RepIndex > 1 {
		label = fmt.Sprintf("%s[%d]", sd.Name, sd.RepIndex)
	}

	badge := ""
	switch sd.Status {
	case diff.StatusAOnly:
		badge = " " + paint(red, "[A only]", opts.Color)
	case diff.StatusBOnly:
		badge = " " + paint(green, "[B only]", opts.Color)
	}

	var line string
	if segDesc != "" {
		line = fmt.Sprintf("── %s  %s%s ",
			paint(rose+bold, label, opts.Color), paint(rose, segDesc, opts.Color), badge)
	} else {
		line = fmt.Sprintf("── %s%s ", paint(rose+bold, label, opts.Color), badge)
	}
	if pad := 90 - visibleLen(line); pad > 0 {
		line += strings.Repeat("─", pad)
	}
	return line + "\n"
}

func diffFieldRow(segName string, fd diff.FieldDiff, gen string, opts DiffOptions) string {
	fname := ""
	if def, ok := defs.Field(segName, fd.FieldNum, gen); ok {
		fname = def.Name
	}

	var statusStr, border, dispA, dispB string
	switch fd.Status {
	case diff.StatusModified:
		statusStr = paint(orange, "modified", opts.Color)
		border = paint(orange, "│ ", opts.Color)
		dispA, dispB = highlightPair(fd.ValueA, fd.ValueB, diffValueWidth, opts.Color)
	case diff.StatusAOnly:
		statusStr = paint(red, "A only", opts.Color)
		border = paint(red, "│ ", opts.Color)
		dispA = truncate(fd.ValueA, diffValueWidth)
		dispB = paint(gray, "—", opts.Color)
	case diff.StatusBOnly:
		statusStr = paint(green, "B only", opts.Color)
		border = paint(green, "│ ", opts.Color)
		dispA = paint(gray, "—", opts.Color)
		dispB = truncate(fd.ValueB, diffValueWidth)
	default:
		statusStr = paint(gray, "identical", opts.Color)
		border = "  "
		dispA = truncate(fd.ValueA, diffValueWidth)
		dispB = truncate(fd.ValueB, diffValueWidth)
	}

	addrCol := paint(blue, fmt.Sprintf("%-12s", fd.Address), opts.Color)
	nameCol := fmt.Sprintf("%-28s", "")
	if fname != "" {
		nameCol = paint(green, fmt.Sprintf("%-28s", fname), opts.Color)
	}
	padA := dispA + strings.Repeat(" ", max(0, 20-visibleLen(dispA)))
	padB := dispB + strings.Repeat(" ", max(0, 20-visibleLen(dispB)))
	return fmt.Sprintf("%s%s%s%s %s %s\n", border, addrCol, nameCol, padA, padB, statusStr)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) > maxLen+1 {
		return string(r[:maxLen]) + "…"
	}
	return s
}

// diffCell is one rune of a rendered side, flagged when it belongs to a
// changed region.
type diffCell struct {
	r  rune
	hl bool
}

// highlightPair renders both sides of a modified value with the changed
// runs in inverse video, windowed so the first change stays visible
// even when a long common prefix would otherwise push it off screen.
func highlightPair(valA, valB string, maxLen int, color bool) (string, string) {
	if !color {
		return truncate(valA, maxLen), truncate(valB, maxLen)
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(valA, valB, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var cellsA, cellsB []diffCell
	for _, seg := range diffs {
		switch seg.Type {
		case diffmatchpatch.DiffEqual:
			for _, r := range seg.Text {
				cellsA = append(cellsA, diffCell{r, false})
				cellsB = append(cellsB, diffCell{r, false})
			}
		case diffmatchpatch.DiffDelete:
			for _, r := range seg.Text {
				cellsA = append(cellsA, diffCell{r, true})
			}
		case diffmatchpatch.DiffInsert:
			for _, r := range seg.Text {
				cellsB = append(cellsB, diffCell{r, true})
			}
		}
	}
	return renderCells(cellsA, maxLen), renderCells(cellsB, maxLen)
}

func renderCells(cells []diffCell, maxLen int) string {
	start := 0
	if len(cells) > maxLen+1 {
		firstChange := -1
		for i, c := range cells {
			if c.hl {
				firstChange = i
				break
			}
		}
		if firstChange > maxLen/2 {
			start = firstChange - maxLen/2
		}
	}

	var b strings.Builder
	if start > 0 {
		b.WriteRune('…')
	}
	shown, truncated := 0, false
	active := false
	for i := start; i < len(cells); i++ {
		if shown >= maxLen {
			truncated = i < len(cells)
			break
		}
		c := cells[i]
		if c.hl && !active {
			b.WriteString(inverse + orange)
			active = true
		} else if !c.hl && active {
			b.WriteString(reset)
			active = false
		}
		b.WriteRune(c.r)
		shown++
	}
	if active {
		b.WriteString(reset)
	}
	if truncated {
		b.WriteRune('…')
	}
	return b.String()
}
