// Package render produces terminal output for parsed messages and
// comparison reports: colored field tables, encoding headers, raw
// segment dumps. Color is opt-in; every function degrades to plain
// text when it is off.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/klauseduard/hl7-tools/internal/defs"
	"github.com/klauseduard/hl7-tools/internal/encoding"
	"github.com/klauseduard/hl7-tools/internal/hl7"
	"github.com/klauseduard/hl7-tools/internal/profile"
)

const (
	reset     = "\033[0m"
	bold      = "\033[1m"
	dim       = "\033[2m"
	inverse   = "\033[7m"
	rose      = "\033[38;5;211m" // segment names
	green     = "\033[38;5;150m" // field names
	orange    = "\033[38;5;216m" // data types
	blue      = "\033[38;5;111m" // addresses
	sapphire  = "\033[38;5;117m" // component addresses
	yellow    = "\033[38;5;222m" // warnings, repetition badges
	red       = "\033[38;5;210m" // errors
	gray      = "\033[38;5;245m" // dim/empty
	teal      = "\033[38;5;116m" // encoding and profile info
)

// Options controls message table rendering.
type Options struct {
	Color     bool
	Verbose   bool // expand components, subcomponents and repetitions
	ShowEmpty bool
	Version   string // definition generation override; empty resolves from the message
	Profile   *profile.Profile
}

func paint(code, text string, on bool) string {
	if !on {
		return text
	}
	return code + text + reset
}

var ansiPattern = regexp.MustCompile(`\033\[[^m]*m`)

// visibleLen is the on-screen width of s, ignoring escape sequences.
func visibleLen(s string) int {
	return len([]rune(ansiPattern.ReplaceAllString(s, "")))
}

// Message renders a parsed message as a field table.
func Message(msg *hl7.ParsedMessage, opts Options) string {
	gen := opts.Version
	if gen == "" {
		gen = defs.ResolveVersion(msg.Version)
	}

	var b strings.Builder

	msgType := msg.MessageType
	if msgType == "" {
		msgType = "???"
	}
	verDisplay := "v?"
	if msg.Version != "" {
		verDisplay = "v" + msg.Version
	}
	header := fmt.Sprintf("%s %s | %d segments",
		paint(bold, msgType, opts.Color), verDisplay, len(msg.Segments))
	if opts.Profile != nil {
		header += " | " + paint(teal, "Profile: "+opts.Profile.Name, opts.Color)
	}
	b.WriteString(header + "\n")

	if opts.Profile != nil {
		if line := profileSummaryLine(msg, opts.Profile, opts.Color); line != "" {
			b.WriteString(line + "\n")
		}
	}

	b.WriteString(strings.Repeat("═", 72) + "\n")

	for _, seg := range msg.Segments {
		b.WriteString(segmentHeader(seg, gen, opts, 72))
		renderSegmentFields(&b, seg, gen, opts)
	}
	b.WriteString("\n")
	return b.String()
}

// segmentHeader draws the "── PID  Patient Identification ───" rule line.
func segmentHeader(seg *hl7.Segment, gen string, opts Options, width int) string {
	segDesc := ""
	if def, ok := defs.Segment(seg.Name, gen); ok {
		segDesc = def.Name
	}
	overlay, hasOverlay := opts.Profile.Segment(seg.Name)
	if segDesc == "" && hasOverlay {
		segDesc = overlay.Name
	}

	label := seg.Name
	if seg.RepIndex > 1 {
		label = fmt.Sprintf("%s[%d]", seg.Name, seg.RepIndex)
	}

	badge := ""
	if hasOverlay {
		badge = " " + paint(teal, "[Profile]", opts.Color)
	}
	if opts.Profile != nil && len(opts.Profile.Segments) > 0 && !hasOverlay {
		badge += " " + paint(yellow, "[Unexpected]", opts.Color)
	}

	var line string
	if segDesc != "" {
		line = fmt.Sprintf("── %s  %s%s ",
			paint(rose+bold, label, opts.Color), paint(rose, segDesc, opts.Color), badge)
	} else {
		line = fmt.Sprintf("── %s%s ", paint(rose+bold, label, opts.Color), badge)
	}
	if pad := width - visibleLen(line); pad > 0 {
		line += strings.Repeat("─", pad)
	}
	return line + "\n"
}

func renderSegmentFields(b *strings.Builder, seg *hl7.Segment, gen string, opts Options) {
	// The OBX-5 type is dynamic: OBX-2 names it.
	obx5Type := ""
	if seg.Name == "OBX" {
		if f := seg.Field(2); f != nil {
			obx5Type = f.Value
		}
	}

	for _, fld := range seg.Fields {
		if fld.Value == "" && fld.RawValue == "" && !opts.ShowEmpty {
			continue
		}

		fieldDef, haveDef := defs.Field(seg.Name, fld.FieldNum, gen)
		dt, dtSuffix := "", ""
		if haveDef {
			dt = fieldDef.Type
			if dt == "*" && seg.Name == "OBX" && fld.FieldNum == 5 && obx5Type != "" {
				dt = obx5Type
				dtSuffix = "←2"
			}
		}

		fname := ""
		if haveDef {
			fname = fieldDef.Name
		}
		pFld, havePFld := opts.Profile.Field(seg.Name, fld.FieldNum)
		if havePFld && pFld.Name != "" {
			fname = pFld.Name
		}

		displayVal := fld.Value
		if havePFld && fld.Value != "" {
			if mapped, ok := pFld.ValueMap[fld.Value]; ok {
				displayVal = fld.Value + " " + paint(teal, "("+mapped+")", opts.Color)
			}
		}
		if displayVal == "" && fld.RawValue == "" {
			displayVal = paint(gray, "(empty)", opts.Color)
		}

		repBadge := ""
		if fld.HasRepetitions() {
			repBadge = " " + paint(yellow, fmt.Sprintf("[%dx]", len(fld.Repetitions)), opts.Color)
		}

		valBadge := ""
		if havePFld {
			if pFld.Required && fld.Value == "" {
				valBadge += " " + paint(red, "●required", opts.Color)
			}
			if len(pFld.ValueMap) > 0 && fld.Value != "" {
				if _, ok := pFld.ValueMap[valueMapKey(fld)]; !ok {
					if _, ok := pFld.ValueMap[fld.Value]; !ok {
						valBadge += " " + paint(orange, "●not in map", opts.Color)
					}
				}
			}
		}

		addrCol := paint(blue, fmt.Sprintf("%-10s", fld.Address), opts.Color)
		nameCol := fmt.Sprintf("%-32s", "")
		if fname != "" {
			nameCol = paint(green, fmt.Sprintf("%-32s", fname), opts.Color)
		}
		dtCol := fmt.Sprintf("%-5s", "")
		if dt != "" {
			dtCol = paint(orange, fmt.Sprintf("%-5s", dt+dtSuffix), opts.Color)
		}
		fmt.Fprintf(b, "%s %s %s %s%s%s\n", addrCol, nameCol, dtCol, displayVal, repBadge, valBadge)

		if opts.Verbose {
			renderComponents(b, fld.Address, fld.Components, dt, opts)
			renderRepetitions(b, fld, dt, opts)
		}
	}
}

// valueMapKey is the text a value map is checked against: the first
// component when the field decomposes, the display value otherwise.
func valueMapKey(fld *hl7.Field) string {
	if len(fld.Components) > 0 {
		return fld.Components[0].Value
	}
	return fld.Value
}

func renderComponents(b *strings.Builder, addr string, comps []hl7.Component, dt string, opts Options) {
	var compDefs []defs.ComponentDef
	if info, ok := defs.DataType(dt); ok {
		compDefs = info.Components
	}
	for _, comp := range comps {
		if comp.Value == "" && !opts.ShowEmpty {
			continue
		}
		compName, compDT := "", ""
		if comp.Index <= len(compDefs) {
			compName = compDefs[comp.Index-1].Name
			compDT = compDefs[comp.Index-1].Type
		}
		compAddr := fmt.Sprintf("%s.%d", addr, comp.Index)
		compVal := comp.Value
		if compVal == "" {
			compVal = paint(gray, "(empty)", opts.Color)
		}

		cAddr := paint(sapphire, fmt.Sprintf("  %-10s", compAddr), opts.Color)
		cName := fmt.Sprintf("%-30s", "")
		if compName != "" {
			cName = paint(green, fmt.Sprintf("%-30s", compName), opts.Color)
		}
		cDT := fmt.Sprintf("%-5s", "")
		if compDT != "" {
			cDT = paint(orange, fmt.Sprintf("%-5s", compDT), opts.Color)
		}
		fmt.Fprintf(b, "%s   %s %s %s\n", cAddr, cName, cDT, compVal)

		if len(comp.Subcomponents) > 1 {
			for si, subval := range comp.Subcomponents {
				if subval == "" && !opts.ShowEmpty {
					continue
				}
				subAddr := fmt.Sprintf("%s.%d.%d", addr, comp.Index, si+1)
				sAddr := paint(gray, fmt.Sprintf("    %-10s", subAddr), opts.Color)
				fmt.Fprintf(b, "%s     %-30s %-5s %s\n", sAddr, "", "", subval)
			}
		}
	}
}

// renderRepetitions lists the second and later occurrences of a
// repeating field; the first one is the field row itself.
func renderRepetitions(b *strings.Builder, fld *hl7.Field, dt string, opts Options) {
	if !fld.HasRepetitions() {
		return
	}
	var compDefs []defs.ComponentDef
	if info, ok := defs.DataType(dt); ok {
		compDefs = info.Components
	}
	for _, rep := range fld.Repetitions[1:] {
		repAddr := fmt.Sprintf("%s~%d", fld.Address, rep.Index)
		rVal := rep.Value
		if rVal == "" {
			rVal = paint(gray, "(empty)", opts.Color)
		}
		rAddr := paint(yellow, fmt.Sprintf("  %-10s", repAddr), opts.Color)
		fmt.Fprintf(b, "%s   %-30s %-5s %s\n", rAddr, "", "", rVal)

		for _, comp := range rep.Components {
			if comp.Value == "" && !opts.ShowEmpty {
				continue
			}
			compName, compDT := "", ""
			if comp.Index <= len(compDefs) {
				compName = compDefs[comp.Index-1].Name
				compDT = compDefs[comp.Index-1].Type
			}
			compAddr := fmt.Sprintf("%s~%d.%d", fld.Address, rep.Index, comp.Index)
			cAddr := paint(sapphire, fmt.Sprintf("    %-10s", compAddr), opts.Color)
			cName := fmt.Sprintf("%-28s", "")
			if compName != "" {
				cName = paint(green, fmt.Sprintf("%-28s", compName), opts.Color)
			}
			cDT := fmt.Sprintf("%-5s", "")
			if compDT != "" {
				cDT = paint(orange, fmt.Sprintf("%-5s", compDT), opts.Color)
			}
			fmt.Fprintf(b, "%s     %s %s %s\n", cAddr, cName, cDT, comp.Value)
		}
	}
}

// profileSummaryLine condenses profile validation into one warning line,
// or returns "" when the message satisfies the overlay.
func profileSummaryLine(msg *hl7.ParsedMessage, p *profile.Profile, color bool) string {
	if p == nil || len(p.Segments) == 0 {
		return ""
	}
	present := map[string]bool{}
	for _, seg := range msg.Segments {
		present[seg.Name] = true
	}
	var missing []string
	for name := range p.Segments {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	seen := map[string]bool{}
	var unexpected []string
	for _, seg := range msg.Segments {
		if _, ok := p.Segments[seg.Name]; !ok && !seen[seg.Name] {
			seen[seg.Name] = true
			unexpected = append(unexpected, seg.Name)
		}
	}

	requiredEmpty, valueMismatch := 0, 0
	for _, seg := range msg.Segments {
		overlay, ok := p.Segment(seg.Name)
		if !ok {
			continue
		}
		for key, pFld := range overlay.Fields {
			num := 0
			if _, err := fmt.Sscanf(key, "%d", &num); err != nil || num <= 0 {
				continue
			}
			fld := seg.Field(num)
			val := ""
			if fld != nil {
				val = fld.Value
			}
			if pFld.Required && val == "" {
				requiredEmpty++
			}
			if len(pFld.ValueMap) > 0 && val != "" {
				_, okKey := pFld.ValueMap[valueMapKey(fld)]
				_, okVal := pFld.ValueMap[val]
				if !okKey && !okVal {
					valueMismatch++
				}
			}
		}
	}

	var parts []string
	if requiredEmpty > 0 {
		parts = append(parts, paint(red, fmt.Sprintf("%d required %s empty", requiredEmpty, plural("field", requiredEmpty)), color))
	}
	if valueMismatch > 0 {
		parts = append(parts, paint(orange, fmt.Sprintf("%d %s not in map", valueMismatch, plural("value", valueMismatch)), color))
	}
	if len(missing) > 0 {
		parts = append(parts, paint(blue, "Missing segments: "+strings.Join(missing, ", "), color))
	}
	if len(unexpected) > 0 {
		parts = append(parts, paint(yellow, "Unexpected segments: "+strings.Join(unexpected, ", "), color))
	}
	if len(parts) == 0 {
		return ""
	}
	return "⚠ Profile validation: " + strings.Join(parts, " | ")
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// EncodingHeader reports the detected byte encoding alongside the
// message's declared character set, flagging disagreements.
func EncodingHeader(res encoding.Result, declared string, color bool) string {
	var parts []string

	detected := res.Encoding
	if detected != "" {
		label := detected
		if res.HasBOM {
			label += " BOM"
		}
		parts = append(parts, "Detected: "+paint(teal, label, color))
	}

	if declared != "" {
		mapped, known := encoding.MSH18ToEncoding[declared]
		if !known {
			mapped = declared
		}
		parts = append(parts, fmt.Sprintf("MSH-18: %s (%s)", paint(teal, declared, color), mapped))
		if known && !encoding.DeclaredMatches(declared, res) {
			parts = append(parts, paint(yellow,
				fmt.Sprintf("[mismatch: detected %s vs declared %s]", detected, mapped), color))
		}
	}
	return strings.Join(parts, " | ")
}

// FieldValue extracts one field's raw value by address, e.g. "PID-5" or
// "OBX[2]-3". The second return is false when the address is malformed
// or nothing matches.
func FieldValue(msg *hl7.ParsedMessage, spec string) (string, bool) {
	fld, err := hl7.FieldByAddress(msg, spec)
	if err != nil {
		return "", false
	}
	return fld.RawValue, true
}

// Raw dumps the normalized segment lines, one per output line.
func Raw(msg *hl7.ParsedMessage) string {
	var b strings.Builder
	for _, seg := range msg.Segments {
		b.WriteString(seg.RawLine)
		b.WriteByte('\n')
	}
	return b.String()
}
