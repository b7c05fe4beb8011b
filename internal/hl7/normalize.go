package hl7

import (
	"regexp"
	"strings"
)

// Placeholder tokens that log viewers substitute for control characters.
// <CR> carries meaning (a segment boundary); the rest are framing noise.
var (
	crPlaceholder    = regexp.MustCompile(`(?i)<CR>`)
	noisePlaceholder = regexp.MustCompile(`(?i)<(?:VT|SB|FS|EB)>`)
)

// segmentBoundary matches a known segment code followed by a field
// separator. Used by the last-resort scan when a message arrives as a
// single line with no separators at all. Z-segments are matched by shape.
var segmentBoundary = regexp.MustCompile(
	`(?:MSH|MSA|EVN|PID|PV1|PV2|NK1|ORC|OBR|OBX|DG1|IN1|AL1|GT1|NTE|ERR|QRD|QRF|MRG|SCH|TXA|DSP|ZDS|ZPD|Z[A-Z][A-Z0-9])\|`)

// Normalize turns raw input of unknown provenance into clean segment
// lines. It tolerates MLLP framing, log-escaped control characters,
// mixed line endings, and editor-wrapped long lines, trying each
// interpretation in order of reliability:
//
//  1. strip MLLP start/end-block framing,
//  2. replace log placeholder tokens,
//  3. collapse CRLF to CR,
//  4. split on CR, repairing accidental mid-segment wraps,
//  5. split on LF,
//  6. scan for known segment codes inside a single unbroken line,
//  7. give up and treat the whole input as one segment.
//
// The result never contains blank lines. Empty or all-whitespace input
// yields an empty slice.
func Normalize(raw string) []string {
	content := strings.TrimFunc(raw, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' ||
			r == rune(startBlock) || r == rune(endBlock)
	})
	if content == "" {
		return nil
	}

	// Framing bytes may also appear mid-stream when several MLLP frames
	// were concatenated into one capture.
	content = strings.Map(func(r rune) rune {
		if r == rune(startBlock) || r == rune(endBlock) {
			return -1
		}
		return r
	}, content)

	content = crPlaceholder.ReplaceAllString(content, "\r")
	content = noisePlaceholder.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "\r\n", "\r")

	if strings.Contains(content, "\r") {
		return cleanLines(repairCRSplit(content))
	}
	if strings.Contains(content, "\n") {
		return cleanLines(strings.Split(content, "\n"))
	}
	if lines := scanBoundaries(content); lines != nil {
		return cleanLines(lines)
	}
	return cleanLines([]string{content})
}

// repairCRSplit splits on CR while undoing splits that landed inside a
// segment. A fragment that begins with the field separator, or with a
// short leftover line-break run, was wrapped by an editor and belongs to
// the previous fragment. A longer newline-prefixed fragment that does
// not look like a fresh segment is kept as a repeating continuation of
// the previous line.
func repairCRSplit(content string) []string {
	fragments := strings.Split(content, "\r")
	lines := make([]string, 0, len(fragments))
	for i, frag := range fragments {
		if i == 0 || len(lines) == 0 {
			lines = append(lines, frag)
			continue
		}
		if frag == "" {
			continue
		}
		last := len(lines) - 1
		switch {
		case frag[0] == '|':
			lines[last] += frag
		case frag[0] == '\n':
			switch {
			case strings.HasPrefix(frag, "\n|") || len(frag) < 4:
				lines[last] += strings.TrimLeft(frag, "\n")
			case len(frag) > 4 && frag[4] != '|':
				// Wrapped field data, not a segment. Rejoin as a
				// repetition so no characters are lost.
				lines[last] += RepetitionSeparator + frag[1:]
			default:
				lines = append(lines, strings.TrimLeft(frag, "\n"))
			}
		default:
			lines = append(lines, frag)
		}
	}
	return lines
}

// scanBoundaries recovers segments from a single unbroken line by
// cutting in front of every recognized segment code. Returns nil when
// no interior boundary is found.
func scanBoundaries(content string) []string {
	matches := segmentBoundary.FindAllStringIndex(content, -1)
	var cuts []int
	for _, m := range matches {
		if m[0] > 0 {
			cuts = append(cuts, m[0])
		}
	}
	if len(cuts) == 0 {
		return nil
	}
	var lines []string
	prev := 0
	for _, c := range cuts {
		lines = append(lines, content[prev:c])
		prev = c
	}
	return append(lines, content[prev:])
}

func cleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
