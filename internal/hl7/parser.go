package hl7

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSegments is returned when the input contains nothing that can be
// read as an HL7 segment.
var ErrNoSegments = errors.New("hl7: no segments found in input")

// Address renders the canonical field address, e.g. "PID-5" or, for a
// repeated segment, "OBX[3]-5".
func Address(segName string, repIndex, fieldNum int) string {
	if repIndex > 1 {
		return fmt.Sprintf("%s[%d]-%d", segName, repIndex, fieldNum)
	}
	return fmt.Sprintf("%s-%d", segName, fieldNum)
}

// Parse normalizes raw input and builds the message tree. Segment
// occurrence counters restart for every call, and the returned tree
// shares no state with any other parse.
func Parse(raw string) (*ParsedMessage, error) {
	lines := Normalize(raw)
	if len(lines) == 0 {
		return nil, ErrNoSegments
	}

	msg := &ParsedMessage{}
	counts := map[string]int{}
	for _, line := range lines {
		tokens := strings.Split(line, FieldSeparator)
		name := tokens[0]
		if len(name) < 2 {
			continue
		}
		counts[name]++
		seg := &Segment{
			Name:     name,
			RepIndex: counts[name],
			RawLine:  line,
		}
		if name == "MSH" {
			parseMSH(seg, tokens)
			if msg.Version == "" && msg.MessageType == "" && msg.DeclaredCharset == "" {
				extractMetadata(msg, seg)
			}
		} else {
			for i := 1; i < len(tokens); i++ {
				seg.Fields = append(seg.Fields,
					parseField(tokens[i], i, Address(name, seg.RepIndex, i)))
			}
		}
		msg.Segments = append(msg.Segments, seg)
	}
	if len(msg.Segments) == 0 {
		return nil, ErrNoSegments
	}
	return msg, nil
}

// parseMSH handles the header's off-by-one: the field separator
// character itself is MSH-1, so it is synthesized, the encoding
// characters token is MSH-2 taken verbatim, and every later token i
// lands in field i+1.
func parseMSH(seg *Segment, tokens []string) {
	sep := &Field{
		FieldNum: 1,
		Address:  Address("MSH", seg.RepIndex, 1),
		Value:    FieldSeparator,
		RawValue: FieldSeparator,
	}
	seg.Fields = append(seg.Fields, sep)
	if len(tokens) > 1 {
		enc := &Field{
			FieldNum: 2,
			Address:  Address("MSH", seg.RepIndex, 2),
			Value:    tokens[1],
			RawValue: tokens[1],
		}
		seg.Fields = append(seg.Fields, enc)
	}
	for i := 2; i < len(tokens); i++ {
		seg.Fields = append(seg.Fields,
			parseField(tokens[i], i+1, Address("MSH", seg.RepIndex, i+1)))
	}
}

// parseField decomposes one field token. A value without repetition
// separators gets no repetitions entry; a value without component
// separators gets no components. Callers rely on those absences to tell
// structured values from plain ones.
func parseField(raw string, fieldNum int, address string) *Field {
	f := &Field{
		FieldNum: fieldNum,
		Address:  address,
		Value:    raw,
		RawValue: raw,
	}
	if strings.Contains(raw, RepetitionSeparator) {
		reps := strings.Split(raw, RepetitionSeparator)
		f.Repetitions = make([]Repetition, 0, len(reps))
		for i, rep := range reps {
			f.Repetitions = append(f.Repetitions, Repetition{
				Index:      i + 1,
				Value:      rep,
				Components: parseComponents(rep),
			})
		}
		f.Value = reps[0]
		f.Components = parseComponents(reps[0])
		return f
	}
	f.Components = parseComponents(raw)
	return f
}

// parseComponents returns nil when the value holds no component
// separator.
func parseComponents(value string) []Component {
	if !strings.Contains(value, ComponentSeparator) {
		return nil
	}
	parts := strings.Split(value, ComponentSeparator)
	comps := make([]Component, 0, len(parts))
	for i, p := range parts {
		c := Component{Index: i + 1, Value: p}
		if strings.Contains(p, SubcomponentSeparator) {
			c.Subcomponents = strings.Split(p, SubcomponentSeparator)
		}
		comps = append(comps, c)
	}
	return comps
}

// extractMetadata pulls the transport metadata a reader wants up front:
// version (MSH-12, component part only), message type (MSH-9, whole
// value) and declared character set (MSH-18, first repetition only).
func extractMetadata(msg *ParsedMessage, msh *Segment) {
	if f := msh.Field(12); f != nil && f.RawValue != "" {
		msg.Version, _, _ = strings.Cut(f.RawValue, ComponentSeparator)
	}
	if f := msh.Field(9); f != nil && f.RawValue != "" {
		msg.MessageType = f.RawValue
	}
	if f := msh.Field(18); f != nil && f.RawValue != "" {
		msg.DeclaredCharset, _, _ = strings.Cut(f.RawValue, RepetitionSeparator)
	}
}
