// Package hl7 parses HL7 v2.x pipe-delimited messages into an addressable
// segment/field/component tree and supports exact round-trip field editing.
package hl7

// Wire separators. The segment separator is a carriage return; the four
// value separators are declared by MSH-2 but are fixed to their canonical
// characters here, matching what every real-world feed uses.
const (
	SegmentSeparator      = "\r"
	FieldSeparator        = "|"
	ComponentSeparator    = "^"
	RepetitionSeparator   = "~"
	SubcomponentSeparator = "&"
)

// MLLP framing bytes recognized (and stripped) by the normalizer.
const (
	startBlock = '\x0b' // VT
	endBlock   = '\x1c' // FS
)

// Component is a ^-delimited sub-value of a field. Index is 1-based.
// Subcomponents is empty unless the value contains an & separator.
type Component struct {
	Index         int      `json:"index"`
	Value         string   `json:"value"`
	Subcomponents []string `json:"subcomponents,omitempty"`
}

// Repetition is one ~-delimited occurrence of an entire field. Index is
// 1-based.
type Repetition struct {
	Index      int         `json:"index"`
	Value      string      `json:"value"`
	Components []Component `json:"components,omitempty"`
}

// Field is a segment's |-delimited slot.
//
// RawValue always holds the exact text Components and Repetitions were
// last derived from; ReparseField is the only way to change it. Value is
// the first repetition's text. A field with no component separator has
// zero components, not one trivial component; downstream consumers
// depend on that distinction.
type Field struct {
	FieldNum    int          `json:"fieldNum"`
	Address     string       `json:"address"`
	Value       string       `json:"value"`
	RawValue    string       `json:"rawValue"`
	Components  []Component  `json:"components,omitempty"`
	Repetitions []Repetition `json:"repetitions,omitempty"`
}

// HasRepetitions reports whether the field carries true repeating data.
// A single repetition only mirrors the field itself and is not counted.
func (f *Field) HasRepetitions() bool {
	return f != nil && len(f.Repetitions) > 1
}

// Segment is one named record of a message. RepIndex is the 1-based
// occurrence counter among segments sharing the same code, in document
// order, local to one Parse call.
type Segment struct {
	Name     string   `json:"name"`
	RepIndex int      `json:"repIndex"`
	Fields   []*Field `json:"fields"`
	RawLine  string   `json:"rawLine"`
}

// Field returns the segment's field with the given number, or nil.
func (s *Segment) Field(num int) *Field {
	if s == nil {
		return nil
	}
	for _, f := range s.Fields {
		if f.FieldNum == num {
			return f
		}
	}
	return nil
}

// ParsedMessage is the root of one parsed message tree. It exclusively
// owns its Segments; no structure is shared between two independently
// parsed messages.
type ParsedMessage struct {
	Segments []*Segment `json:"segments"`

	// Extracted from the MSH segment; empty when absent.
	Version         string `json:"version,omitempty"`         // MSH-12, text before any ^
	MessageType     string `json:"messageType,omitempty"`     // MSH-9, full value
	DeclaredCharset string `json:"declaredCharset,omitempty"` // MSH-18, text before any ~
}

// Segment returns the first segment with the given code and occurrence
// index, or nil.
func (m *ParsedMessage) Segment(name string, repIndex int) *Segment {
	if m == nil {
		return nil
	}
	for _, s := range m.Segments {
		if s.Name == name && s.RepIndex == repIndex {
			return s
		}
	}
	return nil
}
