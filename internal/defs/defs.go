// Package defs holds the versioned HL7 segment and field definition
// tables and resolves free-form version tokens onto them.
//
// Three generations are carried: 2.3, 2.5 and 2.8. Each newer table is
// built at init by deep-copying the previous one and applying its
// overlay, so the tables never share field maps and a lookup in one
// generation can never observe another generation's entries.
package defs

import "strings"

// FieldDef describes one field slot of a segment.
type FieldDef struct {
	Name        string
	Type        string // data type code, "*" for variant (OBX-5)
	Optionality string // R required, O optional, C conditional, B backward-compatible
	Repeats     bool
	MaxLen      int
}

// SegmentDef describes one segment: display name plus field definitions
// keyed by field number.
type SegmentDef struct {
	Name   string
	Fields map[int]FieldDef
}

// Table maps segment codes to definitions for one schema generation.
type Table map[string]SegmentDef

var tables map[string]Table

func init() {
	v23 := buildV23()
	v25 := applyV25(deepCopy(v23))
	v28 := applyV28(deepCopy(v25))
	tables = map[string]Table{"2.3": v23, "2.5": v25, "2.8": v28}
}

func deepCopy(t Table) Table {
	out := make(Table, len(t))
	for code, seg := range t {
		fields := make(map[int]FieldDef, len(seg.Fields))
		for num, fd := range seg.Fields {
			fields[num] = fd
		}
		out[code] = SegmentDef{Name: seg.Name, Fields: fields}
	}
	return out
}

// Generations lists the supported schema generations, oldest first.
func Generations() []string { return []string{"2.3", "2.5", "2.8"} }

// ResolveVersion maps a free-form version token to a supported
// generation. Unknown, missing and intermediate versions fall back to
// 2.5: 2.4 resolves down to 2.3, 2.6 and 2.7 resolve to 2.5.
func ResolveVersion(token string) string {
	switch v := strings.TrimSpace(token); {
	case v == "":
		return "2.5"
	case strings.HasPrefix(v, "2.8"):
		return "2.8"
	case strings.HasPrefix(v, "2.5"):
		return "2.5"
	case strings.HasPrefix(v, "2.3"), v == "2.4":
		return "2.3"
	default:
		return "2.5"
	}
}

// Segment looks up a segment definition within a resolved generation.
func Segment(code, generation string) (SegmentDef, bool) {
	t, ok := tables[generation]
	if !ok {
		return SegmentDef{}, false
	}
	seg, ok := t[code]
	return seg, ok
}

// Field looks up one field definition. Missing entries are a normal
// outcome for site-custom segments and trailing fields; callers treat
// them as "no definition", never as an error.
func Field(code string, num int, generation string) (FieldDef, bool) {
	seg, ok := Segment(code, generation)
	if !ok {
		return FieldDef{}, false
	}
	fd, ok := seg.Fields[num]
	return fd, ok
}

// MaxFieldNum returns the highest defined field number of a segment, 0
// when the segment is unknown.
func MaxFieldNum(code, generation string) int {
	seg, ok := Segment(code, generation)
	if !ok {
		return 0
	}
	max := 0
	for num := range seg.Fields {
		if num > max {
			max = num
		}
	}
	return max
}
