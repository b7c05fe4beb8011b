// Package diff compares two parsed HL7 messages field by field. The
// comparison is purely textual on each field's raw value; no trimming
// or numeric equivalence is applied, so every byte-level discrepancy
// shows up.
package diff

import (
	"sort"

	"github.com/klauseduard/hl7-tools/internal/hl7"
)

// Status classifies one compared field or segment.
type Status string

const (
	StatusIdentical Status = "identical"
	StatusModified  Status = "modified"
	StatusAOnly     Status = "a_only"
	StatusBOnly     Status = "b_only"
)

// FieldDiff is the comparison result for one field slot.
type FieldDiff struct {
	Address  string `json:"address"`
	FieldNum int    `json:"fieldNum"`
	Status   Status `json:"status"`
	ValueA   string `json:"valueA"`
	ValueB   string `json:"valueB"`
}

// SegmentDiff groups the field diffs of one (code, occurrence) pair.
type SegmentDiff struct {
	Name     string      `json:"name"`
	RepIndex int         `json:"repIndex"`
	Status   Status      `json:"status"`
	Fields   []FieldDiff `json:"fields"`
}

// Summary carries the aggregate counts. Total always equals the sum of
// the four statuses.
type Summary struct {
	Total     int `json:"total"`
	Identical int `json:"identical"`
	Modified  int `json:"modified"`
	AOnly     int `json:"aOnly"`
	BOnly     int `json:"bOnly"`
}

// MessageDiff is the full report for one comparison run.
type MessageDiff struct {
	TypeA    string        `json:"typeA,omitempty"`
	TypeB    string        `json:"typeB,omitempty"`
	VersionA string        `json:"versionA,omitempty"`
	VersionB string        `json:"versionB,omitempty"`
	Segments []SegmentDiff `json:"segments"`
	Summary  Summary       `json:"summary"`
}

type segKey struct {
	name string
	rep  int
}

// Compare diffs message A against message B. Segments are matched by
// (code, occurrence); the walk order is A's segments first, then any
// B-only segments in B's order. Either side may be empty; there is no
// failure path.
func Compare(a, b *hl7.ParsedMessage) *MessageDiff {
	report := &MessageDiff{}
	if a != nil {
		report.TypeA = a.MessageType
		report.VersionA = a.Version
	}
	if b != nil {
		report.TypeB = b.MessageType
		report.VersionB = b.Version
	}

	aIndex, aKeys := indexSegments(a)
	bIndex, bKeys := indexSegments(b)

	keys := make([]segKey, 0, len(aKeys)+len(bKeys))
	keys = append(keys, aKeys...)
	for _, k := range bKeys {
		if _, ok := aIndex[k]; !ok {
			keys = append(keys, k)
		}
	}

	for _, k := range keys {
		segA := aIndex[k]
		segB := bIndex[k]
		sd := SegmentDiff{Name: k.name, RepIndex: k.rep}
		switch {
		case segB == nil:
			sd.Status = StatusAOnly
			for _, f := range segA.Fields {
				sd.Fields = append(sd.Fields, FieldDiff{
					Address:  f.Address,
					FieldNum: f.FieldNum,
					Status:   StatusAOnly,
					ValueA:   f.RawValue,
				})
			}
		case segA == nil:
			sd.Status = StatusBOnly
			for _, f := range segB.Fields {
				sd.Fields = append(sd.Fields, FieldDiff{
					Address:  f.Address,
					FieldNum: f.FieldNum,
					Status:   StatusBOnly,
					ValueB:   f.RawValue,
				})
			}
		default:
			sd.Fields = compareFields(k, segA, segB)
			sd.Status = StatusIdentical
			for _, fd := range sd.Fields {
				if fd.Status != StatusIdentical {
					sd.Status = StatusModified
					break
				}
			}
		}
		report.Segments = append(report.Segments, sd)
		for _, fd := range sd.Fields {
			report.Summary.Total++
			switch fd.Status {
			case StatusIdentical:
				report.Summary.Identical++
			case StatusModified:
				report.Summary.Modified++
			case StatusAOnly:
				report.Summary.AOnly++
			case StatusBOnly:
				report.Summary.BOnly++
			}
		}
	}
	return report
}

func indexSegments(m *hl7.ParsedMessage) (map[segKey]*hl7.Segment, []segKey) {
	index := map[segKey]*hl7.Segment{}
	var keys []segKey
	if m == nil {
		return index, keys
	}
	for _, s := range m.Segments {
		k := segKey{s.Name, s.RepIndex}
		if _, ok := index[k]; !ok {
			index[k] = s
			keys = append(keys, k)
		}
	}
	return index, keys
}

// compareFields walks the sorted union of both sides' field numbers.
func compareFields(k segKey, segA, segB *hl7.Segment) []FieldDiff {
	nums := map[int]bool{}
	for _, f := range segA.Fields {
		nums[f.FieldNum] = true
	}
	for _, f := range segB.Fields {
		nums[f.FieldNum] = true
	}
	sorted := make([]int, 0, len(nums))
	for n := range nums {
		sorted = append(sorted, n)
	}
	sort.Ints(sorted)

	diffs := make([]FieldDiff, 0, len(sorted))
	for _, n := range sorted {
		fa := segA.Field(n)
		fb := segB.Field(n)
		fd := FieldDiff{
			Address:  hl7.Address(k.name, k.rep, n),
			FieldNum: n,
		}
		switch {
		case fb == nil:
			fd.Status = StatusAOnly
			fd.ValueA = fa.RawValue
		case fa == nil:
			fd.Status = StatusBOnly
			fd.ValueB = fb.RawValue
		default:
			fd.ValueA = fa.RawValue
			fd.ValueB = fb.RawValue
			if fa.RawValue == fb.RawValue {
				fd.Status = StatusIdentical
			} else {
				fd.Status = StatusModified
			}
		}
		diffs = append(diffs, fd)
	}
	return diffs
}
