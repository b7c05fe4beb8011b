package hl7

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ReparseField replaces a field's raw text and rebuilds its derived
// views (value, components, repetitions) in place. Identity, the field
// number and address, is untouched. The header's first two fields hold
// separator machinery and are stored verbatim, never decomposed.
func ReparseField(f *Field, newRaw string) {
	if f == nil {
		return
	}
	if f.FieldNum <= 2 && strings.HasPrefix(f.Address, "MSH") {
		f.Value = newRaw
		f.RawValue = newRaw
		f.Components = nil
		f.Repetitions = nil
		return
	}
	fresh := parseField(newRaw, f.FieldNum, f.Address)
	f.Value = fresh.Value
	f.RawValue = fresh.RawValue
	f.Components = fresh.Components
	f.Repetitions = fresh.Repetitions
}

// RebuildRawLine reassembles a segment's wire line from its fields'
// raw values, stores it as the segment's raw line and returns it. For
// the header, field 1 is the separator character itself and is emitted
// by position, not as data. Rebuilding an unedited segment reproduces
// its original line byte for byte.
func RebuildRawLine(seg *Segment) string {
	if seg == nil {
		return ""
	}
	parts := make([]string, 0, len(seg.Fields)+1)
	parts = append(parts, seg.Name)
	for _, f := range seg.Fields {
		if seg.Name == "MSH" && f.FieldNum == 1 {
			continue
		}
		parts = append(parts, f.RawValue)
	}
	seg.RawLine = strings.Join(parts, FieldSeparator)
	return seg.RawLine
}

// Reconstruct rebuilds every segment line and joins them into a full
// wire message, trailing separator included.
func Reconstruct(msg *ParsedMessage) string {
	if msg == nil || len(msg.Segments) == 0 {
		return ""
	}
	lines := make([]string, 0, len(msg.Segments))
	for _, seg := range msg.Segments {
		lines = append(lines, RebuildRawLine(seg))
	}
	return strings.Join(lines, SegmentSeparator) + SegmentSeparator
}

var addressPattern = regexp.MustCompile(`^([A-Z][A-Z0-9]{1,2})(?:\[(\d+)\])?-(\d+)$`)

// FieldByAddress resolves an address like "PID-5" or "OBX[2]-3" against
// a parsed message. The occurrence index defaults to 1.
func FieldByAddress(msg *ParsedMessage, address string) (*Field, error) {
	m := addressPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(address)))
	if m == nil {
		return nil, fmt.Errorf("hl7: malformed field address %q", address)
	}
	rep := 1
	if m[2] != "" {
		rep, _ = strconv.Atoi(m[2])
	}
	fieldNum, _ := strconv.Atoi(m[3])
	seg := msg.Segment(m[1], rep)
	if seg == nil {
		return nil, fmt.Errorf("hl7: segment %s[%d] not present", m[1], rep)
	}
	f := seg.Field(fieldNum)
	if f == nil {
		return nil, fmt.Errorf("hl7: field %s not present", Address(m[1], rep, fieldNum))
	}
	return f, nil
}

// SetFieldByAddress resolves an address, reparses the field with the
// new raw text and rebuilds the owning segment. The returned string is
// the segment's new wire line.
func SetFieldByAddress(msg *ParsedMessage, address, newRaw string) (string, error) {
	f, err := FieldByAddress(msg, address)
	if err != nil {
		return "", err
	}
	ReparseField(f, newRaw)
	m := addressPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(address)))
	rep := 1
	if m[2] != "" {
		rep, _ = strconv.Atoi(m[2])
	}
	return RebuildRawLine(msg.Segment(m[1], rep)), nil
}
