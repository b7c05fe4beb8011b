package hl7

import (
	"reflect"
	"testing"
)

func TestRebuildRoundTrip(t *testing.T) {
	lines := []string{
		"MSH|^~\\&|SND|FAC|RCV|FAC2|20260101||ADT^A01|1|P|2.5",
		"PID|1||123^^^HOSP^PI||Doe^Jane||19800101|F",
		"PID|1||111~222|||",
		"OBX|1|TX|NOTE||free text with spaces",
		"ZDS|1.2.840^doc&sub",
	}
	for _, line := range lines {
		t.Run(line[:3], func(t *testing.T) {
			msg, err := Parse(line)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := RebuildRawLine(msg.Segments[0]); got != line {
				t.Errorf("rebuilt = %q, want %q", got, line)
			}
		})
	}
}

func TestRebuildKeepsTrailingEmptyFields(t *testing.T) {
	line := "PID|1||123|||"
	msg, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := RebuildRawLine(msg.Segments[0]); got != line {
		t.Errorf("rebuilt = %q, want trailing separators kept", got)
	}
}

func TestReparseFieldIdempotent(t *testing.T) {
	f := parseField("Doe^Jane~Smith^J&r", 5, "PID-5")
	before := *f
	ReparseField(f, f.RawValue)
	if !reflect.DeepEqual(f.Components, before.Components) {
		t.Errorf("components changed: %v -> %v", before.Components, f.Components)
	}
	if !reflect.DeepEqual(f.Repetitions, before.Repetitions) {
		t.Errorf("repetitions changed: %v -> %v", before.Repetitions, f.Repetitions)
	}
	if f.Value != before.Value || f.RawValue != before.RawValue {
		t.Errorf("values changed: %q/%q", f.Value, f.RawValue)
	}
}

func TestReparseFieldClearsDerivedState(t *testing.T) {
	f := parseField("A^B~C^D", 3, "PID-3")
	ReparseField(f, "")
	if f.RawValue != "" || f.Value != "" {
		t.Errorf("values = %q/%q, want empty", f.Value, f.RawValue)
	}
	if len(f.Components) != 0 || len(f.Repetitions) != 0 {
		t.Errorf("derived state kept: %d components, %d repetitions",
			len(f.Components), len(f.Repetitions))
	}
}

func TestReparseThenRebuild(t *testing.T) {
	msg, err := Parse(sampleADT)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pid := msg.Segment("PID", 1)
	ReparseField(pid.Field(5), "Smith^John")
	want := "PID|1||123^^^HOSP^PI||Smith^John"
	if got := RebuildRawLine(pid); got != want {
		t.Errorf("rebuilt = %q, want %q", got, want)
	}
	f5 := pid.Field(5)
	if f5.Components[0].Value != "Smith" || f5.Components[1].Value != "John" {
		t.Errorf("components not recomputed: %+v", f5.Components)
	}
}

func TestReparseMSHEncodingFieldStaysVerbatim(t *testing.T) {
	msg, err := Parse(sampleADT)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	msh := msg.Segment("MSH", 1)
	ReparseField(msh.Field(2), `#~\&`)
	f := msh.Field(2)
	if f.RawValue != `#~\&` || len(f.Components) != 0 || len(f.Repetitions) != 0 {
		t.Errorf("MSH-2 decomposed after edit: %+v", f)
	}
}

func TestFieldByAddress(t *testing.T) {
	raw := "MSH|^~\\&|A|B|C|D|||ORU^R01|1|P|2.5\rOBX|1||GLU\rOBX|2||WBC"
	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tests := []struct {
		addr    string
		want    string
		wantErr bool
	}{
		{"OBX-3", "GLU", false},
		{"OBX[2]-3", "WBC", false},
		{"obx[2]-3", "WBC", false},
		{"MSH-9", "ORU^R01", false},
		{"PID-5", "", true},
		{"OBX-99", "", true},
		{"junk", "", true},
		{"OBX-3.1", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			f, err := FieldByAddress(msg, tt.addr)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error, got %+v", f)
				}
				return
			}
			if err != nil {
				t.Fatalf("FieldByAddress: %v", err)
			}
			if f.RawValue != tt.want {
				t.Errorf("raw = %q, want %q", f.RawValue, tt.want)
			}
		})
	}
}

func TestSetFieldByAddress(t *testing.T) {
	msg, err := Parse(sampleADT)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	line, err := SetFieldByAddress(msg, "PID-5", "Smith^John")
	if err != nil {
		t.Fatalf("SetFieldByAddress: %v", err)
	}
	if line != "PID|1||123^^^HOSP^PI||Smith^John" {
		t.Errorf("line = %q", line)
	}
	if msg.Segment("PID", 1).RawLine != line {
		t.Error("segment raw line not updated")
	}
}

func TestReconstruct(t *testing.T) {
	msg, err := Parse(sampleADT)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Reconstruct(msg); got != sampleADT+"\r" {
		t.Errorf("Reconstruct = %q, want original with trailing CR", got)
	}
}
