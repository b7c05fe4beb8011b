package hl7

import (
	"strings"
	"testing"
)

const sampleADT = "MSH|^~\\&|A|B|C|D|20260101||ADT^A01|1|P|2.5\r" +
	"PID|1||123^^^HOSP^PI||Doe^Jane"

func TestParseSampleMessage(t *testing.T) {
	msg, err := Parse(sampleADT)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if msg.MessageType != "ADT^A01" {
		t.Errorf("message type = %q, want %q", msg.MessageType, "ADT^A01")
	}
	if msg.Version != "2.5" {
		t.Errorf("version = %q, want %q", msg.Version, "2.5")
	}
	if len(msg.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(msg.Segments))
	}

	pid := msg.Segment("PID", 1)
	if pid == nil {
		t.Fatal("PID segment missing")
	}
	f5 := pid.Field(5)
	if f5 == nil {
		t.Fatal("PID-5 missing")
	}
	if len(f5.Components) != 2 {
		t.Fatalf("PID-5 components = %d, want 2", len(f5.Components))
	}
	if f5.Components[0].Value != "Doe" || f5.Components[1].Value != "Jane" {
		t.Errorf("PID-5 components = %q/%q, want Doe/Jane",
			f5.Components[0].Value, f5.Components[1].Value)
	}
}

func TestParseMSHFieldNumbering(t *testing.T) {
	msg, err := Parse(sampleADT)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	msh := msg.Segment("MSH", 1)
	if msh == nil {
		t.Fatal("MSH segment missing")
	}
	if f := msh.Field(1); f == nil || f.RawValue != "|" {
		t.Errorf("MSH-1 = %+v, want literal field separator", f)
	}
	if f := msh.Field(2); f == nil || f.RawValue != `^~\&` {
		t.Errorf("MSH-2 = %+v, want encoding characters verbatim", f)
	}
	if f := msh.Field(2); f != nil && len(f.Components) != 0 {
		t.Errorf("MSH-2 decomposed into %d components, want 0", len(f.Components))
	}
	if f := msh.Field(9); f == nil || f.RawValue != "ADT^A01" {
		t.Errorf("MSH-9 = %+v, want ADT^A01", f)
	}
	if f := msh.Field(12); f == nil || f.RawValue != "2.5" {
		t.Errorf("MSH-12 = %+v, want 2.5", f)
	}
}

func TestParseComponentConvention(t *testing.T) {
	tests := []struct {
		raw     string
		ncomp   int
		values  []string
		subs    []string // subcomponents of component 1, if any
	}{
		{"ABC", 0, nil, nil},
		{"ABC^DEF", 2, []string{"ABC", "DEF"}, nil},
		{"A&1&2^X", 2, []string{"A&1&2", "X"}, []string{"A", "1", "2"}},
		{"", 0, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			f := parseField(tt.raw, 1, "ZZT-1")
			if len(f.Components) != tt.ncomp {
				t.Fatalf("components = %d, want %d", len(f.Components), tt.ncomp)
			}
			for i, want := range tt.values {
				if f.Components[i].Value != want {
					t.Errorf("component %d = %q, want %q", i+1, f.Components[i].Value, want)
				}
			}
			if tt.subs != nil {
				got := f.Components[0].Subcomponents
				if len(got) != len(tt.subs) {
					t.Fatalf("subcomponents = %v, want %v", got, tt.subs)
				}
				for i := range tt.subs {
					if got[i] != tt.subs[i] {
						t.Errorf("subcomponent %d = %q, want %q", i+1, got[i], tt.subs[i])
					}
				}
			}
		})
	}
}

func TestParseRepetitions(t *testing.T) {
	msg, err := Parse("MSH|^~\\&|A|B|C|D|||ADT^A01|1|P|2.5\rPID|1||111~222")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f := msg.Segment("PID", 1).Field(3)
	if f == nil {
		t.Fatal("PID-3 missing")
	}
	if len(f.Repetitions) != 2 {
		t.Fatalf("repetitions = %d, want 2", len(f.Repetitions))
	}
	if f.Repetitions[0].Value != "111" || f.Repetitions[1].Value != "222" {
		t.Errorf("repetition values = %q/%q, want 111/222",
			f.Repetitions[0].Value, f.Repetitions[1].Value)
	}
	if f.Value != "111" {
		t.Errorf("display value = %q, want first repetition", f.Value)
	}
	if !f.HasRepetitions() {
		t.Error("HasRepetitions() = false, want true")
	}

	// No repetition separator means no repetition entries at all.
	plain := msg.Segment("PID", 1).Field(1)
	if len(plain.Repetitions) != 0 {
		t.Errorf("plain field repetitions = %d, want 0", len(plain.Repetitions))
	}
}

func TestParseRepIndexCounting(t *testing.T) {
	raw := "MSH|^~\\&|A|B|C|D|||ORU^R01|1|P|2.5\r" +
		"OBX|1||GLU\rNTE|1\rOBX|2||WBC\rNTE|2\rOBX|3||HGB"
	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var obx []int
	for _, s := range msg.Segments {
		if s.Name == "OBX" {
			obx = append(obx, s.RepIndex)
		}
	}
	if len(obx) != 3 || obx[0] != 1 || obx[1] != 2 || obx[2] != 3 {
		t.Errorf("OBX rep indexes = %v, want [1 2 3]", obx)
	}
	third := msg.Segment("OBX", 3)
	if third == nil {
		t.Fatal("OBX[3] missing")
	}
	if got := third.Field(3).Address; got != "OBX[3]-3" {
		t.Errorf("address = %q, want OBX[3]-3", got)
	}
}

func TestParseSkipsShortSegmentCodes(t *testing.T) {
	msg, err := Parse("MSH|^~\\&|A|B|C|D|||ADT^A01|1|P|2.5\rX|oops\rPID|1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msg.Segments) != 2 {
		t.Fatalf("segments = %d, want 2 (one-letter code skipped)", len(msg.Segments))
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   \r\n  ", "\x0b\x1c\r"} {
		if _, err := Parse(raw); err != ErrNoSegments {
			t.Errorf("Parse(%q) err = %v, want ErrNoSegments", raw, err)
		}
	}
}

func TestParseNonHL7Text(t *testing.T) {
	msg, err := Parse("not hl7 at all")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msg.Segments) != 1 {
		t.Fatalf("segments = %d, want 1", len(msg.Segments))
	}
	if msg.Version != "" || msg.MessageType != "" {
		t.Errorf("metadata = %q/%q, want empty", msg.Version, msg.MessageType)
	}
}

func TestParseDeclaredCharset(t *testing.T) {
	raw := "MSH|^~\\&|A|B|C|D|||ADT^A01|1|P|2.5||||||8859/1~ASCII"
	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if msg.DeclaredCharset != "8859/1" {
		t.Errorf("declared charset = %q, want first repetition only", msg.DeclaredCharset)
	}
}

func TestParseManyObservations(t *testing.T) {
	var b strings.Builder
	b.WriteString("MSH|^~\\&|A|B|C|D|||ORU^R01|1|P|2.5")
	for i := 1; i <= 500; i++ {
		b.WriteString("\rOBX|")
		b.WriteString(strings.Repeat("x", 8))
		b.WriteString("|NM|GLU||5.4|mmol/L")
	}
	msg, err := Parse(b.String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(msg.Segments) != 501 {
		t.Fatalf("segments = %d, want 501", len(msg.Segments))
	}
	if msg.Segment("OBX", 500) == nil {
		t.Error("OBX[500] missing")
	}
}
