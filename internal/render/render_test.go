package render

import (
	"strings"
	"testing"

	"github.com/klauseduard/hl7-tools/internal/diff"
	"github.com/klauseduard/hl7-tools/internal/encoding"
	"github.com/klauseduard/hl7-tools/internal/hl7"
	"github.com/klauseduard/hl7-tools/internal/profile"
)

const sampleADT = "MSH|^~\\&|SND|FAC|RCV|FAC2|20260101120000||ADT^A01|MSG001|P|2.5\r" +
	"PID|1||12345^^^HOSP^PI||Doe^Jane||19800101|F\r" +
	"OBX|1|TX|NOTE||free text comment"

func mustParse(t *testing.T, raw string) *hl7.ParsedMessage {
	t.Helper()
	msg, err := hl7.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return msg
}

func TestMessagePlain(t *testing.T) {
	msg := mustParse(t, sampleADT)
	out := Message(msg, Options{})

	for _, want := range []string{
		"ADT^A01 v2.5 | 3 segments",
		"PID-5",
		"Patient Name",
		"Doe^Jane",
		"Observation/Result",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("plain output contains ANSI escapes")
	}
}

func TestMessageOBX5Type(t *testing.T) {
	msg := mustParse(t, sampleADT)
	out := Message(msg, Options{})
	// OBX-5 has no static type; OBX-2 supplies it.
	if !strings.Contains(out, "TX←2") {
		t.Errorf("OBX-5 row should show the OBX-2 supplied type:\n%s", out)
	}
}

func TestMessageRepetitionBadge(t *testing.T) {
	msg := mustParse(t, "MSH|^~\\&|A|B|C|D|20260101||ADT^A01|1|P|2.5\rPID|1||111^^^H^PI~222^^^L^MR")
	out := Message(msg, Options{})
	if !strings.Contains(out, "[2x]") {
		t.Errorf("repeating PID-3 should carry a repetition badge:\n%s", out)
	}
	if strings.Contains(out, "PID-3~2") {
		t.Error("repetition rows should only appear in verbose mode")
	}

	out = Message(msg, Options{Verbose: true})
	if !strings.Contains(out, "PID-3~2") {
		t.Errorf("verbose output should list the second repetition:\n%s", out)
	}
	if !strings.Contains(out, "222^^^L^MR") {
		t.Errorf("second repetition value missing:\n%s", out)
	}
}

func TestMessageVerboseComponents(t *testing.T) {
	msg := mustParse(t, sampleADT)
	out := Message(msg, Options{Verbose: true})
	if !strings.Contains(out, "PID-5.1") {
		t.Errorf("verbose output should show component addresses:\n%s", out)
	}
	// PID-5 is XPN; its first component is the family name.
	if !strings.Contains(out, "Family Name") {
		t.Errorf("component name from the data type catalog missing:\n%s", out)
	}
}

func TestMessageProfile(t *testing.T) {
	p := &profile.Profile{
		Name: "East Lab Feed",
		Segments: map[string]profile.Segment{
			"PID": {Fields: map[string]profile.Field{
				"5":  {Name: "Patient Legal Name"},
				"8":  {ValueMap: map[string]string{"M": "Male", "F": "Female"}},
				"19": {Required: true},
			}},
		},
	}
	msg := mustParse(t, sampleADT)
	out := Message(msg, Options{Profile: p})

	if !strings.Contains(out, "Profile: East Lab Feed") {
		t.Errorf("header should name the profile:\n%s", out)
	}
	if !strings.Contains(out, "Patient Legal Name") {
		t.Errorf("profile field name should override the standard name:\n%s", out)
	}
	if !strings.Contains(out, "F (Female)") {
		t.Errorf("mapped value label missing:\n%s", out)
	}
	if !strings.Contains(out, "1 required field empty") {
		t.Errorf("profile summary should count the empty required PID-19:\n%s", out)
	}
	if !strings.Contains(out, "Unexpected segments: MSH, OBX") {
		t.Errorf("segments outside the profile should be flagged:\n%s", out)
	}
}

func TestMessageValueMapMismatch(t *testing.T) {
	p := &profile.Profile{
		Name: "East Lab Feed",
		Segments: map[string]profile.Segment{
			"PID": {Fields: map[string]profile.Field{
				"8": {ValueMap: map[string]string{"M": "Male"}},
			}},
		},
	}
	msg := mustParse(t, "MSH|^~\\&|A|B|C|D|20260101||ADT^A01|1|P|2.5\rPID|1||123|||||X")
	out := Message(msg, Options{Profile: p})
	if !strings.Contains(out, "●not in map") {
		t.Errorf("unmapped coded value should be badged:\n%s", out)
	}
	if !strings.Contains(out, "1 value not in map") {
		t.Errorf("summary line should count the mismatch:\n%s", out)
	}
}

func TestEncodingHeader(t *testing.T) {
	tests := []struct {
		name     string
		res      encoding.Result
		declared string
		want     []string
		absent   []string
	}{
		{
			name:     "detected only",
			res:      encoding.Result{Encoding: "UTF-8", HasBOM: true},
			declared: "",
			want:     []string{"Detected: UTF-8 BOM"},
			absent:   []string{"MSH-18"},
		},
		{
			name:     "declared matches",
			res:      encoding.Result{Encoding: "UTF-8", HasHighBytes: true},
			declared: "UNICODE UTF-8",
			want:     []string{"Detected: UTF-8", "MSH-18: UNICODE UTF-8 (UTF-8)"},
			absent:   []string{"mismatch"},
		},
		{
			name:     "declared mismatch",
			res:      encoding.Result{Encoding: "ISO-8859-1", HasHighBytes: true},
			declared: "UNICODE UTF-8",
			want:     []string{"[mismatch: detected ISO-8859-1 vs declared UTF-8]"},
		},
		{
			name:     "ascii never mismatches",
			res:      encoding.Result{Encoding: "ASCII"},
			declared: "8859/1",
			want:     []string{"MSH-18: 8859/1 (ISO-8859-1)"},
			absent:   []string{"mismatch"},
		},
		{
			name:     "unknown declaration passes through",
			res:      encoding.Result{Encoding: "UTF-8"},
			declared: "ISO IR87",
			want:     []string{"MSH-18: ISO IR87 (ISO IR87)"},
			absent:   []string{"mismatch"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodingHeader(tt.res, tt.declared, false)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("missing %q in %q", w, got)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(got, a) {
					t.Errorf("unexpected %q in %q", a, got)
				}
			}
		})
	}
}

func TestFieldValue(t *testing.T) {
	msg := mustParse(t, sampleADT)
	if v, ok := FieldValue(msg, "PID-5"); !ok || v != "Doe^Jane" {
		t.Errorf("PID-5 = %q, %v", v, ok)
	}
	if v, ok := FieldValue(msg, "MSH-9"); !ok || v != "ADT^A01" {
		t.Errorf("MSH-9 = %q, %v", v, ok)
	}
	if _, ok := FieldValue(msg, "garbage"); ok {
		t.Error("malformed address should not resolve")
	}
	if _, ok := FieldValue(msg, "ZZZ-1"); ok {
		t.Error("absent segment should not resolve")
	}
}

func TestRaw(t *testing.T) {
	msg := mustParse(t, sampleADT)
	out := Raw(msg)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 raw lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "MSH|^~\\&|") {
		t.Errorf("first raw line = %q", lines[0])
	}
	if lines[1] != "PID|1||12345^^^HOSP^PI||Doe^Jane||19800101|F" {
		t.Errorf("second raw line = %q", lines[1])
	}
}

func TestDiffRender(t *testing.T) {
	a := mustParse(t, sampleADT)
	b := mustParse(t, strings.Replace(sampleADT, "Doe^Jane", "Smith^John", 1))
	d := diff.Compare(a, b)

	out := Diff(d, DiffOptions{})
	for _, want := range []string{
		"Compare: ADT^A01 v2.5  vs  ADT^A01 v2.5",
		"1 difference across 1 segment",
		"1 modified",
		"PID-5",
		"Patient Name",
		"Doe^Jane",
		"Smith^John",
		"modified",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "MSH-9") {
		t.Error("identical fields should be hidden by default")
	}

	out = Diff(d, DiffOptions{ShowIdentical: true})
	if !strings.Contains(out, "MSH-9") {
		t.Error("ShowIdentical should surface identical fields")
	}
	if !strings.Contains(out, "identical") {
		t.Error("ShowIdentical should label unchanged fields")
	}
}

func TestDiffRenderOneSided(t *testing.T) {
	a := mustParse(t, sampleADT)
	b := mustParse(t, "MSH|^~\\&|SND|FAC|RCV|FAC2|20260101120000||ADT^A01|MSG001|P|2.5\r"+
		"PID|1||12345^^^HOSP^PI||Doe^Jane||19800101|F")
	d := diff.Compare(a, b)

	out := Diff(d, DiffOptions{})
	if !strings.Contains(out, "[A only]") {
		t.Errorf("missing OBX should be marked A only:\n%s", out)
	}
	if !strings.Contains(out, "—") {
		t.Errorf("absent side should render as a dash:\n%s", out)
	}
	if !strings.Contains(out, "A-only") {
		t.Errorf("summary should count A-only fields:\n%s", out)
	}
}

func TestHighlightPair(t *testing.T) {
	a, b := highlightPair("Doe^Jane", "Smith^Jane", diffValueWidth, true)
	if !strings.Contains(a, inverse) || !strings.Contains(b, inverse) {
		t.Errorf("changed regions should be inverse highlighted: %q, %q", a, b)
	}
	if !strings.HasSuffix(a, "^Jane") || !strings.HasSuffix(b, "^Jane") {
		t.Errorf("unchanged suffix should render plain: %q, %q", a, b)
	}

	// Without color there is nothing to highlight, only truncation.
	long := strings.Repeat("x", 40)
	pa, _ := highlightPair(long, long+"y", diffValueWidth, false)
	if !strings.HasSuffix(pa, "…") {
		t.Errorf("long plain value should be truncated: %q", pa)
	}
}

func TestRenderCellsWindow(t *testing.T) {
	// A change hidden behind a long common prefix must stay visible.
	prefix := strings.Repeat("a", 30)
	a, b := highlightPair(prefix+"OLD", prefix+"NEW", diffValueWidth, true)
	if !strings.HasPrefix(a, "…") || !strings.HasPrefix(b, "…") {
		t.Errorf("windowed output should start with an ellipsis: %q, %q", a, b)
	}
	if !strings.Contains(a, "OLD") {
		t.Errorf("side A window should include the changed text: %q", a)
	}
	if !strings.Contains(b, "NEW") {
		t.Errorf("side B window should include the changed text: %q", b)
	}
}
