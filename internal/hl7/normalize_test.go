package hl7

import (
	"strings"
	"testing"
)

func TestNormalizeSeparatorVariants(t *testing.T) {
	want := []string{"MSH|^~\\&|A", "PID|1", "OBX|1"}
	tests := []struct {
		name string
		raw  string
	}{
		{"cr", "MSH|^~\\&|A\rPID|1\rOBX|1"},
		{"lf", "MSH|^~\\&|A\nPID|1\nOBX|1"},
		{"crlf", "MSH|^~\\&|A\r\nPID|1\r\nOBX|1"},
		{"mixed", "MSH|^~\\&|A\r\nPID|1\rOBX|1"},
		{"trailing", "MSH|^~\\&|A\rPID|1\rOBX|1\r\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if len(got) != len(want) {
				t.Fatalf("lines = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], want[i])
				}
			}
		})
	}
}

func TestNormalizeMLLPFraming(t *testing.T) {
	raw := "\x0bMSH|^~\\&|A\rPID|1\x1c\r"
	got := Normalize(raw)
	if len(got) != 2 || got[0] != "MSH|^~\\&|A" || got[1] != "PID|1" {
		t.Fatalf("lines = %v", got)
	}
	for _, l := range got {
		if strings.ContainsAny(l, "\x0b\x1c") {
			t.Errorf("framing byte survived in %q", l)
		}
	}
}

func TestNormalizePlaceholderTokens(t *testing.T) {
	raw := "<VT>MSH|^~\\&|A<CR>PID|1<cr>OBX|1<FS><CR>"
	got := Normalize(raw)
	if len(got) != 3 {
		t.Fatalf("lines = %v, want 3", got)
	}
	if got[1] != "PID|1" || got[2] != "OBX|1" {
		t.Errorf("lines = %v", got)
	}
}

func TestNormalizeLineWrapRepair(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			// A wrap broke the segment right before a field separator.
			"pipe fragment",
			"MSH|^~\\&|A\rPID|1||123\r|extra|more\rOBX|1",
			[]string{"MSH|^~\\&|A", "PID|1||123|extra|more", "OBX|1"},
		},
		{
			// Leftover newline plus the rest of the segment.
			"newline pipe fragment",
			"PID|1||123\r\n|extra\rOBX|1",
			[]string{"PID|1||123|extra", "OBX|1"},
		},
		{
			// Short newline-prefixed run is a stray break, not data.
			// The doubled break survives CRLF collapsing, so the
			// fragment still leads with a newline when split.
			"short run",
			"PID|1||123\r\n\nab\rOBX|1",
			[]string{"PID|1||123ab", "OBX|1"},
		},
		{
			// Long wrapped field data continues the previous line.
			"wrapped data",
			"PID|1||123\r\n\nSOME WRAPPED TEXT\rOBX|1",
			[]string{"PID|1||123~SOME WRAPPED TEXT", "OBX|1"},
		},
		{
			// A real segment after a stray newline stands on its own.
			"real segment after newline",
			"PID|1||123\r\nOBX|1|TX",
			[]string{"PID|1||123", "OBX|1|TX"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("lines = %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeBoundaryScan(t *testing.T) {
	raw := "MSH|^~\\&|A|B|C|D|||ADT^A01|1|P|2.5PID|1||123OBX|1|TX"
	got := Normalize(raw)
	if len(got) != 3 {
		t.Fatalf("lines = %q, want 3", got)
	}
	if !strings.HasPrefix(got[1], "PID|") || !strings.HasPrefix(got[2], "OBX|") {
		t.Errorf("lines = %q", got)
	}
}

func TestNormalizeBoundaryScanZSegments(t *testing.T) {
	raw := "MSH|^~\\&|AZX1|customZDS|doc"
	got := Normalize(raw)
	if len(got) != 3 {
		t.Fatalf("lines = %q, want 3 (Z-segment wildcard)", got)
	}
	if got[1] != "ZX1|custom" || got[2] != "ZDS|doc" {
		t.Errorf("lines = %q", got)
	}
}

func TestNormalizeSingleSegmentFallback(t *testing.T) {
	got := Normalize("completely opaque text with no separators")
	if len(got) != 1 || got[0] != "completely opaque text with no separators" {
		t.Fatalf("lines = %q, want whole input as one line", got)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, raw := range []string{"", " \t ", "\r\n\r\n", "\x0b\x1c"} {
		if got := Normalize(raw); len(got) != 0 {
			t.Errorf("Normalize(%q) = %q, want empty", raw, got)
		}
	}
}
