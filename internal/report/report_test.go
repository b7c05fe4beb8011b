package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauseduard/hl7-tools/internal/diff"
	"github.com/klauseduard/hl7-tools/internal/hl7"
)

func sampleDiff(t *testing.T) *diff.MessageDiff {
	t.Helper()
	a, err := hl7.Parse("MSH|^~\\&|A|B|C|D|20260101||ADT^A01|1|P|2.5\rPID|1||123||Doe^Jane")
	if err != nil {
		t.Fatalf("parse a: %v", err)
	}
	b, err := hl7.Parse("MSH|^~\\&|A|B|C|D|20260101||ADT^A01|1|P|2.5\rPID|1||123||Smith^John")
	if err != nil {
		t.Fatalf("parse b: %v", err)
	}
	return diff.Compare(a, b)
}

func TestBuildDigestIsStable(t *testing.T) {
	d := sampleDiff(t)
	doc1 := Build("a.hl7", "b.hl7", d)
	doc2 := Build("a.hl7", "b.hl7", d)
	if doc1.Digest == "" {
		t.Fatal("digest not computed")
	}
	if doc1.Digest != doc2.Digest {
		t.Errorf("same diff produced different digests: %s vs %s", doc1.Digest, doc2.Digest)
	}
	if len(doc1.Digest) != 64 {
		t.Errorf("digest should be hex SHA-256, got %d chars", len(doc1.Digest))
	}
}

func TestSaveLoadJSON(t *testing.T) {
	doc := Build("a.hl7", "b.hl7", sampleDiff(t))
	path := filepath.Join(t.TempDir(), "diff.json")
	if err := SaveJSON(doc, path); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}

	loaded, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if loaded.Digest != doc.Digest {
		t.Errorf("digest changed across round trip")
	}
	if loaded.SourceA != "a.hl7" || loaded.SourceB != "b.hl7" {
		t.Errorf("sources = %q, %q", loaded.SourceA, loaded.SourceB)
	}
	if loaded.Diff == nil || loaded.Diff.Summary.Modified != 1 {
		t.Errorf("diff payload not preserved: %+v", loaded.Diff)
	}
}

func TestLoadJSONMissingFile(t *testing.T) {
	if _, err := LoadJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDigestQR(t *testing.T) {
	png, err := DigestQR("deadbeef0123", 128)
	if err != nil {
		t.Fatalf("DigestQR: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}

	if _, err := DigestQR("", 128); err == nil {
		t.Error("empty digest should fail")
	}
	if _, err := DigestQR("zz--!!", 128); err == nil {
		t.Error("digest with no hex characters should fail")
	}
}

func TestSanitizeDigest(t *testing.T) {
	if got := sanitizeDigest(" dead-beef \n"); got != "DEADBEEF" {
		t.Errorf("sanitizeDigest = %q", got)
	}
}

func TestSavePDF(t *testing.T) {
	doc := Build("a.hl7", "b.hl7", sampleDiff(t))
	for _, lang := range []Language{LangEnglish, LangEstonian} {
		path := filepath.Join(t.TempDir(), string(lang)+".pdf")
		if err := SavePDF(doc, path, lang); err != nil {
			t.Fatalf("SavePDF(%s): %v", lang, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read pdf: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Errorf("%s output is not a PDF", lang)
		}
	}
}

func TestSavePDFIdenticalMessages(t *testing.T) {
	a, err := hl7.Parse("MSH|^~\\&|A|B|C|D|20260101||ADT^A01|1|P|2.5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	doc := Build("a.hl7", "a.hl7", diff.Compare(a, a))
	path := filepath.Join(t.TempDir(), "same.pdf")
	if err := SavePDF(doc, path, LangEnglish); err != nil {
		t.Fatalf("SavePDF: %v", err)
	}
}

func TestTranslator(t *testing.T) {
	en := NewTranslator(LangEnglish)
	et := NewTranslator(LangEstonian)
	if en.T("summary") != "Summary" {
		t.Errorf("en summary = %q", en.T("summary"))
	}
	if et.T("summary") != "Kokkuvõte" {
		t.Errorf("et summary = %q", et.T("summary"))
	}
	if en.T("no-such-key") != "no-such-key" {
		t.Error("unknown keys should pass through")
	}

	fallback := NewTranslator(Language("xx"))
	if fallback.Lang() != LangEnglish {
		t.Errorf("unknown language should fall back to English, got %s", fallback.Lang())
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"", LangEnglish, false},
		{"en", LangEnglish, false},
		{"English", LangEnglish, false},
		{"et", LangEstonian, false},
		{"eesti", LangEstonian, false},
		{"de", LangEnglish, true},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLanguage(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestJSONOmitsEmptySources(t *testing.T) {
	doc := Build("", "", sampleDiff(t))
	path := filepath.Join(t.TempDir(), "diff.json")
	if err := SaveJSON(doc, path); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(data), "sourceA") {
		t.Error("empty sources should be omitted from JSON")
	}
}
