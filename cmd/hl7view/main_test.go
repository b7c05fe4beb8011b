package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauseduard/hl7-tools/internal/anonymize"
	"github.com/klauseduard/hl7-tools/internal/report"
)

func writeSampleMessage(t *testing.T, path, patientName string) {
	t.Helper()
	msg := "MSH|^~\\&|SND|FAC|RCV|FAC|20240101120000||ADT^A01|MSG001|P|2.5\r" +
		"PID|1||12345^^^HOSP^PI||" + patientName + "||19800101|F\r"
	if err := os.WriteFile(path, []byte(msg), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestDiffCmdWritesReport(t *testing.T) {
	root := t.TempDir()
	pathA := filepath.Join(root, "a.hl7")
	pathB := filepath.Join(root, "b.hl7")
	writeSampleMessage(t, pathA, "Doe^Jane")
	writeSampleMessage(t, pathB, "Doe^Janet")
	jsonOut := filepath.Join(root, "report.json")

	diffCmd([]string{"--no-color", "--json", jsonOut, pathA, pathB})

	doc, err := report.LoadJSON(jsonOut)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if doc.Diff == nil || doc.Diff.Summary.Modified != 1 {
		t.Fatalf("unexpected diff document: %+v", doc.Diff)
	}
	if len(doc.Digest) != 64 {
		t.Errorf("digest = %q, want 64 hex chars", doc.Digest)
	}
	if doc.SourceA != pathA || doc.SourceB != pathB {
		t.Errorf("sources = %q/%q", doc.SourceA, doc.SourceB)
	}
}

func TestDiffCmdWritesPDF(t *testing.T) {
	root := t.TempDir()
	pathA := filepath.Join(root, "a.hl7")
	pathB := filepath.Join(root, "b.hl7")
	writeSampleMessage(t, pathA, "Doe^Jane")
	writeSampleMessage(t, pathB, "Doe^Janet")
	pdfOut := filepath.Join(root, "report.pdf")

	diffCmd([]string{"--no-color", "--pdf", pdfOut, "--lang", "et", pathA, pathB})

	data, err := os.ReadFile(pdfOut)
	if err != nil {
		t.Fatalf("ReadFile pdf: %v", err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Fatalf("output is not a PDF, got %d bytes", len(data))
	}
}

func TestAnonCmdWritesAudit(t *testing.T) {
	root := t.TempDir()
	msgPath := filepath.Join(root, "msg.hl7")
	writeSampleMessage(t, msgPath, "Tamm^Mari")
	auditPath := filepath.Join(root, "audit.jsonl")

	anonCmd([]string{"--seed", "7", "--audit", auditPath, msgPath})

	entries, err := anonymize.ReadAuditLog(auditPath)
	if err != nil {
		t.Fatalf("ReadAuditLog: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("audit log is empty")
	}
	sawName := false
	for _, e := range entries {
		if e.Address == "PID-5" {
			sawName = true
		}
	}
	if !sawName {
		t.Errorf("no audit entry for PID-5, got %+v", entries)
	}
}
