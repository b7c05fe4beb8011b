// Package report writes comparison results to files: JSON documents for
// machine consumption and PDF summaries for handing to integration
// partners. Every document carries a digest of its diff payload so a
// printed report can be matched back to the exact comparison run.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"time"

	"github.com/klauseduard/hl7-tools/internal/diff"
)

// Document wraps one comparison run for serialization.
type Document struct {
	Generated time.Time         `json:"generated"`
	SourceA   string            `json:"sourceA,omitempty"`
	SourceB   string            `json:"sourceB,omitempty"`
	Digest    string            `json:"digest"`
	Diff      *diff.MessageDiff `json:"diff"`
}

// Build assembles a document around a diff. The digest is the SHA-256 of
// the diff's canonical JSON form, so two identical comparisons always
// stamp the same value regardless of when they ran.
func Build(sourceA, sourceB string, d *diff.MessageDiff) Document {
	doc := Document{
		Generated: time.Now().UTC(),
		SourceA:   sourceA,
		SourceB:   sourceB,
		Diff:      d,
	}
	if payload, err := json.Marshal(d); err == nil {
		sum := sha256.Sum256(payload)
		doc.Digest = hex.EncodeToString(sum[:])
	}
	return doc
}

// SaveJSON writes the document as indented JSON.
func SaveJSON(doc Document, out string) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(out, b, 0644)
}

// LoadJSON reads a document back from disk.
func LoadJSON(path string) (Document, error) {
	var doc Document
	b, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	err = json.Unmarshal(b, &doc)
	return doc, err
}
