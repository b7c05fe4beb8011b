// Package samples generates the deterministic demo messages shipped
// under examples/. The generator is reproducible so the files can be
// regenerated and diffed against the checked-in copies.
package samples

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauseduard/hl7-tools/internal/hl7"
	"github.com/klauseduard/hl7-tools/internal/profile"
)

const (
	// File names exposed for generator consumers.
	ADTFileName     = "adt_a01.hl7"
	ORUFileName     = "oru_r01.hl7"
	ProfileFileName = "lab_profile.json"
)

const (
	messageTimestamp = "20240315093000"
	adtControlID     = "MSG00001"
	oruControlID     = "MSG00002"
)

// BuildADT constructs the admission sample, an ADT^A01 with an
// Estonian patient name, a repeated identifier and an insurance block.
func BuildADT() ([]byte, error) {
	lines := []string{
		joinFields("MSH", "^~\\&", "HIS", "EastTallinn", "LabSys", "CentralLab",
			messageTimestamp, "", "ADT^A01", adtControlID, "P", "2.5", "", "", "", "", "", "8859/1"),
		joinFields("EVN", "A01", messageTimestamp),
		joinFields("PID", "1", "", "39001010000^^^EE^NI~12345^^^HOSP^MR", "",
			"Jõgi^Ülle^^^^^L", "", "19900101", "F", "", "", "Pikk tn 1^^Tallinn^^10123^EST",
			"", "+372 5551234"),
		joinFields("PV1", "1", "I", "EMERG^101^A", "", "", "", "4567^Tamm^Priit^^^Dr"),
		joinFields("IN1", "1", "EHIF", "74000091", "Eesti Haigekassa"),
	}
	return messageBytes(lines)
}

// BuildORU constructs the lab result sample, an ORU^R01 with numeric
// and text observations that exercise the OBX-2 driven value typing.
func BuildORU() ([]byte, error) {
	lines := []string{
		joinFields("MSH", "^~\\&", "LabSys", "CentralLab", "HIS", "EastTallinn",
			messageTimestamp, "", "ORU^R01", oruControlID, "P", "2.5"),
		joinFields("PID", "1", "", "39001010000^^^EE^NI", "", "Jõgi^Ülle"),
		joinFields("OBR", "1", "ORD123", "FIL456", "CBC^Complete Blood Count^L",
			"", "", messageTimestamp),
		joinFields("OBX", "1", "NM", "718-7^Hemoglobin^LN", "", "13.5", "g/dL",
			"12.0-15.5", "N", "", "", "F"),
		joinFields("OBX", "2", "NM", "6690-2^Leukocytes^LN", "", "7.2", "10*9/L",
			"4.0-10.0", "N", "", "", "F"),
		joinFields("OBX", "3", "TX", "NOTE^Comment^L", "", "Sample slightly hemolyzed", "",
			"", "", "", "", "F"),
	}
	return messageBytes(lines)
}

// BuildProfile constructs the site profile matching the lab sample.
func BuildProfile() ([]byte, error) {
	p := profile.Profile{
		Name:        "Central Lab ORU Feed",
		Description: "Result feed from the central laboratory, HL7 v2.5",
		Segments: map[string]profile.Segment{
			"MSH": {},
			"PID": {
				Fields: map[string]profile.Field{
					"3": {Name: "National ID", Required: true},
					"5": {Name: "Patient Legal Name", Required: true},
					"8": {ValueMap: map[string]string{
						"F": "Female", "M": "Male", "O": "Other", "U": "Unknown",
					}},
				},
			},
			"OBR": {Fields: map[string]profile.Field{
				"4": {Name: "Ordered Panel", Required: true},
			}},
			"OBX": {Fields: map[string]profile.Field{
				"2":  {ValueMap: map[string]string{"NM": "Numeric", "TX": "Text", "CE": "Coded"}},
				"11": {Name: "Result Status", Required: true},
			}},
		},
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	return append(data, '\n'), nil
}

func joinFields(fields ...string) string {
	return strings.Join(fields, "|")
}

// messageBytes renders CR-separated segments and verifies the result
// round-trips through the parser before handing it out.
func messageBytes(lines []string) ([]byte, error) {
	raw := strings.Join(lines, "\r") + "\r"
	msg, err := hl7.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("sample does not parse: %w", err)
	}
	if rebuilt := hl7.Reconstruct(msg); rebuilt != raw {
		return nil, fmt.Errorf("sample does not round-trip:\n got %q\nwant %q", rebuilt, raw)
	}
	return []byte(raw), nil
}

// WriteFiles materializes the generated assets under dir.
func WriteFiles(dir string) error {
	adt, err := BuildADT()
	if err != nil {
		return err
	}
	oru, err := BuildORU()
	if err != nil {
		return err
	}
	prof, err := BuildProfile()
	if err != nil {
		return err
	}

	if err := writeFileIfChanged(filepath.Join(dir, ADTFileName), adt); err != nil {
		return err
	}
	if err := writeFileIfChanged(filepath.Join(dir, ORUFileName), oru); err != nil {
		return err
	}
	return writeFileIfChanged(filepath.Join(dir, ProfileFileName), prof)
}

func writeFileIfChanged(path string, data []byte) error {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return nil
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
