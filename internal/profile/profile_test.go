package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauseduard/hl7-tools/internal/hl7"
)

const sampleProfile = `{
  "name": "East Lab Feed",
  "description": "ORU feed from the east campus lab",
  "segments": {
    "PID": {
      "fields": {
        "5": {
          "name": "Patient Name (lab)",
          "required": true,
          "maxLen": 48,
          "components": {"1": {"name": "Family name"}}
        },
        "19": {"name": "National ID", "required": true}
      }
    }
  }
}`

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	p, err := Load(writeProfile(t, sampleProfile))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Name != "East Lab Feed" {
		t.Errorf("name = %q", p.Name)
	}
	fld, ok := p.Field("PID", 5)
	if !ok || fld.Name != "Patient Name (lab)" || !fld.Required || fld.MaxLen != 48 {
		t.Errorf("PID-5 overlay = %+v, ok=%v", fld, ok)
	}
	comp, ok := p.Component("PID", 5, 1)
	if !ok || comp.Name != "Family name" {
		t.Errorf("PID-5.1 overlay = %+v, ok=%v", comp, ok)
	}
	if _, ok := p.Field("PID", 6); ok {
		t.Error("PID-6 overlay resolved but not defined")
	}
	if _, ok := p.Segment("OBX"); ok {
		t.Error("OBX overlay resolved but not defined")
	}
}

func TestLoadRejectsMissingName(t *testing.T) {
	if _, err := Load(writeProfile(t, `{"segments": {}}`)); err == nil {
		t.Error("profile without name accepted")
	}
	if _, err := Load(writeProfile(t, `not json`)); err == nil {
		t.Error("malformed profile accepted")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("missing file accepted")
	}
}

func mustParse(t *testing.T, raw string) *hl7.ParsedMessage {
	t.Helper()
	msg, err := hl7.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return msg
}

func findByCode(fs []Finding, code string) []Finding {
	var out []Finding
	for _, f := range fs {
		if f.Code == code {
			out = append(out, f)
		}
	}
	return out
}

func TestValidateCleanMessage(t *testing.T) {
	msg := mustParse(t, "MSH|^~\\&|A|B|C|D|20260101||ADT^A01|1|P|2.5\r"+
		"PID|1||123^^^HOSP^PI||Doe^Jane")
	findings := Validate(msg, nil)
	for _, f := range findings {
		if f.Severity == SeverityError {
			t.Errorf("unexpected error finding: %+v", f)
		}
	}
}

func TestValidateUnknownSegmentIsWarning(t *testing.T) {
	msg := mustParse(t, "MSH|^~\\&|A|B|C|D|20260101||ADT^A01|1|P|2.5\r"+
		"PID|1||123||Doe^Jane\rQQQ|1|stuff\rZPD|custom")
	findings := Validate(msg, nil)

	unknown := findByCode(findings, "unknown-segment")
	if len(unknown) != 2 {
		t.Fatalf("unknown-segment findings = %d, want 2", len(unknown))
	}
	for _, f := range unknown {
		switch f.Address {
		case "QQQ":
			if f.Severity != SeverityWarning {
				t.Errorf("QQQ severity = %q, want warning", f.Severity)
			}
		case "ZPD":
			if f.Severity != SeverityInfo {
				t.Errorf("ZPD severity = %q, want info (site-custom)", f.Severity)
			}
		default:
			t.Errorf("unexpected finding at %q", f.Address)
		}
	}
}

func TestValidateMissingRequired(t *testing.T) {
	// PID-3 and PID-5 are required in every generation.
	msg := mustParse(t, "MSH|^~\\&|A|B|C|D|20260101||ADT^A01|1|P|2.5\rPID|1")
	findings := Validate(msg, nil)
	missing := map[string]bool{}
	for _, f := range findByCode(findings, "missing-required") {
		missing[f.Address] = true
	}
	if !missing["PID-3"] || !missing["PID-5"] {
		t.Errorf("missing-required addresses = %v, want PID-3 and PID-5", missing)
	}
}

func TestValidateProfileConstraints(t *testing.T) {
	p, err := Load(writeProfile(t, sampleProfile))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	msg := mustParse(t, "MSH|^~\\&|A|B|C|D|20260101||ADT^A01|1|P|2.5\r"+
		"PID|1||123^^^HOSP^PI||Doe^Jane")
	findings := Validate(msg, p)

	required := findByCode(findings, "profile-required")
	if len(required) != 1 || required[0].Address != "PID-19" {
		t.Fatalf("profile-required = %+v, want one at PID-19", required)
	}
	if required[0].Severity != SeverityError {
		t.Errorf("severity = %q, want error", required[0].Severity)
	}
}

func TestValidateNilMessage(t *testing.T) {
	if got := Validate(nil, nil); len(got) != 0 {
		t.Errorf("findings = %+v, want none", got)
	}
}
