package profile

import (
	"fmt"

	"github.com/klauseduard/hl7-tools/internal/defs"
	"github.com/klauseduard/hl7-tools/internal/hl7"
)

// Severity grades a validation finding. Structural lookups that fail
// are warnings, never errors: an unknown segment or field is a normal
// outcome for site-custom content.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is one validation observation tied to a segment or field
// address.
type Finding struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Address  string   `json:"address"`
	Message  string   `json:"message"`
}

// Validate checks a parsed message against the definition tables for
// its resolved version and, when non-nil, a site profile's constraints.
// It never fails; a structurally parseable message always yields a
// (possibly empty) finding list.
func Validate(msg *hl7.ParsedMessage, p *Profile) []Finding {
	var findings []Finding
	if msg == nil {
		return findings
	}
	gen := defs.ResolveVersion(msg.Version)

	for _, seg := range msg.Segments {
		segDef, known := defs.Segment(seg.Name, gen)
		if !known {
			sev := SeverityWarning
			if len(seg.Name) == 3 && seg.Name[0] == 'Z' {
				sev = SeverityInfo // site-custom by convention
			}
			findings = append(findings, Finding{
				Severity: sev,
				Code:     "unknown-segment",
				Address:  segLabel(seg),
				Message:  fmt.Sprintf("segment %s has no definition in v%s", seg.Name, gen),
			})
		}

		present := map[int]*hl7.Field{}
		for _, f := range seg.Fields {
			present[f.FieldNum] = f
			if !known {
				continue
			}
			fd, ok := segDef.Fields[f.FieldNum]
			if !ok {
				if f.RawValue != "" {
					findings = append(findings, Finding{
						Severity: SeverityWarning,
						Code:     "unknown-field",
						Address:  f.Address,
						Message:  fmt.Sprintf("field %d not defined for %s in v%s", f.FieldNum, seg.Name, gen),
					})
				}
				continue
			}
			if fd.MaxLen > 0 && len(f.RawValue) > fd.MaxLen {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Code:     "overlong",
					Address:  f.Address,
					Message:  fmt.Sprintf("%s is %d chars, max %d", fd.Name, len(f.RawValue), fd.MaxLen),
				})
			}
		}

		if known {
			for num, fd := range segDef.Fields {
				if fd.Optionality != "R" {
					continue
				}
				if f, ok := present[num]; !ok || f.RawValue == "" {
					findings = append(findings, Finding{
						Severity: SeverityWarning,
						Code:     "missing-required",
						Address:  hl7.Address(seg.Name, seg.RepIndex, num),
						Message:  fmt.Sprintf("%s is required in v%s", fd.Name, gen),
					})
				}
			}
		}

		findings = append(findings, checkProfile(p, seg, present)...)
	}
	return findings
}

// checkProfile enforces a site profile's required/maxLen constraints,
// which are errors rather than warnings: the site declared them.
func checkProfile(p *Profile, seg *hl7.Segment, present map[int]*hl7.Field) []Finding {
	if p == nil {
		return nil
	}
	overlay, ok := p.Segment(seg.Name)
	if !ok {
		return nil
	}
	var findings []Finding
	for key, fld := range overlay.Fields {
		num := 0
		if _, err := fmt.Sscanf(key, "%d", &num); err != nil || num <= 0 {
			continue
		}
		f, have := present[num]
		if fld.Required && (!have || f.RawValue == "") {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Code:     "profile-required",
				Address:  hl7.Address(seg.Name, seg.RepIndex, num),
				Message:  fmt.Sprintf("%s requires %s", p.Name, displayName(fld, num)),
			})
		}
		if fld.MaxLen > 0 && have && len(f.RawValue) > fld.MaxLen {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Code:     "profile-overlong",
				Address:  f.Address,
				Message:  fmt.Sprintf("%s limits %s to %d chars", p.Name, displayName(fld, num), fld.MaxLen),
			})
		}
		if len(fld.ValueMap) > 0 && have && f.Value != "" {
			if _, mapped := fld.ValueMap[f.Value]; !mapped {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Code:     "value-not-in-map",
					Address:  f.Address,
					Message:  fmt.Sprintf("%q is not a mapped value for %s", f.Value, displayName(fld, num)),
				})
			}
		}
	}
	return findings
}

func segLabel(seg *hl7.Segment) string {
	if seg.RepIndex > 1 {
		return fmt.Sprintf("%s[%d]", seg.Name, seg.RepIndex)
	}
	return seg.Name
}

func displayName(fld Field, num int) string {
	if fld.Name != "" {
		return fld.Name
	}
	return fmt.Sprintf("field %d", num)
}
