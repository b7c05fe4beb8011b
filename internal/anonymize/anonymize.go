// Package anonymize scrubs PHI-bearing segments (PID, NK1, GT1, IN1,
// MRG) from a parsed message. Identifiers keep their shape (digits stay
// digits), names and addresses are drawn from fixed pools, and dates
// are shifted by a bounded random amount so the output still looks like
// a plausible message.
package anonymize

import (
	"math/rand"
	"strings"
	"time"

	"github.com/klauseduard/hl7-tools/internal/hl7"
)

// Anonymizer rewrites PHI fields in place on a cloned message tree.
// NonASCII selects the diacritic-heavy name and address pools, used to
// stress-test downstream transliteration and encoding paths.
type Anonymizer struct {
	rng      *rand.Rand
	NonASCII bool
	Audit    *AuditLog // optional scrub trail
}

// New returns an anonymizer seeded from the clock.
func New(nonASCII bool) *Anonymizer {
	return NewSeeded(nonASCII, time.Now().UnixNano())
}

// NewSeeded returns an anonymizer with a fixed seed, for reproducible
// output.
func NewSeeded(nonASCII bool, seed int64) *Anonymizer {
	return &Anonymizer{rng: rand.New(rand.NewSource(seed)), NonASCII: nonASCII}
}

// Message clones msg, scrubs the PHI segments on the clone and rebuilds
// their raw lines. The input is never touched.
func (a *Anonymizer) Message(msg *hl7.ParsedMessage) *hl7.ParsedMessage {
	out := msg.Clone()
	if out == nil {
		return nil
	}
	for _, seg := range out.Segments {
		rules, ok := segmentRules[seg.Name]
		if !ok {
			continue
		}
		touched := false
		for _, f := range seg.Fields {
			rule, ok := rules[f.FieldNum]
			if !ok {
				continue
			}
			newRaw, changed := a.apply(rule, f.RawValue)
			if !changed {
				continue
			}
			hl7.ReparseField(f, newRaw)
			touched = true
			a.Audit.Record(f.Address, rule)
		}
		if touched {
			hl7.RebuildRawLine(seg)
		}
	}
	return out
}

// rule names the scrub strategy for one field.
type rule string

const (
	ruleID       rule = "id"        // CX: randomize digits of component 1
	ruleName     rule = "name"      // XPN: pool family/given, clear middle
	ruleDate     rule = "date"      // TS: shift year by a bounded amount
	ruleAddress  rule = "address"   // XAD: pool street/city, randomize zip
	rulePhone    rule = "phone"     // XTN: randomize every digit
	ruleAlphanum rule = "alphanum"  // free text: randomize letters and digits
	ruleDigits   rule = "digits"    // randomize digits only
	ruleCity     rule = "city"      // replace whole value with a pool city
)

// segmentRules maps segment code and field number to the strategy. The
// selection mirrors where the standard places patient, kin, guarantor,
// insured and merged-patient identity data.
var segmentRules = map[string]map[int]rule{
	"PID": {
		2: ruleID, 3: ruleID,
		5: ruleName, 6: ruleName, 9: ruleName,
		7:  ruleDate,
		11: ruleAddress,
		13: rulePhone, 14: rulePhone,
		18: ruleID, 21: ruleID,
		19: ruleAlphanum, 20: ruleAlphanum,
		23: ruleCity,
	},
	"NK1": {
		2: ruleName,
		4: ruleAddress,
		5: rulePhone, 6: rulePhone,
	},
	"GT1": {
		3: ruleName,
		5: ruleAddress,
		6: rulePhone, 7: rulePhone,
		8:  ruleDate,
		12: ruleDigits,
	},
	"IN1": {
		16: ruleName,
		18: ruleDate,
		19: ruleAddress,
	},
	"MRG": {
		1: ruleID, 2: ruleID, 3: ruleID, 4: ruleID,
		7: ruleName,
	},
}

func (a *Anonymizer) apply(r rule, raw string) (string, bool) {
	if raw == "" {
		return raw, false
	}
	switch r {
	case ruleID:
		return a.fakeID(raw), true
	case ruleName:
		return a.fakeName(raw), true
	case ruleDate:
		return a.shiftDate(raw), true
	case ruleAddress:
		return a.fakeAddress(raw), true
	case rulePhone:
		return a.fakePhone(raw), true
	case ruleAlphanum:
		return a.randomizeAlphanum(raw), true
	case ruleDigits:
		return a.randomizeDigits(raw), true
	case ruleCity:
		return a.pickCity(), true
	}
	return raw, false
}

// fakeID randomizes the digits of component 1 in every repetition,
// keeping check digits, authorities and type codes readable.
func (a *Anonymizer) fakeID(raw string) string {
	return a.mapReps(raw, func(parts []string) {
		parts[0] = a.randomizeDigits(parts[0])
	})
}

// fakeName replaces family and given name from the pool and clears the
// middle name, per repetition.
func (a *Anonymizer) fakeName(raw string) string {
	pool := asciiNames
	if a.NonASCII {
		pool = estonianNames
	}
	return a.mapReps(raw, func(parts []string) {
		n := pool[a.rng.Intn(len(pool))]
		parts[0] = n.family
		if len(parts) > 1 {
			parts[1] = n.given
		}
		if len(parts) > 2 {
			parts[2] = ""
		}
	})
}

// fakeAddress replaces street and city from the pool, clears the other
// designation and randomizes the postal code.
func (a *Anonymizer) fakeAddress(raw string) string {
	streets, cities := asciiStreets, asciiCities
	if a.NonASCII {
		streets, cities = estonianStreets, estonianCities
	}
	return a.mapReps(raw, func(parts []string) {
		parts[0] = streets[a.rng.Intn(len(streets))]
		if len(parts) > 1 {
			parts[1] = ""
		}
		if len(parts) > 2 {
			parts[2] = cities[a.rng.Intn(len(cities))]
		}
		if len(parts) > 4 && parts[4] != "" {
			parts[4] = a.randomizeDigits(parts[4])
		}
	})
}

func (a *Anonymizer) fakePhone(raw string) string {
	return a.mapReps(raw, func(parts []string) {
		for i := range parts {
			parts[i] = a.randomizeDigits(parts[i])
		}
	})
}

// mapReps applies fn to the component slice of each repetition and
// reassembles the raw value with the original separators.
func (a *Anonymizer) mapReps(raw string, fn func(parts []string)) string {
	reps := strings.Split(raw, hl7.RepetitionSeparator)
	for i, rep := range reps {
		parts := strings.Split(rep, hl7.ComponentSeparator)
		fn(parts)
		reps[i] = strings.Join(parts, hl7.ComponentSeparator)
	}
	return strings.Join(reps, hl7.RepetitionSeparator)
}

// shiftDate moves the year by 1-20 years in either direction, clamped
// to 1900-2099, leaving the rest of the timestamp untouched.
func (a *Anonymizer) shiftDate(raw string) string {
	if len(raw) < 4 {
		return raw
	}
	year := 0
	for _, ch := range raw[:4] {
		if ch < '0' || ch > '9' {
			return raw
		}
		year = year*10 + int(ch-'0')
	}
	shift := a.rng.Intn(20) + 1
	if a.rng.Intn(2) == 0 {
		shift = -shift
	}
	year += shift
	if year < 1900 {
		year = 1900
	}
	if year > 2099 {
		year = 2099
	}
	return itoa4(year) + raw[4:]
}

func itoa4(year int) string {
	b := [4]byte{}
	for i := 3; i >= 0; i-- {
		b[i] = byte('0' + year%10)
		year /= 10
	}
	return string(b[:])
}

func (a *Anonymizer) randomizeDigits(s string) string {
	out := []rune(s)
	for i, ch := range out {
		if ch >= '0' && ch <= '9' {
			out[i] = rune('0' + a.rng.Intn(10))
		}
	}
	return string(out)
}

func (a *Anonymizer) randomizeAlphanum(s string) string {
	out := []rune(s)
	for i, ch := range out {
		switch {
		case ch >= '0' && ch <= '9':
			out[i] = rune('0' + a.rng.Intn(10))
		case ch >= 'A' && ch <= 'Z':
			out[i] = rune('A' + a.rng.Intn(26))
		case ch >= 'a' && ch <= 'z':
			out[i] = rune('a' + a.rng.Intn(26))
		}
	}
	return string(out)
}

func (a *Anonymizer) pickCity() string {
	if a.NonASCII {
		return estonianCities[a.rng.Intn(len(estonianCities))]
	}
	return asciiCities[a.rng.Intn(len(asciiCities))]
}
