// Package profile loads integration-profile overlays: site-specific
// field names, descriptions and constraints layered on top of the
// standard definition tables.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Profile is one site's overlay document.
type Profile struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Segments    map[string]Segment `json:"segments,omitempty"`
}

// Segment overlays one segment code.
type Segment struct {
	Name   string           `json:"name,omitempty"`
	Fields map[string]Field `json:"fields,omitempty"`
}

// Field overlays one field. Required and MaxLen add site constraints
// checked by Validate; zero values mean "no constraint". ValueMap maps
// coded values to human labels and doubles as an allowed-value check.
type Field struct {
	Name        string               `json:"name,omitempty"`
	Description string               `json:"description,omitempty"`
	Required    bool                 `json:"required,omitempty"`
	MaxLen      int                  `json:"maxLen,omitempty"`
	ValueMap    map[string]string    `json:"valueMap,omitempty"`
	Components  map[string]Component `json:"components,omitempty"`
}

// Component overlays one component position.
type Component struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Load reads a profile JSON file. A profile without a name is rejected;
// everything else is optional.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile: parse %s: %w", path, err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("profile: %s missing required \"name\" field", path)
	}
	return &p, nil
}

// Segment returns the overlay for a segment code, if any.
func (p *Profile) Segment(code string) (Segment, bool) {
	if p == nil {
		return Segment{}, false
	}
	seg, ok := p.Segments[code]
	return seg, ok
}

// Field returns the overlay for one field, if any.
func (p *Profile) Field(code string, fieldNum int) (Field, bool) {
	seg, ok := p.Segment(code)
	if !ok {
		return Field{}, false
	}
	fld, ok := seg.Fields[strconv.Itoa(fieldNum)]
	return fld, ok
}

// Component returns the overlay for one component position, if any.
func (p *Profile) Component(code string, fieldNum, compIndex int) (Component, bool) {
	fld, ok := p.Field(code, fieldNum)
	if !ok {
		return Component{}, false
	}
	c, ok := fld.Components[strconv.Itoa(compIndex)]
	return c, ok
}
