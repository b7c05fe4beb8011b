package hl7

// Clone returns a deep copy sharing no state with the receiver, so the
// copy can be mutated freely.
func (m *ParsedMessage) Clone() *ParsedMessage {
	if m == nil {
		return nil
	}
	out := &ParsedMessage{
		Version:         m.Version,
		MessageType:     m.MessageType,
		DeclaredCharset: m.DeclaredCharset,
		Segments:        make([]*Segment, 0, len(m.Segments)),
	}
	for _, seg := range m.Segments {
		cs := &Segment{
			Name:     seg.Name,
			RepIndex: seg.RepIndex,
			RawLine:  seg.RawLine,
			Fields:   make([]*Field, 0, len(seg.Fields)),
		}
		for _, f := range seg.Fields {
			cs.Fields = append(cs.Fields, cloneField(f))
		}
		out.Segments = append(out.Segments, cs)
	}
	return out
}

func cloneField(f *Field) *Field {
	cf := &Field{
		FieldNum: f.FieldNum,
		Address:  f.Address,
		Value:    f.Value,
		RawValue: f.RawValue,
	}
	if f.Components != nil {
		cf.Components = cloneComponents(f.Components)
	}
	if f.Repetitions != nil {
		cf.Repetitions = make([]Repetition, 0, len(f.Repetitions))
		for _, r := range f.Repetitions {
			cf.Repetitions = append(cf.Repetitions, Repetition{
				Index:      r.Index,
				Value:      r.Value,
				Components: cloneComponents(r.Components),
			})
		}
	}
	return cf
}

func cloneComponents(comps []Component) []Component {
	if comps == nil {
		return nil
	}
	out := make([]Component, 0, len(comps))
	for _, c := range comps {
		cc := Component{Index: c.Index, Value: c.Value}
		if c.Subcomponents != nil {
			cc.Subcomponents = append([]string(nil), c.Subcomponents...)
		}
		out = append(out, cc)
	}
	return out
}
