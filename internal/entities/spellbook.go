package entities

import "encoding/json"

// CantripsKey is the known-spells key holding cantrips
const CantripsKey = "cantrips"

// Spellbook lists known spells by level and the subset prepared for the day.
// Known is keyed by CantripsKey and "1".."9"; Prepared by "1".."9" only.
// Other members of the spellbook object are kept verbatim in Extra.
type Spellbook struct {
	Known    map[string][]string
	Prepared map[string][]string
	Extra    map[string]json.RawMessage
}

// NewSpellbook returns an empty spellbook in its normalized shape
func NewSpellbook() *Spellbook {
	return &Spellbook{
		Known:    map[string][]string{CantripsKey: {}},
		Prepared: map[string][]string{},
	}
}

// Clone returns a deep copy of the spellbook
func (s *Spellbook) Clone() *Spellbook {
	if s == nil {
		return nil
	}
	return &Spellbook{
		Known:    cloneLists(s.Known),
		Prepared: cloneLists(s.Prepared),
		Extra:    cloneRaw(s.Extra),
	}
}

func cloneLists(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, v := range in {
		if v == nil {
			out[k] = nil
			continue
		}
		out[k] = append([]string{}, v...)
	}
	return out
}

// MarshalJSON writes known and prepared as objects, never null
func (s Spellbook) MarshalJSON() ([]byte, error) {
	known := s.Known
	if known == nil {
		known = map[string][]string{}
	}
	prepared := s.Prepared
	if prepared == nil {
		prepared = map[string][]string{}
	}

	w := newObjectWriter(s.Extra)
	w.field("known", known, s.Known == nil)
	w.field("prepared", prepared, s.Prepared == nil)
	return w.bytes()
}

func (s *Spellbook) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	*s = Spellbook{}
	for key, raw := range fields {
		var ok bool
		switch key {
		case "known":
			ok = decodeField(raw, &s.Known)
		case "prepared":
			ok = decodeField(raw, &s.Prepared)
		}
		if !ok {
			if err := keepRaw(&s.Extra, key, raw); err != nil {
				return err
			}
		}
	}
	return nil
}
