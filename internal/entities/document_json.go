package entities

import "encoding/json"

// Document member names
const (
	keyName          = "name"
	keyLevel         = "level"
	keyModule        = "module"
	keyAbilities     = "abilities"
	keySkills        = "skills"
	keyProficiencies = "proficiencies"
	keyItems         = "items"
	keyFeats         = "feats"
	keyNotes         = "notes"
)

// MarshalJSON writes the document. Empty collections are written as empty
// objects and arrays, never null.
func (d Document) MarshalJSON() ([]byte, error) {
	abilities := d.Abilities
	if abilities == nil {
		abilities = map[string]Ability{}
	}
	skills := d.Skills
	if skills == nil {
		skills = []Skill{}
	}
	items := d.Items
	if items == nil {
		items = []Item{}
	}
	feats := d.Feats
	if feats == nil {
		feats = []Feat{}
	}

	w := newObjectWriter(d.Extra)
	w.field(keyName, d.Name, d.Name == "")
	w.field(keyLevel, d.Level, d.Level == 0)
	w.field(keyModule, d.Module, d.Module == "")
	w.field(keyAbilities, abilities, len(d.Abilities) == 0)
	w.field(keySkills, skills, len(d.Skills) == 0)
	w.field(keyProficiencies, d.Proficiencies, d.Proficiencies.isEmpty())
	w.field(keyItems, items, len(d.Items) == 0)
	w.field(keyFeats, feats, len(d.Feats) == 0)
	w.optional(keyNotes, d.Notes, d.Notes == "")
	return w.bytes()
}

// UnmarshalJSON accepts any JSON object. Empty collections decode to nil.
func (d *Document) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	*d = Document{}
	for key, raw := range fields {
		var ok bool
		switch key {
		case keyName:
			ok = decodeField(raw, &d.Name)
		case keyLevel:
			ok = decodeField(raw, &d.Level)
		case keyModule:
			ok = decodeField(raw, &d.Module)
		case keyAbilities:
			ok = decodeField(raw, &d.Abilities)
		case keySkills:
			ok = decodeField(raw, &d.Skills)
		case keyProficiencies:
			ok = decodeField(raw, &d.Proficiencies)
		case keyItems:
			ok = decodeField(raw, &d.Items)
		case keyFeats:
			ok = decodeField(raw, &d.Feats)
		case keyNotes:
			ok = decodeField(raw, &d.Notes)
		}
		if ok {
			continue
		}
		if err := keepRaw(&d.Extra, key, raw); err != nil {
			return err
		}
	}

	if len(d.Abilities) == 0 {
		d.Abilities = nil
	}
	if len(d.Skills) == 0 {
		d.Skills = nil
	}
	if len(d.Items) == 0 {
		d.Items = nil
	}
	if len(d.Feats) == 0 {
		d.Feats = nil
	}
	return nil
}

func (a Ability) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(a.Extra)
	w.field("name", a.Name, a.Name == "")
	w.field("score", a.Score, a.Score == 0)
	return w.bytes()
}

func (a *Ability) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	*a = Ability{}
	for key, raw := range fields {
		var ok bool
		switch key {
		case "name":
			ok = decodeField(raw, &a.Name)
		case "score":
			ok = decodeField(raw, &a.Score)
		}
		if !ok {
			if err := keepRaw(&a.Extra, key, raw); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s Skill) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(s.Extra)
	w.field("name", s.Name, s.Name == "")
	w.field("ability", s.Ability, s.Ability == "")
	return w.bytes()
}

func (s *Skill) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	*s = Skill{}
	for key, raw := range fields {
		var ok bool
		switch key {
		case "name":
			ok = decodeField(raw, &s.Name)
		case "ability":
			ok = decodeField(raw, &s.Ability)
		}
		if !ok {
			if err := keepRaw(&s.Extra, key, raw); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p Proficiencies) isEmpty() bool {
	return len(p.SavingThrows) == 0 && len(p.Extra) == 0
}

func (p Proficiencies) MarshalJSON() ([]byte, error) {
	saves := p.SavingThrows
	if saves == nil {
		saves = map[string]bool{}
	}

	w := newObjectWriter(p.Extra)
	w.field("saving_throws", saves, len(p.SavingThrows) == 0)
	return w.bytes()
}

func (p *Proficiencies) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	*p = Proficiencies{}
	for key, raw := range fields {
		if key == "saving_throws" && decodeField(raw, &p.SavingThrows) {
			continue
		}
		if err := keepRaw(&p.Extra, key, raw); err != nil {
			return err
		}
	}
	if len(p.SavingThrows) == 0 {
		p.SavingThrows = nil
	}
	return nil
}

func (i Item) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(i.Extra)
	w.field("name", i.Name, i.Name == "")
	w.field("quantity", i.Quantity, i.Quantity == 0)
	w.field("props", i.Props, i.Props.IsEmpty())
	return w.bytes()
}

func (i *Item) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	*i = Item{}
	for key, raw := range fields {
		var ok bool
		switch key {
		case "name":
			ok = decodeField(raw, &i.Name)
		case "quantity":
			ok = decodeField(raw, &i.Quantity)
		case "props":
			ok = decodeField(raw, &i.Props)
		}
		if !ok {
			if err := keepRaw(&i.Extra, key, raw); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f Feat) MarshalJSON() ([]byte, error) {
	w := newObjectWriter(f.Extra)
	w.field("name", f.Name, f.Name == "")
	w.optional("description", f.Description, f.Description == "")
	return w.bytes()
}

func (f *Feat) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	*f = Feat{}
	for key, raw := range fields {
		var ok bool
		switch key {
		case "name":
			ok = decodeField(raw, &f.Name)
		case "description":
			ok = decodeField(raw, &f.Description)
		}
		if !ok {
			if err := keepRaw(&f.Extra, key, raw); err != nil {
				return err
			}
		}
	}
	return nil
}

var (
	_ json.Marshaler   = Document{}
	_ json.Unmarshaler = (*Document)(nil)
)
