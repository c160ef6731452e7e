package entities

import "encoding/json"

// Ability keys as they appear in the document
const (
	AbilityStrength     = "STR"
	AbilityDexterity    = "DEX"
	AbilityConstitution = "CON"
	AbilityIntelligence = "INT"
	AbilityWisdom       = "WIS"
	AbilityCharisma     = "CHA"
)

// AbilityKeys lists the six ability keys in sheet order
var AbilityKeys = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// AbilityNames maps ability keys to their display names
var AbilityNames = map[string]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

// Level and score bounds enforced by the editor
const (
	MinLevel = 1
	MaxLevel = 20
	MinScore = 1
	MaxScore = 30
)

// Document is the character record as saved to and loaded from disk.
// JSON field names are part of the file format. Members the editor does not
// model, and modelled members whose value does not fit, are kept verbatim
// in Extra and written back on save.
type Document struct {
	Name          string
	Level         int
	Module        string
	Abilities     map[string]Ability
	Skills        []Skill
	Proficiencies Proficiencies
	Items         []Item
	Feats         []Feat
	Notes         string
	Extra         map[string]json.RawMessage
}

// Ability is one ability score entry
type Ability struct {
	Name  string
	Score int
	Extra map[string]json.RawMessage
}

// Skill ties a skill to the ability it keys off
type Skill struct {
	Name    string
	Ability string
	Extra   map[string]json.RawMessage
}

// Proficiencies holds per-ability proficiency flags
type Proficiencies struct {
	SavingThrows map[string]bool
	Extra        map[string]json.RawMessage
}

// Item is an inventory entry. Props carries item-specific rule data.
type Item struct {
	Name     string
	Quantity int
	Props    Props
	Extra    map[string]json.RawMessage
}

// Feat is a named feature with free-text description
type Feat struct {
	Name        string
	Description string
	Extra       map[string]json.RawMessage
}

// IsAbilityKey reports whether key is one of the six ability keys
func IsAbilityKey(key string) bool {
	_, ok := AbilityNames[key]
	return ok
}

// ClampLevel bounds a character level to [MinLevel, MaxLevel]
func ClampLevel(level int) int {
	return clamp(level, MinLevel, MaxLevel)
}

// ClampScore bounds an ability score to [MinScore, MaxScore]
func ClampScore(score int) int {
	return clamp(score, MinScore, MaxScore)
}

// NormalizeQuantity treats anything below one as a single item
func NormalizeQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clone returns a deep copy of the document
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}

	out := *d
	out.Extra = cloneRaw(d.Extra)

	if d.Abilities != nil {
		out.Abilities = make(map[string]Ability, len(d.Abilities))
		for k, v := range d.Abilities {
			v.Extra = cloneRaw(v.Extra)
			out.Abilities[k] = v
		}
	}
	if d.Skills != nil {
		out.Skills = make([]Skill, len(d.Skills))
		for i, skill := range d.Skills {
			skill.Extra = cloneRaw(skill.Extra)
			out.Skills[i] = skill
		}
	}
	out.Proficiencies.Extra = cloneRaw(d.Proficiencies.Extra)
	if d.Proficiencies.SavingThrows != nil {
		out.Proficiencies.SavingThrows = make(map[string]bool, len(d.Proficiencies.SavingThrows))
		for k, v := range d.Proficiencies.SavingThrows {
			out.Proficiencies.SavingThrows[k] = v
		}
	}
	if d.Items != nil {
		out.Items = make([]Item, len(d.Items))
		for i, item := range d.Items {
			out.Items[i] = Item{
				Name:     item.Name,
				Quantity: item.Quantity,
				Props:    item.Props.Clone(),
				Extra:    cloneRaw(item.Extra),
			}
		}
	}
	if d.Feats != nil {
		out.Feats = make([]Feat, len(d.Feats))
		for i, feat := range d.Feats {
			feat.Extra = cloneRaw(feat.Extra)
			out.Feats[i] = feat
		}
	}

	return &out
}
