package entities

import (
	"bytes"
	"encoding/json"
)

// Prop keys with a typed representation
const (
	PropSpellbook   = "spellbook"
	PropArmor       = "armor"
	PropShieldBonus = "shield_bonus"
)

// Props is the item property object. Known keys are decoded into typed
// fields; everything else, including known keys whose value does not fit
// the typed shape, is kept verbatim in Extra.
type Props struct {
	Spellbook   *Spellbook
	Armor       *ArmorProps
	ShieldBonus *int
	Extra       map[string]json.RawMessage
}

// ArmorProps describes worn armor
type ArmorProps struct {
	Base     *int   `json:"base,omitempty"`
	Category string `json:"category,omitempty"`
	DexCap   *int   `json:"dex_cap,omitempty"`
}

// IsEmpty reports whether the props object has no keys
func (p Props) IsEmpty() bool {
	return p.Spellbook == nil && p.Armor == nil && p.ShieldBonus == nil && len(p.Extra) == 0
}

// MarshalJSON reassembles the single props object
func (p Props) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.Extra)+3)
	for k, v := range p.Extra {
		out[k] = v
	}

	if p.Spellbook != nil {
		raw, err := json.Marshal(p.Spellbook)
		if err != nil {
			return nil, err
		}
		out[PropSpellbook] = raw
	}
	if p.Armor != nil {
		raw, err := json.Marshal(p.Armor)
		if err != nil {
			return nil, err
		}
		out[PropArmor] = raw
	}
	if p.ShieldBonus != nil {
		raw, err := json.Marshal(*p.ShieldBonus)
		if err != nil {
			return nil, err
		}
		out[PropShieldBonus] = raw
	}

	return json.Marshal(out)
}

// UnmarshalJSON splits the props object into typed and generic parts
func (p *Props) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*p = Props{}
	for key, raw := range fields {
		switch key {
		case PropSpellbook:
			var sb Spellbook
			if !isNull(raw) && json.Unmarshal(raw, &sb) == nil {
				p.Spellbook = &sb
				continue
			}
		case PropArmor:
			var armor ArmorProps
			if !isNull(raw) && decodeStrict(raw, &armor) == nil {
				p.Armor = &armor
				continue
			}
		case PropShieldBonus:
			var bonus int
			if !isNull(raw) && json.Unmarshal(raw, &bonus) == nil {
				p.ShieldBonus = &bonus
				continue
			}
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			return err
		}
		if p.Extra == nil {
			p.Extra = make(map[string]json.RawMessage)
		}
		p.Extra[key] = json.RawMessage(compact.Bytes())
	}

	return nil
}

// ParseProps decodes free-text props as typed by the user. Blank text is
// an empty object.
func ParseProps(text string) (Props, error) {
	var p Props
	if len(bytes.TrimSpace([]byte(text))) == 0 {
		return p, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return Props{}, err
	}
	if fields == nil {
		return p, nil
	}

	if err := p.UnmarshalJSON([]byte(text)); err != nil {
		return Props{}, err
	}
	return p, nil
}

// Clone returns a deep copy of the props
func (p Props) Clone() Props {
	out := Props{Spellbook: p.Spellbook.Clone()}

	if p.Armor != nil {
		armor := *p.Armor
		if p.Armor.Base != nil {
			base := *p.Armor.Base
			armor.Base = &base
		}
		if p.Armor.DexCap != nil {
			dexCap := *p.Armor.DexCap
			armor.DexCap = &dexCap
		}
		out.Armor = &armor
	}
	if p.ShieldBonus != nil {
		bonus := *p.ShieldBonus
		out.ShieldBonus = &bonus
	}
	out.Extra = cloneRaw(p.Extra)

	return out
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeStrict(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
