package external

import (
	"fmt"
	"strings"

	"github.com/fadedpez/dnd5e-api/entities"
)

// buildSpellDescription summarizes the structured spell data
func buildSpellDescription(spell *entities.Spell) string {
	if spell == nil {
		return "Spell details not available"
	}

	parts := []string{buildSpellHeader(spell)}

	if spell.CastingTime != "" {
		parts = append(parts, fmt.Sprintf("Casting Time: %s", spell.CastingTime))
	}
	if spell.Range != "" {
		parts = append(parts, fmt.Sprintf("Range: %s", spell.Range))
	}
	if spell.Duration != "" {
		parts = append(parts, fmt.Sprintf("Duration: %s", spell.Duration))
	}

	if spell.SpellDamage != nil {
		if spell.SpellDamage.SpellDamageType != nil {
			parts = append(parts, fmt.Sprintf("Damage Type: %s", spell.SpellDamage.SpellDamageType.Name))
		}
		if spell.SpellDamage.SpellDamageAtSlotLevel != nil {
			if base := baseDamage(spell.SpellLevel, spell.SpellDamage.SpellDamageAtSlotLevel); base != "" {
				parts = append(parts, fmt.Sprintf("Base Damage: %s", base))
			}
		}
	}

	if spell.DC != nil {
		dcInfo := "Saving Throw"
		if spell.DC.DCType != nil {
			dcInfo = fmt.Sprintf("%s Save", spell.DC.DCType.Name)
		}
		if spell.DC.DCSuccess != "" {
			dcInfo += fmt.Sprintf(" (%s)", spell.DC.DCSuccess)
		}
		parts = append(parts, dcInfo)
	}

	if spell.AreaOfEffect != nil {
		parts = append(parts, fmt.Sprintf("Area: %s (%d ft)", spell.AreaOfEffect.Type, spell.AreaOfEffect.Size))
	}

	return strings.Join(parts, ". ")
}

// baseDamage returns the damage at the spell's lowest casting level
func baseDamage(level int, damage *entities.SpellDamageAtSlotLevel) string {
	switch level {
	case 0, 1:
		return damage.FirstLevel
	case 2:
		return damage.SecondLevel
	case 3:
		return damage.ThirdLevel
	case 4:
		return damage.FourthLevel
	case 5:
		return damage.FifthLevel
	case 6:
		return damage.SixthLevel
	case 7:
		return damage.SeventhLevel
	case 8:
		return damage.EighthLevel
	case 9:
		return damage.NinthLevel
	default:
		return ""
	}
}

func buildSpellHeader(spell *entities.Spell) string {
	levelStr := "Cantrip"
	if spell.SpellLevel > 0 {
		levelStr = fmt.Sprintf("Level %d", spell.SpellLevel)
	}

	schoolName := "Unknown School"
	if spell.SpellSchool != nil {
		schoolName = spell.SpellSchool.Name
	}

	return fmt.Sprintf("%s %s spell", levelStr, schoolName)
}
