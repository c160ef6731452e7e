// Package spellbook locates the spellbook carried in a character's
// inventory and keeps its known and prepared lists consistent.
//
// The spellbook lives in the props of one inventory item. The carrier is the
// first item whose props hold a spellbook or whose name is "Spellbook" in any
// case; files written by older editors may have the named item with no
// spellbook props, which Ensure fills in.
package spellbook

import (
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// CarrierName is the item name used for a created spellbook
const CarrierName = "Spellbook"

// PreparedLevels are the level keys that can hold prepared spells, in order
var PreparedLevels = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

// LevelKeys are all known-spell level keys in display order
var LevelKeys = append([]string{entities.CantripsKey}, PreparedLevels...)

// Entry identifies one prepared spell
type Entry struct {
	Level string `json:"level"`
	Name  string `json:"name"`
}

// LevelKey maps a user-facing level to its storage key. Cantrips may be
// given as "C", "cantrips" or "0".
func LevelKey(level string) (string, error) {
	level = strings.TrimSpace(level)
	switch strings.ToLower(level) {
	case "c", "0", entities.CantripsKey:
		return entities.CantripsKey, nil
	}
	for _, key := range PreparedLevels {
		if level == key {
			return key, nil
		}
	}
	return "", errors.InvalidArgumentf("invalid spell level: %q", level)
}

// Get returns the document's spellbook without modifying anything.
// It returns nil when the document is nil or has no spellbook.
func Get(doc *entities.Document) *entities.Spellbook {
	idx := carrierIndex(doc)
	if idx < 0 {
		return nil
	}
	return doc.Items[idx].Props.Spellbook
}

// Ensure returns the document's spellbook, creating a carrier item when
// none exists and normalizing missing lists in place. Repeated calls return
// the same spellbook. It returns nil only for a nil document.
func Ensure(doc *entities.Document) *entities.Spellbook {
	if doc == nil {
		return nil
	}

	idx := carrierIndex(doc)
	if idx < 0 {
		doc.Items = append(doc.Items, entities.Item{
			Name:     CarrierName,
			Quantity: 1,
			Props:    entities.Props{Spellbook: entities.NewSpellbook()},
		})
		return doc.Items[len(doc.Items)-1].Props.Spellbook
	}

	props := &doc.Items[idx].Props
	if props.Spellbook == nil {
		delete(props.Extra, entities.PropSpellbook)
		if len(props.Extra) == 0 {
			props.Extra = nil
		}
		props.Spellbook = entities.NewSpellbook()
		return props.Spellbook
	}

	sb := props.Spellbook
	if sb.Known == nil {
		sb.Known = map[string][]string{}
	}
	if sb.Prepared == nil {
		sb.Prepared = map[string][]string{}
	}
	if sb.Known[entities.CantripsKey] == nil {
		sb.Known[entities.CantripsKey] = []string{}
	}
	return sb
}

// Carriers counts the items that qualify as a spellbook carrier. More than
// one means all but the first are ignored.
func Carriers(doc *entities.Document) int {
	if doc == nil {
		return 0
	}
	n := 0
	for _, item := range doc.Items {
		if item.Props.Spellbook != nil || isCarrierName(item.Name) {
			n++
		}
	}
	return n
}

// carrierIndex finds the first item holding a spellbook or named like one.
// The rules service picks its carrier the same way.
func carrierIndex(doc *entities.Document) int {
	if doc == nil {
		return -1
	}
	for i, item := range doc.Items {
		if item.Props.Spellbook != nil || isCarrierName(item.Name) {
			return i
		}
	}
	return -1
}

func isCarrierName(name string) bool {
	return strings.EqualFold(name, CarrierName)
}

// AddKnown appends a spell to the known list for level. It reports false
// when the spell was already known there.
func AddKnown(sb *entities.Spellbook, level, name string) (bool, error) {
	if sb == nil {
		return false, errors.FailedPrecondition("no spellbook")
	}
	key, err := LevelKey(level)
	if err != nil {
		return false, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false, errors.InvalidArgument("spell name is required")
	}

	if sb.Known == nil {
		sb.Known = map[string][]string{}
	}
	if contains(sb.Known[key], name) {
		return false, nil
	}
	sb.Known[key] = append(sb.Known[key], name)
	return true, nil
}

// RemoveKnown drops a spell from the known list for level and from the
// prepared list at the same level. It reports false when it was not known.
func RemoveKnown(sb *entities.Spellbook, level, name string) (bool, error) {
	if sb == nil {
		return false, errors.FailedPrecondition("no spellbook")
	}
	key, err := LevelKey(level)
	if err != nil {
		return false, err
	}

	known, removed := without(sb.Known[key], name)
	if !removed {
		return false, nil
	}
	sb.Known[key] = known

	if key != entities.CantripsKey {
		if prepared, ok := without(sb.Prepared[key], name); ok {
			sb.Prepared[key] = prepared
		}
	}
	return true, nil
}

// SetPrepared marks a known spell as prepared or not. Cantrips cannot be
// prepared. The caller applies the capacity with Enforce afterwards.
func SetPrepared(sb *entities.Spellbook, level, name string, prepared bool) error {
	if sb == nil {
		return errors.FailedPrecondition("no spellbook")
	}
	key, err := LevelKey(level)
	if err != nil {
		return err
	}
	if key == entities.CantripsKey {
		return errors.FailedPrecondition("cantrips cannot be prepared")
	}

	if !prepared {
		if list, ok := without(sb.Prepared[key], name); ok {
			sb.Prepared[key] = list
		}
		return nil
	}

	if !contains(sb.Known[key], name) {
		return errors.FailedPreconditionf("%s is not a known level %s spell", name, key)
	}
	if sb.Prepared == nil {
		sb.Prepared = map[string][]string{}
	}
	if !contains(sb.Prepared[key], name) {
		sb.Prepared[key] = append(sb.Prepared[key], name)
	}
	return nil
}

// IsPrepared reports whether name is prepared at level
func IsPrepared(sb *entities.Spellbook, level, name string) bool {
	if sb == nil {
		return false
	}
	return contains(sb.Prepared[level], name)
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}

// without removes the first occurrence of name
func without(list []string, name string) ([]string, bool) {
	for i, v := range list {
		if v == name {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}
