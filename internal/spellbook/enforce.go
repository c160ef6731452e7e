package spellbook

import (
	"math"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

// Prepared lists prepared spells ordered by level, then insertion order
func Prepared(sb *entities.Spellbook) []Entry {
	if sb == nil {
		return nil
	}
	var all []Entry
	for _, level := range PreparedLevels {
		for _, name := range sb.Prepared[level] {
			all = append(all, Entry{Level: level, Name: name})
		}
	}
	return all
}

// Enforce trims prepared spells down to limit, removing from the end of the
// Prepared order. A nil, NaN or infinite limit leaves the spellbook alone.
// Fractional limits are floored and negative limits act as zero.
// It returns the dropped spells, last-prepared first.
func Enforce(sb *entities.Spellbook, limit *float64) []Entry {
	if sb == nil || limit == nil || math.IsNaN(*limit) || math.IsInf(*limit, 0) {
		return nil
	}

	capacity := math.Max(math.Floor(*limit), 0)

	type position struct {
		entry Entry
		index int
	}
	var all []position
	for _, level := range PreparedLevels {
		for i, name := range sb.Prepared[level] {
			all = append(all, position{entry: Entry{Level: level, Name: name}, index: i})
		}
	}

	if float64(len(all)) <= capacity {
		return nil
	}

	extras := len(all) - int(capacity)
	dropped := make([]Entry, 0, extras)
	for range extras {
		last := all[len(all)-1]
		all = all[:len(all)-1]
		sb.Prepared[last.entry.Level] = sb.Prepared[last.entry.Level][:last.index]
		dropped = append(dropped, last.entry)
	}
	return dropped
}
