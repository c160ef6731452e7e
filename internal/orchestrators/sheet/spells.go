package sheet

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/suggest"
	"github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/spellbook"
	"github.com/KirkDiggler/rpg-sheet/internal/store"
)

// AddKnownSpell adds a spell to the known list of a level, creating the
// spellbook when the character has none
func (o *Orchestrator) AddKnownSpell(ctx context.Context, input *sheet.AddKnownSpellInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.session(ctx, input.SessionID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		o.notice(ctx, input.SessionID, sheet.NoticeSpellNameRequired)
		return nil, errors.InvalidArgument("spell name is required")
	}
	if _, err := spellbook.LevelKey(input.Level); err != nil {
		return nil, err
	}

	carriers := 0
	out, err := o.mutate(ctx, input.SessionID, false, func(doc *entities.Document) error {
		_, err := spellbook.AddKnown(spellbook.Ensure(doc), input.Level, name)
		carriers = spellbook.Carriers(doc)
		return err
	})
	if err != nil {
		return nil, err
	}

	if carriers > 1 {
		slog.WarnContext(ctx, "Character has more than one spellbook; using the first",
			"session_id", input.SessionID,
			"carriers", carriers,
		)
	}
	return out, nil
}

// RemoveKnownSpell forgets a spell and unprepares it. Unknown spells are
// ignored.
func (o *Orchestrator) RemoveKnownSpell(ctx context.Context, input *sheet.RemoveKnownSpellInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := spellbook.LevelKey(input.Level); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.SessionID, false, func(doc *entities.Document) error {
		sb := spellbook.Get(doc)
		if sb == nil {
			return nil
		}
		_, err := spellbook.RemoveKnown(sb, input.Level, input.Name)
		return err
	})
}

// SetSpellPrepared marks a known spell prepared or not, then trims the
// prepared list to the capacity of the current snapshot
func (o *Orchestrator) SetSpellPrepared(ctx context.Context, input *sheet.SetSpellPreparedInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var dropped []spellbook.Entry
	out, err := o.commit(ctx, input.SessionID, false, func(st *store.Store) (uint64, error) {
		return st.MutateWithDerived(func(doc *entities.Document, derived *entities.Snapshot) error {
			sb := spellbook.Get(doc)
			if sb == nil {
				return errors.FailedPrecondition("character has no spellbook")
			}
			if err := spellbook.SetPrepared(sb, input.Level, input.Name, input.Prepared); err != nil {
				return err
			}
			dropped = spellbook.Enforce(sb, derived.PreparedMax())
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if len(dropped) > 0 {
		slog.InfoContext(ctx, "Prepared spell over capacity was not kept",
			"session_id", input.SessionID,
			"dropped", len(dropped),
		)
		out.Dropped = dropped
	}
	return out, nil
}

// SuggestSpells completes a partial spell name for the session's module
// and spellcasting class
func (o *Orchestrator) SuggestSpells(ctx context.Context, input *sheet.SuggestSpellsInput) (*sheet.SuggestSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.session(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	req := &suggest.SuggestInput{
		SessionID: sess.ID,
		Query:     input.Query,
		Class:     sess.Store.Derived().Class(),
	}
	if doc := sess.Store.Get(); doc != nil {
		req.Module = doc.Module
	}
	if input.Level != "" {
		level, err := spellLevel(input.Level)
		if err != nil {
			return nil, err
		}
		req.Level = &level
	}

	suggested, err := o.suggest.Suggest(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest spells")
	}
	return &sheet.SuggestSpellsOutput{Suggestions: suggested.Suggestions}, nil
}

// spellLevel converts a level key into a number; cantrips are level 0
func spellLevel(level string) (int, error) {
	key, err := spellbook.LevelKey(level)
	if err != nil {
		return 0, err
	}
	if key == entities.CantripsKey {
		return 0, nil
	}
	return strconv.Atoi(key)
}
