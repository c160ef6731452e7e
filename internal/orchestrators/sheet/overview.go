package sheet

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// UpdateName renames the character
func (o *Orchestrator) UpdateName(ctx context.Context, input *sheet.UpdateNameInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.mutate(ctx, input.SessionID, false, func(doc *entities.Document) error {
		doc.Name = input.Name
		return nil
	})
}

// UpdateLevel sets the character level, clamped to the allowed range
func (o *Orchestrator) UpdateLevel(ctx context.Context, input *sheet.UpdateLevelInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	level := entities.ClampLevel(input.Level)
	return o.mutate(ctx, input.SessionID, true, func(doc *entities.Document) error {
		doc.Level = level
		return nil
	})
}

// UpdateNotes replaces the free-text notes
func (o *Orchestrator) UpdateNotes(ctx context.Context, input *sheet.UpdateNotesInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.mutate(ctx, input.SessionID, false, func(doc *entities.Document) error {
		doc.Notes = input.Notes
		return nil
	})
}

// UpdateAbilityScore sets one ability score, clamped to the allowed range
func (o *Orchestrator) UpdateAbilityScore(ctx context.Context, input *sheet.UpdateAbilityScoreInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	key, err := abilityKey(input.Ability)
	if err != nil {
		return nil, err
	}
	score := entities.ClampScore(input.Score)

	return o.mutate(ctx, input.SessionID, true, func(doc *entities.Document) error {
		setScore(doc, key, score)
		return nil
	})
}

// RollAbilityScores rolls all six scores and applies them
func (o *Orchestrator) RollAbilityScores(ctx context.Context, input *sheet.RollAbilityScoresInput) (*sheet.RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.session(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.Store.Get() == nil {
		return nil, errors.FailedPrecondition("no character loaded")
	}

	rolled, err := o.dice.RollAbilityScores(ctx, &dice.RollAbilityScoresInput{
		SessionID: sess.ID,
		Method:    input.Method,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores")
	}

	out, err := o.mutate(ctx, sess.ID, true, func(doc *entities.Document) error {
		for key, score := range rolled.Scores {
			setScore(doc, key, entities.ClampScore(score))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &sheet.RollAbilityScoresOutput{
		SheetOutput: *out,
		Rolls:       rolled.Rolls,
	}, nil
}

// GetAbilityRolls returns the last stored ability rolls
func (o *Orchestrator) GetAbilityRolls(ctx context.Context, input *sheet.GetAbilityRollsInput) (*sheet.GetAbilityRollsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.session(ctx, input.SessionID); err != nil {
		return nil, err
	}

	got, err := o.dice.GetAbilityRolls(ctx, &dice.GetAbilityRollsInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}
	return &sheet.GetAbilityRollsOutput{RollSet: got.RollSet}, nil
}

// SetSavingThrow sets the proficiency flag of one saving throw
func (o *Orchestrator) SetSavingThrow(ctx context.Context, input *sheet.SetSavingThrowInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	key, err := abilityKey(input.Ability)
	if err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.SessionID, true, func(doc *entities.Document) error {
		if doc.Proficiencies.SavingThrows == nil {
			doc.Proficiencies.SavingThrows = make(map[string]bool, len(entities.AbilityKeys))
		}
		doc.Proficiencies.SavingThrows[key] = input.Proficient
		return nil
	})
}

func abilityKey(ability string) (string, error) {
	key := strings.ToUpper(strings.TrimSpace(ability))
	if !entities.IsAbilityKey(key) {
		return "", errors.InvalidArgumentf("unknown ability: %q", ability)
	}
	return key, nil
}

// setScore updates a score, filling in the display name for new entries
func setScore(doc *entities.Document, key string, score int) {
	if doc.Abilities == nil {
		doc.Abilities = make(map[string]entities.Ability, len(entities.AbilityKeys))
	}
	entry, ok := doc.Abilities[key]
	if !ok {
		entry.Name = entities.AbilityNames[key]
	}
	entry.Score = score
	doc.Abilities[key] = entry
}

