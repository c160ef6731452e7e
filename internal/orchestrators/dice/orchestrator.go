// Package dice rolls ability scores for a sheet session and keeps the
// rolls so the sheet can show how each score was made.
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
)

const (
	// ContextAbilityScores groups ability score rolls
	ContextAbilityScores = "ability_scores"

	// DefaultRollTTL is how long rolls stay viewable
	DefaultRollTTL = 15 * time.Minute

	// Rolling methods
	MethodStandard = "4d6_drop_lowest"
	MethodClassic  = "3d6"
	MethodHeroic   = "4d6_reroll_1s"
)

type method struct {
	count    int
	size     int
	drop     int
	rerollTo int
}

var methods = map[string]method{
	MethodStandard: {count: 4, size: 6, drop: 1},
	MethodClassic:  {count: 3, size: 6},
	MethodHeroic:   {count: 4, size: 6, drop: 1, rerollTo: 2},
}

// Service defines ability score rolling
type Service interface {
	// RollAbilityScores rolls one score per ability and stores the rolls,
	// replacing earlier ones for the session.
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)

	// GetAbilityRolls returns the last stored rolls
	GetAbilityRolls(ctx context.Context, input *GetAbilityRollsInput) (*GetAbilityRollsOutput, error)

	// ClearRolls forgets a session's rolls
	ClearRolls(ctx context.Context, input *ClearRollsInput) (*ClearRollsOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	repo   dicesession.Repository
	roller dice.Roller
	ttl    time.Duration
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultRollTTL
	}

	return &orchestrator{
		repo:   cfg.DiceSessionRepo,
		roller: roller,
		ttl:    ttl,
	}, nil
}

func (o *orchestrator) RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	name := input.Method
	if name == "" {
		name = MethodStandard
	}
	m, ok := methods[name]
	if !ok {
		return nil, errors.InvalidArgumentf("unsupported rolling method: %s", name)
	}

	rolls := make([]dicesession.Roll, 0, len(entities.AbilityKeys))
	scores := make(map[string]int, len(entities.AbilityKeys))
	for _, ability := range entities.AbilityKeys {
		roll, err := o.roll(m)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", ability)
		}
		roll.Label = ability
		rolls = append(rolls, roll)
		scores[ability] = roll.Total
	}

	saved, err := o.repo.Save(ctx, dicesession.SaveInput{
		SessionID: input.SessionID,
		Context:   ContextAbilityScores,
		Method:    name,
		Rolls:     rolls,
		TTL:       o.ttl,
	})
	if err != nil {
		// the scores are still usable; only the history is lost
		slog.WarnContext(ctx, "Failed to store ability rolls",
			"session_id", input.SessionID,
			"error", err,
		)
		saved = nil
	}

	slog.InfoContext(ctx, "Ability scores rolled",
		"session_id", input.SessionID,
		"method", name,
		"scores", scores,
	)

	out := &RollAbilityScoresOutput{Rolls: rolls, Scores: scores}
	if saved != nil {
		out.RollSet = saved.RollSet
	}
	return out, nil
}

func (o *orchestrator) GetAbilityRolls(ctx context.Context, input *GetAbilityRollsInput) (*GetAbilityRollsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	got, err := o.repo.Get(ctx, dicesession.GetInput{
		SessionID: input.SessionID,
		Context:   ContextAbilityScores,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get ability rolls")
	}

	return &GetAbilityRollsOutput{RollSet: got.RollSet}, nil
}

func (o *orchestrator) ClearRolls(ctx context.Context, input *ClearRollsInput) (*ClearRollsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	deleted, err := o.repo.Delete(ctx, dicesession.DeleteInput{
		SessionID: input.SessionID,
		Context:   ContextAbilityScores,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear ability rolls")
	}

	slog.DebugContext(ctx, "Ability rolls cleared",
		"session_id", input.SessionID,
		"rolls_deleted", deleted.RollsDeleted,
	)

	return &ClearRollsOutput{RollsDeleted: deleted.RollsDeleted}, nil
}

// roll rolls one score: count dice, rerolling values below rerollTo, then
// dropping the lowest drop dice
func (o *orchestrator) roll(m method) (dicesession.Roll, error) {
	values, err := o.roller.RollN(m.count, m.size)
	if err != nil {
		return dicesession.Roll{}, err
	}
	if len(values) != m.count {
		return dicesession.Roll{}, errors.Internalf("roller returned %d dice, want %d", len(values), m.count)
	}

	for i := range values {
		for values[i] < m.rerollTo {
			if values[i], err = o.roller.Roll(m.size); err != nil {
				return dicesession.Roll{}, err
			}
		}
	}

	kept := slices.Clone(values)
	var dropped []int
	for range m.drop {
		low := slices.Index(kept, slices.Min(kept))
		dropped = append(dropped, kept[low])
		kept = slices.Delete(kept, low, low+1)
	}

	total := 0
	for _, v := range kept {
		total += v
	}

	return dicesession.Roll{
		Notation: fmt.Sprintf("%dd%d", m.count, m.size),
		Dice:     kept,
		Dropped:  dropped,
		Total:    total,
	}, nil
}
