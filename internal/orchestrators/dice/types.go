package dice

import (
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
)

// RollAbilityScoresInput defines the request for rolling ability scores
type RollAbilityScoresInput struct {
	SessionID string
	// Method is one of the Method constants; empty means MethodStandard
	Method string
}

// RollAbilityScoresOutput holds the rolls and the score per ability key
type RollAbilityScoresOutput struct {
	Rolls  []dicesession.Roll
	Scores map[string]int
	// RollSet is nil when the rolls could not be stored
	RollSet *dicesession.RollSet
}

// GetAbilityRollsInput identifies the session
type GetAbilityRollsInput struct {
	SessionID string
}

// GetAbilityRollsOutput holds the stored rolls
type GetAbilityRollsOutput struct {
	RollSet *dicesession.RollSet
}

// ClearRollsInput identifies the session
type ClearRollsInput struct {
	SessionID string
}

// ClearRollsOutput reports how many rolls were removed
type ClearRollsOutput struct {
	RollsDeleted int
}
