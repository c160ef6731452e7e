// Package dicesession stores the dice rolled for a sheet session so the
// rolls behind applied ability scores can be shown again.
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session Repository

// RollSet groups the rolls made for one purpose in one session
type RollSet struct {
	// Sheet session that owns the rolls
	SessionID string `json:"session_id"`

	// Purpose of the rolls, e.g. "ability_scores"
	Context string `json:"context"`

	// Method used, e.g. "4d6_drop_lowest"
	Method string `json:"method"`

	Rolls []Roll `json:"rolls"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Roll is one rolled value
type Roll struct {
	// Label names what the roll was for, e.g. an ability key
	Label string `json:"label"`

	Notation string `json:"notation"`

	// Kept dice in the order rolled
	Dice []int `json:"dice"`

	// Dice discarded by a drop-lowest method
	Dropped []int `json:"dropped,omitempty"`

	Total int `json:"total"`
}

// SaveInput contains parameters for storing a roll set
type SaveInput struct {
	SessionID string
	Context   string
	Method    string
	Rolls     []Roll
	TTL       time.Duration
}

// SaveOutput contains the stored roll set
type SaveOutput struct {
	RollSet *RollSet
}

// GetInput identifies a roll set
type GetInput struct {
	SessionID string
	Context   string
}

// GetOutput contains the roll set
type GetOutput struct {
	RollSet *RollSet
}

// DeleteInput identifies a roll set to remove
type DeleteInput struct {
	SessionID string
	Context   string
}

// DeleteOutput reports how many rolls were removed
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines roll set storage
type Repository interface {
	// Save replaces any roll set stored under the same session and context
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get returns NotFound when the set is missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a roll set; deleting a missing set is not an error
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
