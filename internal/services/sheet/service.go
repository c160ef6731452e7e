// Package sheet defines the operations of a character sheet editing session
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/services/sheet Service

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/notify"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/suggest"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-sheet/internal/spellbook"
)

// Service defines the interface for sheet editing operations
type Service interface {
	// Sessions and documents
	ListModules(ctx context.Context, input *ListModulesInput) (*ListModulesOutput, error)
	NewCharacter(ctx context.Context, input *NewCharacterInput) (*SheetOutput, error)
	LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*SheetOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*SheetOutput, error)
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
	CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error)

	// Rules service
	Derive(ctx context.Context, input *DeriveInput) (*SheetOutput, error)
	Validate(ctx context.Context, input *ValidateInput) (*ValidateOutput, error)

	// Overview and abilities
	UpdateName(ctx context.Context, input *UpdateNameInput) (*SheetOutput, error)
	UpdateLevel(ctx context.Context, input *UpdateLevelInput) (*SheetOutput, error)
	UpdateNotes(ctx context.Context, input *UpdateNotesInput) (*SheetOutput, error)
	UpdateAbilityScore(ctx context.Context, input *UpdateAbilityScoreInput) (*SheetOutput, error)
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
	GetAbilityRolls(ctx context.Context, input *GetAbilityRollsInput) (*GetAbilityRollsOutput, error)
	SetSavingThrow(ctx context.Context, input *SetSavingThrowInput) (*SheetOutput, error)

	// Items
	AddItem(ctx context.Context, input *AddItemInput) (*SheetOutput, error)
	UpdateItem(ctx context.Context, input *UpdateItemInput) (*SheetOutput, error)
	UpdateItemProps(ctx context.Context, input *UpdateItemPropsInput) (*SheetOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*SheetOutput, error)

	// Feats
	AddFeat(ctx context.Context, input *AddFeatInput) (*SheetOutput, error)
	UpdateFeat(ctx context.Context, input *UpdateFeatInput) (*SheetOutput, error)
	RemoveFeat(ctx context.Context, input *RemoveFeatInput) (*SheetOutput, error)

	// Spells
	AddKnownSpell(ctx context.Context, input *AddKnownSpellInput) (*SheetOutput, error)
	RemoveKnownSpell(ctx context.Context, input *RemoveKnownSpellInput) (*SheetOutput, error)
	SetSpellPrepared(ctx context.Context, input *SetSpellPreparedInput) (*SheetOutput, error)
	SuggestSpells(ctx context.Context, input *SuggestSpellsInput) (*SuggestSpellsOutput, error)

	// Notices
	DrainNotices(ctx context.Context, input *DrainNoticesInput) (*DrainNoticesOutput, error)
}

// Sheet is the state of a session after an operation
type Sheet struct {
	SessionID string             `json:"session_id"`
	Document  *entities.Document `json:"document"`
	// Derived is nil while absent or stale
	Derived *entities.Snapshot `json:"derived"`
	Version uint64             `json:"version"`
}

// SheetOutput is returned by every operation that edits or reads a session
type SheetOutput struct {
	Sheet *Sheet
	// Notices raised while handling the request, also queued in the inbox
	Notices []string
	// Dropped lists prepared spells removed to respect capacity
	Dropped []spellbook.Entry
}

// Sessions and documents

// ListModulesInput defines the request for the module catalog
type ListModulesInput struct {
	// SessionID receives a notice when the catalog cannot be loaded; optional
	SessionID string
}

// ListModulesOutput lists modules with the suggested default
type ListModulesOutput struct {
	Modules []*rules.Module
	Default string
}

// NewCharacterInput defines the request for a new character
type NewCharacterInput struct {
	// SessionID of an open session to reuse; a session is opened when empty
	SessionID string
	// ModuleID defaults to the catalog default
	ModuleID string
	// Name defaults to DefaultCharacterName
	Name string
}

// LoadCharacterInput defines the request for opening a character file
type LoadCharacterInput struct {
	// SessionID of an open session to reuse; a session is opened when empty
	SessionID string
	Data      []byte
}

// GetCharacterInput identifies the session
type GetCharacterInput struct {
	SessionID string
}

// SaveCharacterInput identifies the session to save
type SaveCharacterInput struct {
	SessionID string
}

// SaveCharacterOutput holds the file to write
type SaveCharacterOutput struct {
	Filename string
	// Data is the document as two-space indented JSON
	Data []byte
	// Issues are the validation warnings found before saving
	Issues  []string
	Sheet   *Sheet
	Notices []string
}

// ListSessionsInput is empty
type ListSessionsInput struct{}

// ListSessionsOutput lists open session IDs
type ListSessionsOutput struct {
	SessionIDs []string
}

// CloseSessionInput identifies the session to close
type CloseSessionInput struct {
	SessionID string
}

// CloseSessionOutput is empty
type CloseSessionOutput struct{}

// Rules service

// DeriveInput identifies the session to derive
type DeriveInput struct {
	SessionID string
}

// ValidateInput identifies the session to validate
type ValidateInput struct {
	SessionID string
}

// ValidateOutput holds the issue list
type ValidateOutput struct {
	Issues  []string
	Version uint64
	Notices []string
}

// Overview and abilities

// UpdateNameInput sets the character name
type UpdateNameInput struct {
	SessionID string
	Name      string
}

// UpdateLevelInput sets the level; it is clamped to 1..20
type UpdateLevelInput struct {
	SessionID string
	Level     int
}

// UpdateNotesInput replaces the notes
type UpdateNotesInput struct {
	SessionID string
	Notes     string
}

// UpdateAbilityScoreInput sets one score; it is clamped to 1..30
type UpdateAbilityScoreInput struct {
	SessionID string
	Ability   string
	Score     int
}

// RollAbilityScoresInput rolls all six scores
type RollAbilityScoresInput struct {
	SessionID string
	Method    string
}

// RollAbilityScoresOutput holds the applied rolls
type RollAbilityScoresOutput struct {
	SheetOutput
	Rolls []dicesession.Roll
}

// GetAbilityRollsInput identifies the session
type GetAbilityRollsInput struct {
	SessionID string
}

// GetAbilityRollsOutput holds the last rolls
type GetAbilityRollsOutput struct {
	RollSet *dicesession.RollSet
}

// SetSavingThrowInput marks a saving throw proficiency
type SetSavingThrowInput struct {
	SessionID  string
	Ability    string
	Proficient bool
}

// Items

// AddItemInput appends an item. Props is JSON object text; blank means {}.
type AddItemInput struct {
	SessionID string
	Name      string
	Quantity  int
	Props     string
}

// UpdateItemInput edits display fields of an item; nil fields are kept
type UpdateItemInput struct {
	SessionID string
	Index     int
	Name      *string
	Quantity  *int
}

// UpdateItemPropsInput replaces an item's props with parsed JSON text
type UpdateItemPropsInput struct {
	SessionID string
	Index     int
	Props     string
}

// RemoveItemInput removes an item by position
type RemoveItemInput struct {
	SessionID string
	Index     int
}

// Feats

// AddFeatInput appends a feat
type AddFeatInput struct {
	SessionID   string
	Name        string
	Description string
}

// UpdateFeatInput edits a feat; nil fields are kept
type UpdateFeatInput struct {
	SessionID   string
	Index       int
	Name        *string
	Description *string
}

// RemoveFeatInput removes a feat by position
type RemoveFeatInput struct {
	SessionID string
	Index     int
}

// Spells

// AddKnownSpellInput adds a spell to the known list of a level
type AddKnownSpellInput struct {
	SessionID string
	// Level is "C" for cantrips or "1".."9"
	Level string
	Name  string
}

// RemoveKnownSpellInput removes a known spell and its preparation
type RemoveKnownSpellInput struct {
	SessionID string
	Level     string
	Name      string
}

// SetSpellPreparedInput marks a known spell prepared or not
type SetSpellPreparedInput struct {
	SessionID string
	Level     string
	Name      string
	Prepared  bool
}

// SuggestSpellsInput asks for completions of a partial spell name
type SuggestSpellsInput struct {
	SessionID string
	Query     string
	// Level optionally narrows results, same keys as AddKnownSpellInput
	Level string
}

// SuggestSpellsOutput lists ranked suggestions
type SuggestSpellsOutput struct {
	Suggestions []*suggest.Suggestion
}

// Notices

// DrainNoticesInput identifies the session
type DrainNoticesInput struct {
	SessionID string
}

// DrainNoticesOutput holds the notices queued since the last drain
type DrainNoticesOutput struct {
	Notices []notify.Notice
}
