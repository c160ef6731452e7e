package derivation

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/spellbook"
	"github.com/KirkDiggler/rpg-sheet/internal/store"
)

// DeriveInput identifies the session to derive
type DeriveInput struct {
	SessionID string
	Store     *store.Store
}

func (i *DeriveInput) validate() error {
	if i == nil || i.Store == nil {
		return errors.InvalidArgument("store is required")
	}
	return nil
}

// DeriveOutput holds the stored snapshot
type DeriveOutput struct {
	Snapshot *entities.Snapshot
	Version  uint64
	// Dropped lists prepared spells removed because capacity shrank
	Dropped []spellbook.Entry
}

// ValidateInput identifies the session to validate
type ValidateInput struct {
	SessionID string
	Store     *store.Store
}

func (i *ValidateInput) validate() error {
	if i == nil || i.Store == nil {
		return errors.InvalidArgument("store is required")
	}
	return nil
}

// ValidateOutput holds the issue list for the document at Version
type ValidateOutput struct {
	Issues  []string
	Version uint64
	// Failed is set when the rules service could not be reached
	Failed bool
	// Stale is set when the document changed while validating
	Stale bool
}
