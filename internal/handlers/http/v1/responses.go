package v1

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/suggest"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/spellbook"
)

// SheetResponse is the state of a session after a request
type SheetResponse struct {
	SessionID string             `json:"session_id"`
	Document  *entities.Document `json:"document"`
	Derived   *entities.Snapshot `json:"derived"`
	Version   uint64             `json:"version"`
	Notices   []string           `json:"notices,omitempty"`
	Dropped   []spellbook.Entry  `json:"dropped,omitempty"`
}

func toSheetResponse(out *sheet.SheetOutput) *SheetResponse {
	resp := &SheetResponse{
		Notices: out.Notices,
		Dropped: out.Dropped,
	}
	if s := out.Sheet; s != nil {
		resp.SessionID = s.SessionID
		resp.Document = s.Document
		resp.Derived = s.Derived
		resp.Version = s.Version
	}
	return resp
}

// ModulesResponse lists the module catalog
type ModulesResponse struct {
	Modules []*rules.Module `json:"modules"`
	Default string          `json:"default"`
}

// SessionsResponse lists open sessions
type SessionsResponse struct {
	SessionIDs []string `json:"session_ids"`
}

// SaveResponse carries the file to write and the validation warnings
type SaveResponse struct {
	Filename string          `json:"filename"`
	Document json.RawMessage `json:"document"`
	Issues   []string        `json:"issues"`
	Version  uint64          `json:"version"`
	Notices  []string        `json:"notices,omitempty"`
}

// ValidateResponse lists rule issues
type ValidateResponse struct {
	Issues  []string `json:"issues"`
	Version uint64   `json:"version"`
	Notices []string `json:"notices,omitempty"`
}

// RollResponse is the sheet after rolling along with the dice
type RollResponse struct {
	*SheetResponse
	Rolls []dicesession.Roll `json:"rolls"`
}

// NoticeResponse is one queued toast
type NoticeResponse struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// NoticesResponse lists drained toasts
type NoticesResponse struct {
	Notices []NoticeResponse `json:"notices"`
}

// SuggestionsResponse lists spell name completions
type SuggestionsResponse struct {
	Suggestions []*suggest.Suggestion `json:"suggestions"`
}
