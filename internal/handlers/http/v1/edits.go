package v1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/suggest"
	"github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// Request bodies of the edit routes

// NameRequest sets the character name
type NameRequest struct {
	Name string `json:"name"`
}

// LevelRequest sets the character level
type LevelRequest struct {
	Level int `json:"level"`
}

// NotesRequest replaces the notes
type NotesRequest struct {
	Notes string `json:"notes"`
}

// ScoreRequest sets an ability score
type ScoreRequest struct {
	Score int `json:"score"`
}

// RollRequest picks the rolling method
type RollRequest struct {
	Method string `json:"method"`
}

// SavingThrowRequest sets a saving throw proficiency
type SavingThrowRequest struct {
	Proficient bool `json:"proficient"`
}

// ItemRequest adds an item. Props may be JSON object text or an inline object.
type ItemRequest struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Props    json.RawMessage `json:"props"`
}

// ItemPatchRequest edits display fields of an item
type ItemPatchRequest struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
}

// PropsRequest replaces an item's props
type PropsRequest struct {
	Props json.RawMessage `json:"props"`
}

// FeatRequest adds a feat
type FeatRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FeatPatchRequest edits a feat
type FeatPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// SpellRequest adds a known spell
type SpellRequest struct {
	Name string `json:"name"`
}

// PreparedRequest marks a spell prepared or not
type PreparedRequest struct {
	Prepared bool `json:"prepared"`
}

// editFunc runs one sheet edit for the session named in the URL
type editFunc func(r *http.Request, sessionID string) (*sheet.SheetOutput, error)

// edit runs fn and renders the resulting sheet
func (h *Handler) edit(fn editFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := fn(r, chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, toSheetResponse(out))
	}
}

// UpdateName renames the character
func (h *Handler) UpdateName(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		return h.sheetService.UpdateName(r.Context(), &sheet.UpdateNameInput{SessionID: id, Name: req.Name})
	})(w, r)
}

// UpdateLevel sets the level
func (h *Handler) UpdateLevel(w http.ResponseWriter, r *http.Request) {
	var req LevelRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		return h.sheetService.UpdateLevel(r.Context(), &sheet.UpdateLevelInput{SessionID: id, Level: req.Level})
	})(w, r)
}

// UpdateNotes replaces the notes
func (h *Handler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	var req NotesRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		return h.sheetService.UpdateNotes(r.Context(), &sheet.UpdateNotesInput{SessionID: id, Notes: req.Notes})
	})(w, r)
}

// UpdateAbilityScore sets one ability score
func (h *Handler) UpdateAbilityScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		return h.sheetService.UpdateAbilityScore(r.Context(), &sheet.UpdateAbilityScoreInput{
			SessionID: id,
			Ability:   chi.URLParam(r, "ability"),
			Score:     req.Score,
		})
	})(w, r)
}

// RollAbilityScores rolls and applies all six scores
func (h *Handler) RollAbilityScores(w http.ResponseWriter, r *http.Request) {
	var req RollRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.sheetService.RollAbilityScores(r.Context(), &sheet.RollAbilityScoresInput{
		SessionID: chi.URLParam(r, "sessionID"),
		Method:    req.Method,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, &RollResponse{
		SheetResponse: toSheetResponse(&out.SheetOutput),
		Rolls:         out.Rolls,
	})
}

// GetAbilityRolls returns the last rolls of the session
func (h *Handler) GetAbilityRolls(w http.ResponseWriter, r *http.Request) {
	out, err := h.sheetService.GetAbilityRolls(r.Context(), &sheet.GetAbilityRollsInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, out.RollSet)
}

// SetSavingThrow sets a saving throw proficiency
func (h *Handler) SetSavingThrow(w http.ResponseWriter, r *http.Request) {
	var req SavingThrowRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		return h.sheetService.SetSavingThrow(r.Context(), &sheet.SetSavingThrowInput{
			SessionID:  id,
			Ability:    chi.URLParam(r, "ability"),
			Proficient: req.Proficient,
		})
	})(w, r)
}

// AddItem appends an inventory item
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		return h.sheetService.AddItem(r.Context(), &sheet.AddItemInput{
			SessionID: id,
			Name:      req.Name,
			Quantity:  req.Quantity,
			Props:     propsText(req.Props),
		})
	})(w, r)
}

// UpdateItem edits the name or quantity of an item
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req ItemPatchRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		index, err := indexParam(r)
		if err != nil {
			return nil, err
		}
		return h.sheetService.UpdateItem(r.Context(), &sheet.UpdateItemInput{
			SessionID: id,
			Index:     index,
			Name:      req.Name,
			Quantity:  req.Quantity,
		})
	})(w, r)
}

// UpdateItemProps replaces the props of an item
func (h *Handler) UpdateItemProps(w http.ResponseWriter, r *http.Request) {
	var req PropsRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		index, err := indexParam(r)
		if err != nil {
			return nil, err
		}
		return h.sheetService.UpdateItemProps(r.Context(), &sheet.UpdateItemPropsInput{
			SessionID: id,
			Index:     index,
			Props:     propsText(req.Props),
		})
	})(w, r)
}

// RemoveItem deletes an item
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		index, err := indexParam(r)
		if err != nil {
			return nil, err
		}
		return h.sheetService.RemoveItem(r.Context(), &sheet.RemoveItemInput{SessionID: id, Index: index})
	})(w, r)
}

// AddFeat appends a feat
func (h *Handler) AddFeat(w http.ResponseWriter, r *http.Request) {
	var req FeatRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		return h.sheetService.AddFeat(r.Context(), &sheet.AddFeatInput{
			SessionID:   id,
			Name:        req.Name,
			Description: req.Description,
		})
	})(w, r)
}

// UpdateFeat edits a feat
func (h *Handler) UpdateFeat(w http.ResponseWriter, r *http.Request) {
	var req FeatPatchRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		index, err := indexParam(r)
		if err != nil {
			return nil, err
		}
		return h.sheetService.UpdateFeat(r.Context(), &sheet.UpdateFeatInput{
			SessionID:   id,
			Index:       index,
			Name:        req.Name,
			Description: req.Description,
		})
	})(w, r)
}

// RemoveFeat deletes a feat
func (h *Handler) RemoveFeat(w http.ResponseWriter, r *http.Request) {
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		index, err := indexParam(r)
		if err != nil {
			return nil, err
		}
		return h.sheetService.RemoveFeat(r.Context(), &sheet.RemoveFeatInput{SessionID: id, Index: index})
	})(w, r)
}

// AddKnownSpell adds a spell at the level in the URL
func (h *Handler) AddKnownSpell(w http.ResponseWriter, r *http.Request) {
	var req SpellRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		return h.sheetService.AddKnownSpell(r.Context(), &sheet.AddKnownSpellInput{
			SessionID: id,
			Level:     chi.URLParam(r, "level"),
			Name:      req.Name,
		})
	})(w, r)
}

// RemoveKnownSpell forgets a spell
func (h *Handler) RemoveKnownSpell(w http.ResponseWriter, r *http.Request) {
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		return h.sheetService.RemoveKnownSpell(r.Context(), &sheet.RemoveKnownSpellInput{
			SessionID: id,
			Level:     chi.URLParam(r, "level"),
			Name:      pathParam(r, "name"),
		})
	})(w, r)
}

// SetSpellPrepared marks a known spell prepared or not
func (h *Handler) SetSpellPrepared(w http.ResponseWriter, r *http.Request) {
	var req PreparedRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.edit(func(r *http.Request, id string) (*sheet.SheetOutput, error) {
		return h.sheetService.SetSpellPrepared(r.Context(), &sheet.SetSpellPreparedInput{
			SessionID: id,
			Level:     chi.URLParam(r, "level"),
			Name:      pathParam(r, "name"),
			Prepared:  req.Prepared,
		})
	})(w, r)
}

// SuggestSpells completes a partial spell name
func (h *Handler) SuggestSpells(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	out, err := h.sheetService.SuggestSpells(r.Context(), &sheet.SuggestSpellsInput{
		SessionID: chi.URLParam(r, "sessionID"),
		Query:     query.Get("q"),
		Level:     query.Get("level"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := &SuggestionsResponse{Suggestions: out.Suggestions}
	if resp.Suggestions == nil {
		resp.Suggestions = []*suggest.Suggestion{}
	}
	writeJSON(w, r, http.StatusOK, resp)
}
