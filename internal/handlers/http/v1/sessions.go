package v1

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// NewCharacterRequest is the body of a new character request
type NewCharacterRequest struct {
	ModuleID string `json:"module_id"`
	Name     string `json:"name"`
}

// ListModules returns the module catalog
func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	out, err := h.sheetService.ListModules(r.Context(), &sheet.ListModulesInput{
		SessionID: r.URL.Query().Get("session_id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, &ModulesResponse{Modules: out.Modules, Default: out.Default})
}

// ListSessions returns the open session IDs
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	out, err := h.sheetService.ListSessions(r.Context(), &sheet.ListSessionsInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	ids := out.SessionIDs
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, r, http.StatusOK, &SessionsResponse{SessionIDs: ids})
}

// NewCharacter creates a character, in a new session unless one is named
func (h *Handler) NewCharacter(w http.ResponseWriter, r *http.Request) {
	var req NewCharacterRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	out, err := h.sheetService.NewCharacter(r.Context(), &sheet.NewCharacterInput{
		SessionID: sessionID,
		ModuleID:  req.ModuleID,
		Name:      req.Name,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if sessionID == "" {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, toSheetResponse(out))
}

// LoadCharacter opens a character file sent as the request body
func (h *Handler) LoadCharacter(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	out, err := h.sheetService.LoadCharacter(r.Context(), &sheet.LoadCharacterInput{
		SessionID: sessionID,
		Data:      data,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if sessionID == "" {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, toSheetResponse(out))
}

// GetCharacter returns the session's state
func (h *Handler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	out, err := h.sheetService.GetCharacter(r.Context(), &sheet.GetCharacterInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toSheetResponse(out))
}

// SaveCharacter validates and returns the character file. With
// ?download=true the file itself is sent as an attachment.
func (h *Handler) SaveCharacter(w http.ResponseWriter, r *http.Request) {
	out, err := h.sheetService.SaveCharacter(r.Context(), &sheet.SaveCharacterInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if download, _ := strconv.ParseBool(r.URL.Query().Get("download")); download {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
		w.Header().Set("X-Validation-Issues", strconv.Itoa(len(out.Issues)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out.Data)
		return
	}

	resp := &SaveResponse{
		Filename: out.Filename,
		Document: out.Data,
		Issues:   out.Issues,
		Notices:  out.Notices,
	}
	if resp.Issues == nil {
		resp.Issues = []string{}
	}
	if out.Sheet != nil {
		resp.Version = out.Sheet.Version
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// CloseSession discards a session
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	_, err := h.sheetService.CloseSession(r.Context(), &sheet.CloseSessionInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Derive recomputes the derived statistics
func (h *Handler) Derive(w http.ResponseWriter, r *http.Request) {
	out, err := h.sheetService.Derive(r.Context(), &sheet.DeriveInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toSheetResponse(out))
}

// Validate lists rule issues of the current document
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	out, err := h.sheetService.Validate(r.Context(), &sheet.ValidateInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	issues := out.Issues
	if issues == nil {
		issues = []string{}
	}
	writeJSON(w, r, http.StatusOK, &ValidateResponse{Issues: issues, Version: out.Version, Notices: out.Notices})
}

// DrainNotices returns the toasts queued since the last call
func (h *Handler) DrainNotices(w http.ResponseWriter, r *http.Request) {
	out, err := h.sheetService.DrainNotices(r.Context(), &sheet.DrainNoticesInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := &NoticesResponse{Notices: make([]NoticeResponse, 0, len(out.Notices))}
	for _, n := range out.Notices {
		resp.Notices = append(resp.Notices, NoticeResponse{Message: n.Message, At: n.At})
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// GetSpell returns SRD details of one spell
func (h *Handler) GetSpell(w http.ResponseWriter, r *http.Request) {
	spell, err := h.spellData.GetSpellData(r.Context(), pathParam(r, "spellID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, spell)
}
