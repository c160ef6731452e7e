// Package v1 serves the sheet editing API over HTTP/JSON under /api/v1
package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// Prefix is where Routes is mounted
const Prefix = "/api/v1"

// maxBodyBytes bounds request bodies, character files included
const maxBodyBytes = 1 << 20

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	SheetService sheet.Service
	// SpellData serves SRD spell details; the route is absent when nil
	SpellData external.Client
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.SheetService == nil {
		return errors.InvalidArgument("sheet service is required")
	}
	return nil
}

// Handler implements the HTTP API
type Handler struct {
	sheetService sheet.Service
	spellData    external.Client
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sheetService: cfg.SheetService,
		spellData:    cfg.SpellData,
	}, nil
}

// Register mounts the API on r under Prefix
func (h *Handler) Register(r chi.Router) {
	r.Mount(Prefix, h.Routes())
}

// Routes returns the API routes relative to Prefix
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/modules", h.ListModules)
	if h.spellData != nil {
		r.Get("/spells/{spellID}", h.GetSpell)
	}

	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", h.ListSessions)
		r.Post("/", h.NewCharacter)
		r.Post("/load", h.LoadCharacter)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", h.GetCharacter)
			r.Delete("/", h.CloseSession)
			r.Post("/new_character", h.NewCharacter)
			r.Post("/load", h.LoadCharacter)
			r.Get("/save", h.SaveCharacter)
			r.Get("/notices", h.DrainNotices)

			r.Post("/derive", h.Derive)
			r.Post("/validate", h.Validate)

			r.Put("/name", h.UpdateName)
			r.Put("/level", h.UpdateLevel)
			r.Put("/notes", h.UpdateNotes)
			r.Post("/abilities/roll", h.RollAbilityScores)
			r.Get("/abilities/rolls", h.GetAbilityRolls)
			r.Put("/abilities/{ability}", h.UpdateAbilityScore)
			r.Put("/saving-throws/{ability}", h.SetSavingThrow)

			r.Post("/items", h.AddItem)
			r.Patch("/items/{index}", h.UpdateItem)
			r.Put("/items/{index}/props", h.UpdateItemProps)
			r.Delete("/items/{index}", h.RemoveItem)

			r.Post("/feats", h.AddFeat)
			r.Patch("/feats/{index}", h.UpdateFeat)
			r.Delete("/feats/{index}", h.RemoveFeat)

			r.Get("/spells/suggest", h.SuggestSpells)
			r.Post("/spells/{level}", h.AddKnownSpell)
			r.Delete("/spells/{level}/{name}", h.RemoveKnownSpell)
			r.Put("/spells/{level}/{name}/prepared", h.SetSpellPrepared)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errors.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errors.Newf(errors.CodeUnimplemented, "%s not supported on %s", r.Method, r.URL.Path))
	})

	return r
}
