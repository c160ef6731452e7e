// Package external is the location for the dnd5e-api client. It serves the
// public SRD spell list as a second source of spell suggestions.
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-sheet/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// D&D 5e class names accepted by the SRD spell filter
var dnd5eClassNames = map[string]string{
	"bard":     "bard",
	"cleric":   "cleric",
	"druid":    "druid",
	"paladin":  "paladin",
	"ranger":   "ranger",
	"sorcerer": "sorcerer",
	"warlock":  "warlock",
	"wizard":   "wizard",
}

// Client defines the SRD lookups the editor makes
type Client interface {
	// ListSpells returns spell references, optionally filtered by level and class.
	// Only ID and Name are filled in; Level is set when the filter fixed it.
	ListSpells(ctx context.Context, input *ListSpellsInput) ([]*SpellData, error)

	// GetSpellData fetches the details of one spell
	GetSpellData(ctx context.Context, spellID string) (*SpellData, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts must not be negative")
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

// NewWithAPI wraps an existing dnd5e client
func NewWithAPI(api dnd5e.Interface) Client {
	return &client{dnd5eClient: api}
}

func (c *client) ListSpells(ctx context.Context, input *ListSpellsInput) ([]*SpellData, error) {
	var dnd5eInput *dnd5e.ListSpellsInput
	if input != nil {
		dnd5eInput = &dnd5e.ListSpellsInput{}

		if input.Level != nil {
			level := *input.Level
			dnd5eInput.Level = &level
		}

		if className, exists := dnd5eClassNames[strings.ToLower(input.Class)]; exists {
			dnd5eInput.Class = className
		}
	}

	slog.DebugContext(ctx, "Calling D&D 5e API to list spells")
	refs, err := c.dnd5eClient.ListSpells(dnd5eInput)
	if err != nil {
		return nil, fmt.Errorf("failed to list spells from D&D 5e API: %w", err)
	}

	spells := make([]*SpellData, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		spell := &SpellData{ID: ref.Key, Name: ref.Name}
		if dnd5eInput != nil && dnd5eInput.Level != nil {
			level := *dnd5eInput.Level
			spell.Level = &level
		}
		spells = append(spells, spell)
	}
	slog.DebugContext(ctx, "Got spell references", "count", len(spells))

	return spells, nil
}

func (c *client) GetSpellData(_ context.Context, spellID string) (*SpellData, error) {
	if spellID == "" {
		return nil, errors.InvalidArgument("spell id is required")
	}

	spell, err := c.dnd5eClient.GetSpell(spellID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to get spell %s", spellID))
	}

	return convertSpellToSpellData(spell)
}

// convertSpellToSpellData converts a dnd5e-api spell entity to our SpellData
func convertSpellToSpellData(spell *entities.Spell) (*SpellData, error) {
	if spell == nil {
		return nil, fmt.Errorf("spell is nil")
	}

	var properties []string
	if spell.Ritual {
		properties = append(properties, "Ritual")
	}
	if spell.Concentration {
		properties = append(properties, "Concentration")
	}

	var classes []string
	for _, class := range spell.SpellClasses {
		if class != nil {
			classes = append(classes, strings.ToLower(class.Name))
		}
	}

	school := ""
	if spell.SpellSchool != nil {
		school = spell.SpellSchool.Name
	}

	level := spell.SpellLevel
	return &SpellData{
		ID:          spell.Key,
		Name:        spell.Name,
		Level:       &level,
		School:      school,
		CastingTime: spell.CastingTime,
		Range:       spell.Range,
		Duration:    spell.Duration,
		Properties:  properties,
		Classes:     classes,
		Description: buildSpellDescription(spell),
	}, nil
}
