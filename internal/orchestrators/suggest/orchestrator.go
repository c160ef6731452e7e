// Package suggest provides spell name autocomplete for the spellbook editor.
package suggest

//go:generate mockgen -destination=mock/mock_service.go -package=suggestmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/suggest Service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// MaxSuggestions caps the number of names returned
const MaxSuggestions = 20

// Suggestion sources
const (
	SourceRules = "rules"
	SourceSRD   = "srd"
)

// Service defines spell autocomplete
type Service interface {
	// Suggest returns up to MaxSuggestions spell names for a partial name.
	// Source failures are logged and never returned; a canceled request
	// stops both sources and returns the cancellation.
	Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error)
}

// Config holds the dependencies for the suggestion orchestrator
type Config struct {
	Rules rules.Client
	// SRD is optional; without it only the rules service is asked
	SRD external.Client
	// Reporter defaults to one of its own on Rules
	Reporter *rules.Reporter
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Rules == nil {
		vb.RequiredField("Rules")
	}

	return vb.Build()
}

type orchestrator struct {
	rules    rules.Client
	srd      external.Client
	reporter *rules.Reporter
}

// NewOrchestrator creates a new suggestion orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = rules.NewReporter(cfg.Rules)
	}

	return &orchestrator{
		rules:    cfg.Rules,
		srd:      cfg.SRD,
		reporter: reporter,
	}, nil
}

func (o *orchestrator) Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &SuggestOutput{Suggestions: []*Suggestion{}}, nil
	}

	var (
		mu        sync.Mutex
		collected = map[string][]*Suggestion{}
	)
	keep := func(source string, found []*Suggestion) {
		mu.Lock()
		defer mu.Unlock()
		collected[source] = found
	}

	// a failing source is reported and skipped; only cancellation of the
	// request stops the other source
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		spells, err := o.rules.SearchSpells(gctx, &rules.SearchSpellsInput{
			Module: input.Module,
			Name:   query,
			Class:  input.Class,
		})
		if err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			o.report(ctx, input.SessionID, SourceRules, err)
			return nil
		}

		found := make([]*Suggestion, 0, len(spells))
		for _, spell := range spells {
			if spell == nil || strings.TrimSpace(spell.Name) == "" {
				continue
			}
			found = append(found, &Suggestion{Name: spell.Name, Level: spell.Level, Source: SourceRules})
		}
		keep(SourceRules, found)
		return nil
	})

	if o.srd != nil {
		g.Go(func() error {
			spells, err := o.srd.ListSpells(gctx, &external.ListSpellsInput{
				Level: input.Level,
				Class: input.Class,
			})
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				o.report(ctx, input.SessionID, SourceSRD, err)
				return nil
			}

			found := make([]*Suggestion, 0)
			for _, spell := range spells {
				if spell == nil || !Matches(query, spell.Name) {
					continue
				}
				found = append(found, &Suggestion{Name: spell.Name, Level: spell.Level, Source: SourceSRD})
			}
			keep(SourceSRD, found)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.DebugContext(ctx, "Spell suggestions abandoned",
			"session_id", input.SessionID,
			"error", err,
		)
		return nil, errors.Transport(err, "spell suggestions")
	}

	merged := merge(query, collected[SourceRules], collected[SourceSRD])
	slog.DebugContext(ctx, "Spell suggestions",
		"session_id", input.SessionID,
		"query", query,
		"rules", len(collected[SourceRules]),
		"srd", len(collected[SourceSRD]),
		"returned", len(merged),
	)

	return &SuggestOutput{Suggestions: merged}, nil
}

func (o *orchestrator) report(ctx context.Context, sessionID, source string, err error) {
	slog.WarnContext(ctx, "Spell suggestion source failed",
		"session_id", sessionID,
		"source", source,
		"error", err,
	)
	o.reporter.Report(ctx, &rules.LogEntry{
		Level:   rules.LevelError,
		Message: "spell suggestions: " + source,
		Stack:   err.Error(),
	})
}

// Matches reports whether name is a plausible completion of query: a
// case-insensitive substring, or a prefix within a small edit distance.
func Matches(query, name string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	n := strings.ToLower(name)
	if q == "" || n == "" {
		return false
	}
	if strings.Contains(n, q) {
		return true
	}

	return prefixDistance(q, n) <= tolerance(q)
}

// merge dedupes by name, earlier lists winning, then ranks and caps
func merge(query string, lists ...[]*Suggestion) []*Suggestion {
	q := strings.ToLower(query)
	seen := map[string]bool{}
	out := make([]*Suggestion, 0)
	for _, list := range lists {
		for _, s := range list {
			key := strings.ToLower(strings.TrimSpace(s.Name))
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(q, out[i].Name), rank(q, out[j].Name)
		if ri != rj {
			return ri < rj
		}
		di, dj := levenshtein.ComputeDistance(q, strings.ToLower(out[i].Name)),
			levenshtein.ComputeDistance(q, strings.ToLower(out[j].Name))
		if di != dj {
			return di < dj
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

// rank orders exact, prefix, substring and fuzzy matches
func rank(q, name string) int {
	n := strings.ToLower(name)
	switch {
	case n == q:
		return 0
	case strings.HasPrefix(n, q):
		return 1
	case strings.Contains(n, q):
		return 2
	default:
		return 3
	}
}

func prefixDistance(q, n string) int {
	r := []rune(n)
	if len(r) > len([]rune(q)) {
		r = r[:len([]rune(q))]
	}
	return levenshtein.ComputeDistance(q, string(r))
}

func tolerance(q string) int {
	l := len([]rune(q))
	if l < 3 {
		return 0
	}
	return 1 + l/6
}
