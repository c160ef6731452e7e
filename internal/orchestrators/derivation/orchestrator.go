// Package derivation sends character documents to the rules service and
// keeps each session's derived snapshot in step with its document.
package derivation

//go:generate mockgen -destination=mock/mock_service.go -package=derivationmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/derivation Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/notify"
	"github.com/KirkDiggler/rpg-sheet/internal/spellbook"
)

// Issue texts returned in place of rules service issues
const (
	IssueValidationError = "Validation error"
	IssueChanged         = "Character changed during validation; validate again"
)

// Service defines derivation and validation of a session's document
type Service interface {
	// Derive recomputes the snapshot. A reply for a document that changed
	// in the meantime is discarded with a stale error.
	Derive(ctx context.Context, input *DeriveInput) (*DeriveOutput, error)

	// Validate returns the rule issues of the current document. Failures
	// are reported as issues, not errors.
	Validate(ctx context.Context, input *ValidateInput) (*ValidateOutput, error)
}

// Config holds the dependencies for the derivation orchestrator
type Config struct {
	Rules    rules.Client
	Notifier notify.Notifier
	// Reporter defaults to one of its own on Rules
	Reporter *rules.Reporter
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}

	return vb.Build()
}

type orchestrator struct {
	rules    rules.Client
	notifier notify.Notifier
	reporter *rules.Reporter
}

// NewOrchestrator creates a new derivation orchestrator
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
		notifier: cfg.Notifier,
		reporter: reporter,
	}, nil
}

func (o *orchestrator) Derive(ctx context.Context, input *DeriveInput) (*DeriveOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	st := input.Store.State()
	if st.Document == nil {
		return nil, errors.FailedPrecondition("no character loaded")
	}

	snap, err := o.rules.Derive(ctx, st.Document)
	if err != nil {
		if !input.Store.ClearDerived(st.Version) {
			slog.DebugContext(ctx, "Ignoring failed derivation of an outdated document",
				"session_id", input.SessionID,
				"version", st.Version,
				"error", err,
			)
			return nil, errors.Stale("derive", st.Version, input.Store.Version())
		}

		reason := rules.FailureReason(err)
		o.notifier.Notice(ctx, input.SessionID, "Derive failed: "+reason)
		o.report(ctx, input.SessionID, "derive", reason, err)
		o.notifier.Refresh(ctx, input.SessionID, st.Version)

		return nil, errors.Wrap(err, "failed to derive character")
	}

	if !input.Store.ApplyDerived(st.Version, snap) {
		current := input.Store.Version()
		slog.InfoContext(ctx, "Discarding stale derivation",
			"session_id", input.SessionID,
			"sent_version", st.Version,
			"current_version", current,
		)
		return nil, errors.Stale("derive", st.Version, current)
	}

	var dropped []spellbook.Entry
	err = input.Store.MutateAt(st.Version, func(doc *entities.Document) error {
		dropped = spellbook.Enforce(spellbook.Get(doc), snap.PreparedMax())
		return nil
	})
	if err != nil {
		// a newer edit landed after the snapshot was stored; its own derivation trims
		slog.DebugContext(ctx, "Skipping capacity check", "session_id", input.SessionID, "error", err)
		dropped = nil
	}

	if len(dropped) > 0 {
		names := make([]string, len(dropped))
		for i, entry := range dropped {
			names[i] = entry.Name
		}
		o.notifier.Notice(ctx, input.SessionID,
			fmt.Sprintf("Prepared spells over capacity removed: %s", strings.Join(names, ", ")))
		slog.InfoContext(ctx, "Trimmed prepared spells to capacity",
			"session_id", input.SessionID,
			"dropped", names,
		)
	}

	o.notifier.Refresh(ctx, input.SessionID, st.Version)

	return &DeriveOutput{
		Snapshot: snap,
		Version:  st.Version,
		Dropped:  dropped,
	}, nil
}

func (o *orchestrator) Validate(ctx context.Context, input *ValidateInput) (*ValidateOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	st := input.Store.State()
	if st.Document == nil {
		return nil, errors.FailedPrecondition("no character loaded")
	}

	issues, err := o.rules.Validate(ctx, st.Document)
	if err != nil {
		reason := rules.FailureReason(err)
		o.notifier.Notice(ctx, input.SessionID, "Validate failed: "+reason)
		o.report(ctx, input.SessionID, "validate", reason, err)
		return &ValidateOutput{
			Issues:  []string{IssueValidationError},
			Version: st.Version,
			Failed:  true,
		}, nil
	}

	if current := input.Store.Version(); current != st.Version {
		slog.InfoContext(ctx, "Validation reply is for an outdated document",
			"session_id", input.SessionID,
			"sent_version", st.Version,
			"current_version", current,
		)
		return &ValidateOutput{
			Issues:  []string{IssueChanged},
			Version: current,
			Stale:   true,
		}, nil
	}

	return &ValidateOutput{
		Issues:  issues,
		Version: st.Version,
	}, nil
}

// report logs a failed rules call locally and, best effort, remotely
func (o *orchestrator) report(ctx context.Context, sessionID, operation, reason string, err error) {
	slog.ErrorContext(ctx, "Rules service call failed",
		"session_id", sessionID,
		"operation", operation,
		"error", err,
	)
	o.reporter.Report(ctx, &rules.LogEntry{
		Level:   rules.LevelError,
		Message: fmt.Sprintf("%s: %s", operation, reason),
		Stack:   err.Error(),
	})
}
