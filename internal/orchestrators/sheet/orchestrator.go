// Package sheet implements the sheet editing service. Each operation
// validates its input, applies one edit to the session's store, persists
// the session and, for rule-relevant edits, re-derives the snapshot.
package sheet

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/notify"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/derivation"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/suggest"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/session"
	"github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/spellbook"
	"github.com/KirkDiggler/rpg-sheet/internal/store"
)

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	SessionRepo session.Repository
	Rules       rules.Client
	Derivation  derivation.Service
	Suggest     suggest.Service
	Dice        dice.Service
	Notifier    notify.Notifier
	Inbox       notify.Inbox
	// Reporter defaults to one of its own on Rules
	Reporter *rules.Reporter
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Derivation == nil {
		vb.RequiredField("Derivation")
	}
	if c.Suggest == nil {
		vb.RequiredField("Suggest")
	}
	if c.Dice == nil {
		vb.RequiredField("Dice")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	if c.Inbox == nil {
		vb.RequiredField("Inbox")
	}

	return vb.Build()
}

// Orchestrator implements the sheet.Service interface
type Orchestrator struct {
	sessions   session.Repository
	rules      rules.Client
	derivation derivation.Service
	suggest    suggest.Service
	dice       dice.Service
	notifier   notify.Notifier
	inbox      notify.Inbox
	reporter   *rules.Reporter
}

// New creates a new sheet orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = rules.NewReporter(cfg.Rules)
	}

	return &Orchestrator{
		sessions:   cfg.SessionRepo,
		rules:      cfg.Rules,
		derivation: cfg.Derivation,
		suggest:    cfg.Suggest,
		dice:       cfg.Dice,
		notifier:   cfg.Notifier,
		inbox:      cfg.Inbox,
		reporter:   reporter,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ sheet.Service = (*Orchestrator)(nil)

// session looks up an open session
func (o *Orchestrator) session(ctx context.Context, sessionID string) (*session.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	got, err := o.sessions.Get(ctx, session.GetInput{ID: sessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get session %s", sessionID)
	}
	return got.Session, nil
}

// openOrCreate reuses the given session or opens a new one
func (o *Orchestrator) openOrCreate(ctx context.Context, sessionID string) (*session.Session, error) {
	if sessionID != "" {
		return o.session(ctx, sessionID)
	}

	created, err := o.sessions.Create(ctx, session.CreateInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session")
	}
	return created.Session, nil
}

// persist writes the session through to storage. The edit is already live
// in memory, so a storage failure is logged rather than returned.
func (o *Orchestrator) persist(ctx context.Context, sess *session.Session) {
	if _, err := o.sessions.Save(ctx, session.SaveInput{Session: sess}); err != nil {
		slog.WarnContext(ctx, "Failed to persist session",
			"session_id", sess.ID,
			"error", err,
		)
	}
}

// mutate applies fn to the session's document and runs the follow-ups:
// rule-relevant edits are re-derived, other edits only refresh views
func (o *Orchestrator) mutate(ctx context.Context, sessionID string, ruleRelevant bool, fn store.MutateFunc) (*sheet.SheetOutput, error) {
	return o.commit(ctx, sessionID, ruleRelevant, func(st *store.Store) (uint64, error) {
		return st.Mutate(ruleRelevant, fn)
	})
}

// commit applies an edit to the session's store, persists it and then
// derives or refreshes
func (o *Orchestrator) commit(ctx context.Context, sessionID string, ruleRelevant bool, edit func(*store.Store) (uint64, error)) (*sheet.SheetOutput, error) {
	ctx, collected := notify.WithCollector(ctx)

	sess, err := o.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	version, err := edit(sess.Store)
	if err != nil {
		return nil, err
	}
	o.persist(ctx, sess)

	var dropped []spellbook.Entry
	if ruleRelevant {
		dropped = o.rederive(ctx, sess)
	} else {
		o.notifier.Refresh(ctx, sess.ID, version)
	}

	return output(sess, collected, dropped), nil
}

// rederive runs derivation after an edit. Failures have already been shown
// to the user by the derivation orchestrator; the edit itself stands.
func (o *Orchestrator) rederive(ctx context.Context, sess *session.Session) []spellbook.Entry {
	out, err := o.derivation.Derive(ctx, &derivation.DeriveInput{SessionID: sess.ID, Store: sess.Store})
	if err != nil {
		slog.DebugContext(ctx, "Derivation after edit did not apply",
			"session_id", sess.ID,
			"error", err,
		)
		return nil
	}
	o.persist(ctx, sess)
	return out.Dropped
}

// notice publishes a user-visible message for the session
func (o *Orchestrator) notice(ctx context.Context, sessionID, message string) {
	if sessionID == "" {
		return
	}
	o.notifier.Notice(ctx, sessionID, message)
}

// report logs a failure locally and, best effort, to the rules service
func (o *Orchestrator) report(ctx context.Context, sessionID, where string, err error) {
	slog.ErrorContext(ctx, "Sheet operation failed",
		"session_id", sessionID,
		"where", where,
		"error", err,
	)
	o.reporter.Report(ctx, &rules.LogEntry{
		Level:   rules.LevelError,
		Message: where,
		Stack:   err.Error(),
	})
}

func output(sess *session.Session, collected *notify.Collector, dropped []spellbook.Entry) *sheet.SheetOutput {
	return &sheet.SheetOutput{
		Sheet:   view(sess),
		Notices: collected.Messages(),
		Dropped: dropped,
	}
}

func view(sess *session.Session) *sheet.Sheet {
	st := sess.Store.State()
	return &sheet.Sheet{
		SessionID: sess.ID,
		Document:  st.Document,
		Derived:   st.Derived,
		Version:   st.Version,
	}
}

// itemAt returns the item at index or an out of range error
func itemAt(doc *entities.Document, index int) (*entities.Item, error) {
	if index < 0 || index >= len(doc.Items) {
		return nil, errors.OutOfRangef("no item at index %d", index)
	}
	return &doc.Items[index], nil
}

// featAt returns the feat at index or an out of range error
func featAt(doc *entities.Document, index int) (*entities.Feat, error) {
	if index < 0 || index >= len(doc.Feats) {
		return nil, errors.OutOfRangef("no feat at index %d", index)
	}
	return &doc.Feats[index], nil
}
