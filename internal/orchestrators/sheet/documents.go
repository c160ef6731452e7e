package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/notify"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/derivation"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/session"
	"github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

// ListModules returns the module catalog and the default choice
func (o *Orchestrator) ListModules(ctx context.Context, input *sheet.ListModulesInput) (*sheet.ListModulesOutput, error) {
	if input == nil {
		input = &sheet.ListModulesInput{}
	}

	modules, err := o.rules.ListModules(ctx)
	if err != nil {
		o.notice(ctx, input.SessionID, sheet.NoticeModulesFailed)
		o.report(ctx, input.SessionID, "list modules: "+rules.FailureReason(err), err)
		return nil, errors.Wrap(err, "failed to list modules")
	}

	return &sheet.ListModulesOutput{
		Modules: modules,
		Default: defaultModule(modules),
	}, nil
}

// defaultModule prefers DefaultModuleID, else the first module
func defaultModule(modules []*rules.Module) string {
	for _, m := range modules {
		if m != nil && m.ID == sheet.DefaultModuleID {
			return m.ID
		}
	}
	for _, m := range modules {
		if m != nil {
			return m.ID
		}
	}
	return ""
}

// NewCharacter asks the rules service for a starting document, installs it
// in the session and derives it
func (o *Orchestrator) NewCharacter(ctx context.Context, input *sheet.NewCharacterInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, collected := notify.WithCollector(ctx)

	moduleID := input.ModuleID
	if moduleID == "" {
		if modules, err := o.rules.ListModules(ctx); err == nil {
			moduleID = defaultModule(modules)
		} else {
			slog.WarnContext(ctx, "Module catalog unavailable, letting the rules service choose",
				"error", err,
			)
		}
	}
	name := input.Name
	if name == "" {
		name = sheet.DefaultCharacterName
	}

	doc, err := o.rules.NewCharacter(ctx, &rules.NewCharacterInput{ModuleID: moduleID, Name: name})
	if err != nil {
		reason := rules.FailureReason(err)
		o.notice(ctx, input.SessionID, "New character failed: "+reason)
		o.report(ctx, input.SessionID, "new character: "+reason, err)
		return nil, errors.Wrap(err, "failed to create character")
	}
	if doc.Module == "" {
		doc.Module = moduleID
	}

	sess, err := o.openOrCreate(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	version := sess.Store.Create(doc)
	o.persist(ctx, sess)

	slog.InfoContext(ctx, "Created character",
		"session_id", sess.ID,
		"module", doc.Module,
		"version", version,
	)

	dropped := o.rederive(ctx, sess)
	return output(sess, collected, dropped), nil
}

// LoadCharacter replaces the session's document with the contents of a
// character file. Malformed data leaves the previous document in place.
func (o *Orchestrator) LoadCharacter(ctx context.Context, input *sheet.LoadCharacterInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, collected := notify.WithCollector(ctx)

	doc, err := decodeDocument(input.Data)
	if err != nil {
		o.notice(ctx, input.SessionID, "Open failed: "+err.Error())
		o.report(ctx, input.SessionID, "open character", err)
		return nil, errors.Parse(err, "character file")
	}

	sess, err := o.openOrCreate(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	version := sess.Store.Load(doc)
	o.persist(ctx, sess)

	slog.InfoContext(ctx, "Loaded character",
		"session_id", sess.ID,
		"name", doc.Name,
		"version", version,
	)

	dropped := o.rederive(ctx, sess)
	return output(sess, collected, dropped), nil
}

// decodeDocument accepts any JSON object; members that don't fit the
// document shape are carried through unchanged
func decodeDocument(data []byte) (*entities.Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("character file must be a JSON object")
	}

	var doc entities.Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetCharacter returns the session's current state
func (o *Orchestrator) GetCharacter(ctx context.Context, input *sheet.GetCharacterInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.session(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	return &sheet.SheetOutput{Sheet: view(sess)}, nil
}

// SaveCharacter validates the document and returns it as a file
func (o *Orchestrator) SaveCharacter(ctx context.Context, input *sheet.SaveCharacterInput) (*sheet.SaveCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, collected := notify.WithCollector(ctx)

	sess, err := o.session(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	doc := sess.Store.Get()
	if doc == nil {
		o.notice(ctx, sess.ID, sheet.NoticeNothingToSave)
		return nil, errors.FailedPrecondition("no character loaded")
	}

	validated, err := o.derivation.Validate(ctx, &derivation.ValidateInput{SessionID: sess.ID, Store: sess.Store})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate character")
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		o.notice(ctx, sess.ID, "Save failed: "+err.Error())
		o.report(ctx, sess.ID, "save character", err)
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode character")
	}

	if n := len(validated.Issues); n > 0 {
		o.notice(ctx, sess.ID, fmt.Sprintf("Saved with warnings (%d)", n))
	} else {
		o.notice(ctx, sess.ID, sheet.NoticeSaved)
	}

	return &sheet.SaveCharacterOutput{
		Filename: Slug(doc.Name) + ".json",
		Data:     data,
		Issues:   validated.Issues,
		Sheet:    view(sess),
		Notices:  collected.Messages(),
	}, nil
}

// ListSessions returns the open session IDs
func (o *Orchestrator) ListSessions(ctx context.Context, _ *sheet.ListSessionsInput) (*sheet.ListSessionsOutput, error) {
	listed, err := o.sessions.List(ctx, session.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}
	return &sheet.ListSessionsOutput{SessionIDs: listed.IDs}, nil
}

// CloseSession drops a session with its notices and stored rolls
func (o *Orchestrator) CloseSession(ctx context.Context, input *sheet.CloseSessionInput) (*sheet.CloseSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	if _, err := o.sessions.Delete(ctx, session.DeleteInput{ID: input.SessionID}); err != nil {
		return nil, errors.Wrapf(err, "failed to close session %s", input.SessionID)
	}
	o.inbox.Forget(input.SessionID)

	if _, err := o.dice.ClearRolls(ctx, &dice.ClearRollsInput{SessionID: input.SessionID}); err != nil {
		slog.WarnContext(ctx, "Failed to clear ability rolls",
			"session_id", input.SessionID,
			"error", err,
		)
	}

	slog.InfoContext(ctx, "Closed session", "session_id", input.SessionID)
	return &sheet.CloseSessionOutput{}, nil
}

// Derive recomputes the snapshot on request
func (o *Orchestrator) Derive(ctx context.Context, input *sheet.DeriveInput) (*sheet.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, collected := notify.WithCollector(ctx)

	sess, err := o.session(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	derived, err := o.derivation.Derive(ctx, &derivation.DeriveInput{SessionID: sess.ID, Store: sess.Store})
	if err != nil {
		return nil, err
	}
	o.persist(ctx, sess)

	return output(sess, collected, derived.Dropped), nil
}

// Validate returns the rule issues of the current document
func (o *Orchestrator) Validate(ctx context.Context, input *sheet.ValidateInput) (*sheet.ValidateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, collected := notify.WithCollector(ctx)

	sess, err := o.session(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	validated, err := o.derivation.Validate(ctx, &derivation.ValidateInput{SessionID: sess.ID, Store: sess.Store})
	if err != nil {
		return nil, err
	}

	return &sheet.ValidateOutput{
		Issues:  validated.Issues,
		Version: validated.Version,
		Notices: collected.Messages(),
	}, nil
}

// DrainNotices returns and clears the session's pending notices
func (o *Orchestrator) DrainNotices(ctx context.Context, input *sheet.DrainNoticesInput) (*sheet.DrainNoticesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.session(ctx, input.SessionID); err != nil {
		return nil, err
	}
	return &sheet.DrainNoticesOutput{Notices: o.inbox.Drain(input.SessionID)}, nil
}
