// Package errors provides the structured error type used across rpg-sheet.
//
// Every error carries a Code (mapped to an HTTP status by the API layer), a
// user-facing Message, an optional Cause and free-form Meta.
//
// # Basic Usage
//
//	err := errors.NotFoundf("session %s not found", id)
//	err := errors.InvalidArgumentf("unknown ability: %s", key)
//
// Wrapping keeps the code of an inner *Error:
//
//	if err := repo.Save(ctx, in); err != nil {
//	    return errors.Wrap(err, "failed to persist session")
//	}
//
// # Failure taxonomy
//
// Three kinds of failure reach the editor and are tagged in Meta["kind"]:
//
//   - Transport: the rules service was unreachable, answered non-2xx or timed
//     out. Build with Transport or TransportStatus; check with IsTransport.
//   - Parse: malformed JSON from a loaded file or a props edit. Build with
//     Parse; check with IsParse. Parse errors use CodeInvalidArgument.
//   - Stale: a derivation or validation reply arrived after the document
//     changed. Build with Stale; check with IsStale. Uses CodeAborted.
//
// Validation issues returned by the rules service are data, not errors, and
// never pass through this package.
//
// # Input validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
