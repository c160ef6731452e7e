package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// errorResponse is the body of every failed request
type errorResponse struct {
	Code    errors.Code    `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.WarnContext(r.Context(), "Failed to write response", "path", r.URL.Path, "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Code: errors.CodeInternal, Message: "internal error"}

	var apiErr *errors.Error
	if errors.As(err, &apiErr) {
		resp.Code = apiErr.Code
		resp.Message = messageChain(apiErr)
		resp.Meta = apiErr.Meta
	}

	status := resp.Code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", resp.Code,
			"error", err,
		)
	}
	writeJSON(w, r, status, resp)
}

// messageChain joins the messages of wrapped errors without their codes
func messageChain(err *errors.Error) string {
	msg := err.Message
	for cause := err.Cause; cause != nil; {
		var inner *errors.Error
		if !errors.As(cause, &inner) {
			return msg + ": " + cause.Error()
		}
		if inner.Message != "" {
			msg += ": " + inner.Message
		}
		cause = inner.Cause
	}
	return msg
}

// decode reads a JSON request body into v. An empty body leaves v unchanged.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	data, err := readBody(w, r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Parse(err, "request body")
	}
	return nil
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request body")
	}
	return data, nil
}

// propsText accepts props either as JSON object text in a string or as an
// inline JSON value, returning the text to parse
func propsText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if json.Unmarshal(trimmed, &text) == nil {
			return text
		}
	}
	return string(trimmed)
}

func indexParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid index: %q", raw)
	}
	return index, nil
}

// pathParam returns a URL parameter with percent-encoding removed
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}
