// Package rules is the HTTP client for the rules service that owns module
// catalogs, character templates, derivation and validation.
package rules

//go:generate mockgen -destination=mock/mock_client.go -package=rulesmock github.com/KirkDiggler/rpg-sheet/internal/clients/rules Client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	// DefaultBaseURL is where a locally run rules service listens
	DefaultBaseURL = "http://127.0.0.1:8000/api"
	// DefaultTimeout bounds every call to the rules service
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 512
)

// Client defines the calls made to the rules service
type Client interface {
	// ListModules returns the available rule modules
	ListModules(ctx context.Context) ([]*Module, error)

	// NewCharacter asks a module for a starting document
	NewCharacter(ctx context.Context, input *NewCharacterInput) (*entities.Document, error)

	// Derive computes the derived statistics of a document
	Derive(ctx context.Context, doc *entities.Document) (*entities.Snapshot, error)

	// Validate returns the rule issues of a document. Issues are not errors.
	Validate(ctx context.Context, doc *entities.Document) ([]string, error)

	// SearchSpells looks up spells for autocomplete
	SearchSpells(ctx context.Context, input *SearchSpellsInput) ([]*Spell, error)

	// Log forwards a client-visible failure. It never fails.
	Log(ctx context.Context, entry *LogEntry)
}

// Config configures the rules client
type Config struct {
	// BaseURL includes the API prefix, e.g. http://host:8000/api
	BaseURL string
	// Timeout applies to each request (default 10s)
	Timeout time.Duration
	// HTTPClient is optional; a default client is used when nil
	HTTPClient *http.Client
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}

	vb := errors.NewValidationBuilder()
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		vb.Field("BaseURL", "must be an absolute URL")
	}
	if c.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// New creates a rules service client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		httpClient: httpClient,
	}, nil
}

var _ Client = (*client)(nil)

func (c *client) ListModules(ctx context.Context) ([]*Module, error) {
	var out listModulesResponse
	if err := c.do(ctx, "modules", http.MethodGet, "/modules", nil, &out); err != nil {
		return nil, err
	}
	return out.Modules, nil
}

func (c *client) NewCharacter(ctx context.Context, input *NewCharacterInput) (*entities.Document, error) {
	if input == nil {
		input = &NewCharacterInput{}
	}

	var doc entities.Document
	if err := c.do(ctx, "new character", http.MethodPost, "/new_character", input, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *client) Derive(ctx context.Context, doc *entities.Document) (*entities.Snapshot, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "derive", http.MethodPost, "/derive", doc, &raw); err != nil {
		return nil, err
	}

	snap, err := entities.ParseSnapshot(raw)
	if err != nil {
		return nil, errors.Transport(err, "derive")
	}
	return snap, nil
}

func (c *client) Validate(ctx context.Context, doc *entities.Document) ([]string, error) {
	var out validateResponse
	if err := c.do(ctx, "validate", http.MethodPost, "/validate", doc, &out); err != nil {
		return nil, err
	}
	if out.Issues == nil {
		return []string{}, nil
	}
	return out.Issues, nil
}

func (c *client) SearchSpells(ctx context.Context, input *SearchSpellsInput) ([]*Spell, error) {
	query := url.Values{}
	if input != nil {
		for key, value := range map[string]string{"module": input.Module, "name": input.Name, "cls": input.Class} {
			if value != "" {
				query.Set(key, value)
			}
		}
	}

	path := "/spells"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var out searchSpellsResponse
	if err := c.do(ctx, "spells", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Spells, nil
}

func (c *client) Log(ctx context.Context, entry *LogEntry) {
	if entry == nil {
		return
	}
	if entry.Level == "" {
		entry.Level = LevelError
	}

	if err := c.do(ctx, "log", http.MethodPost, "/log", entry, nil); err != nil {
		slog.DebugContext(ctx, "Remote log dropped", "error", err)
	}
}

// do performs one request. Network failures, timeouts, non-2xx replies and
// undecodable bodies all come back as transport errors.
func (c *client) do(ctx context.Context, operation, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s request", operation)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s request", operation)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Transport(err, operation)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body fully read or abandoned
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) // nolint:errcheck // best effort detail
		return errors.TransportStatus(operation, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body) // nolint:errcheck // drain for connection reuse
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Transport(err, operation)
	}
	return nil
}
