// Package notify publishes user-visible notices and view refresh signals
// for editing sessions on an rpg-toolkit event bus, and keeps an inbox of
// pending notices per session for the browser to drain.
package notify

//go:generate mockgen -destination=mock/mock_notifier.go -package=notifymock github.com/KirkDiggler/rpg-sheet/internal/notify Notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

// Event types published on the bus
const (
	EventNotice  = "sheet.notice"
	EventRefresh = "sheet.refresh"
)

// Event context keys
const (
	KeyMessage = "message"
	KeyVersion = "version"
)

// DefaultMaxPending caps the inbox of a session; the oldest notices go first
const DefaultMaxPending = 50

// Notifier tells the user about outcomes of edits
type Notifier interface {
	// Notice queues a short user-visible message (a toast)
	Notice(ctx context.Context, sessionID, message string)

	// Refresh signals that views of the session should re-render
	Refresh(ctx context.Context, sessionID string, version uint64)
}

// Inbox holds the notices of each session until the browser drains them
type Inbox interface {
	Drain(sessionID string) []Notice
	Forget(sessionID string)
}

// Notice is one queued message
type Notice struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Config holds the dependencies for the publisher
type Config struct {
	Bus        events.EventBus
	Clock      clock.Clock
	MaxPending int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.MaxPending < 0 {
		vb.Field("MaxPending", "must not be negative")
	}
	return vb.Build()
}

// Publisher implements Notifier on an event bus
type Publisher struct {
	bus        events.EventBus
	clock      clock.Clock
	maxPending int

	mu    sync.Mutex
	inbox map[string][]Notice
	subID string
}

var (
	_ Notifier    = (*Publisher)(nil)
	_ Inbox       = (*Publisher)(nil)
	_ core.Entity = (*session)(nil)
)

// New creates a publisher and subscribes its inbox to notice events
func New(cfg *Config) (*Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxPending := cfg.MaxPending
	if maxPending == 0 {
		maxPending = DefaultMaxPending
	}

	p := &Publisher{
		bus:        cfg.Bus,
		clock:      cfg.Clock,
		maxPending: maxPending,
		inbox:      make(map[string][]Notice),
	}
	p.subID = cfg.Bus.SubscribeFunc(EventNotice, 0, p.collect)

	return p, nil
}

// Notice publishes a notice event for the session
func (p *Publisher) Notice(ctx context.Context, sessionID, message string) {
	record(ctx, message)

	event := events.NewGameEvent(EventNotice, sessionEntity(sessionID), nil)
	event.Context().Set(KeyMessage, message)

	if err := p.bus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "Failed to publish notice",
			"session_id", sessionID,
			"message", message,
			"error", err,
		)
	}
}

// Refresh publishes a refresh event for the session
func (p *Publisher) Refresh(ctx context.Context, sessionID string, version uint64) {
	event := events.NewGameEvent(EventRefresh, sessionEntity(sessionID), nil)
	event.Context().Set(KeyVersion, version)

	if err := p.bus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "Failed to publish refresh",
			"session_id", sessionID,
			"version", version,
			"error", err,
		)
	}
}

// Drain returns and clears the pending notices of a session
func (p *Publisher) Drain(sessionID string) []Notice {
	p.mu.Lock()
	defer p.mu.Unlock()

	pending := p.inbox[sessionID]
	delete(p.inbox, sessionID)
	if pending == nil {
		return []Notice{}
	}
	return pending
}

// Forget drops the inbox of a closed session
func (p *Publisher) Forget(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inbox, sessionID)
}

// Close unsubscribes the inbox from the bus
func (p *Publisher) Close() error {
	return p.bus.Unsubscribe(p.subID)
}

func (p *Publisher) collect(_ context.Context, event events.Event) error {
	source := event.Source()
	if source == nil {
		return nil
	}
	value, ok := event.Context().Get(KeyMessage)
	if !ok {
		return nil
	}
	message, ok := value.(string)
	if !ok || message == "" {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	queue := append(p.inbox[source.GetID()], Notice{Message: message, At: p.clock.Now()})
	if len(queue) > p.maxPending {
		queue = queue[len(queue)-p.maxPending:]
	}
	p.inbox[source.GetID()] = queue
	return nil
}

// session is the event source for a sheet session
type session struct {
	id string
}

func sessionEntity(id string) core.Entity {
	return &session{id: id}
}

// GetID returns the session id
func (s *session) GetID() string {
	return s.id
}

// GetType identifies the entity kind
func (s *session) GetType() string {
	return "sheet_session"
}
