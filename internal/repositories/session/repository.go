// Package session keeps the open editing sessions. Each session owns one
// character store; live sessions are held in memory and written through
// to Redis so a restarted server can pick them up again.
package session

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/store"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/rpg-sheet/internal/repositories/session Repository

// Session is one editing session
type Session struct {
	ID        string
	Store     *store.Store
	CreatedAt time.Time
}

// CreateInput contains parameters for opening a session
type CreateInput struct {
	// ID is generated when empty
	ID string
}

// CreateOutput contains the new session
type CreateOutput struct {
	Session *Session
}

// GetInput identifies a session
type GetInput struct {
	ID string
}

// GetOutput contains the session
type GetOutput struct {
	Session *Session
}

// SaveInput contains the session to persist
type SaveInput struct {
	Session *Session
}

// SaveOutput reports the persisted version
type SaveOutput struct {
	Version uint64
}

// DeleteInput identifies a session to close
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of closing a session
type DeleteOutput struct{}

// ListInput is empty; sessions are not scoped
type ListInput struct{}

// ListOutput lists open session IDs
type ListOutput struct {
	IDs []string
}

// Repository defines session storage
type Repository interface {
	// Create opens a session with an empty store
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get returns the live session, restoring it from Redis when it is not
	// in memory. Unknown or expired IDs are NotFound.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save writes the session's current state and refreshes its TTL
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete closes a session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the IDs of sessions that have not expired
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
