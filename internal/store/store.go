// Package store holds the character document and derived snapshot of one
// editing session.
//
// Every change to the document goes through the store so that a version
// counter can tell derivation replies for an old document apart from
// replies for the current one. The version increases on Set, Create, Load,
// Reset and every rule-relevant mutation.
package store

import (
	"sync"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// MutateFunc edits a working copy of the document. Returning an error
// discards the copy.
type MutateFunc func(doc *entities.Document) error

// DerivedMutateFunc is a MutateFunc that also sees the snapshot current at
// the time of the edit. derived is nil when there is none.
type DerivedMutateFunc func(doc *entities.Document, derived *entities.Snapshot) error

// State is a consistent read of the store
type State struct {
	Document *entities.Document
	Derived  *entities.Snapshot
	Version  uint64
}

// Store is safe for concurrent use
type Store struct {
	mu      sync.RWMutex
	doc     *entities.Document
	derived *entities.Snapshot
	version uint64
}

// New returns an empty store with no document
func New() *Store {
	return &Store{}
}

// Get returns a copy of the current document, or nil when none is loaded
func (s *Store) Get() *entities.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Set replaces the document and returns the stored copy. The snapshot is
// left as is.
func (s *Store) Set(doc *entities.Document) *entities.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	s.version++
	return s.doc.Clone()
}

// Create installs a freshly created document and clears the snapshot
func (s *Store) Create(doc *entities.Document) uint64 {
	return s.replace(doc)
}

// Load installs a document read from a file and clears the snapshot
func (s *Store) Load(doc *entities.Document) uint64 {
	return s.replace(doc)
}

// Reset drops the document and snapshot
func (s *Store) Reset() uint64 {
	return s.replace(nil)
}

func (s *Store) replace(doc *entities.Document) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	s.derived = nil
	s.version++
	return s.version
}

// Restore reinstates persisted state, including its version
func (s *Store) Restore(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = st.Document.Clone()
	s.derived = st.Derived
	s.version = st.Version
}

// Derived returns the latest snapshot, or nil when absent
func (s *Store) Derived() *entities.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.derived
}

// SetDerived stores or clears the snapshot unconditionally
func (s *Store) SetDerived(snap *entities.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.derived = snap
}

// Version returns the current document version
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// State returns document, snapshot and version read together
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Document: s.doc.Clone(),
		Derived:  s.derived,
		Version:  s.version,
	}
}

// Mutate runs fn against a copy of the document and commits the copy when
// fn succeeds. A rule-relevant mutation bumps the version and clears the
// snapshot. It returns the version after the mutation.
func (s *Store) Mutate(ruleRelevant bool, fn MutateFunc) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.apply(fn); err != nil {
		return s.version, err
	}

	if ruleRelevant {
		s.version++
		s.derived = nil
	}
	return s.version, nil
}

// MutateWithDerived runs a mutation that is not rule-relevant with the
// snapshot read under the same lock, so a concurrent rule-relevant edit
// cannot leave fn working from a snapshot that no longer applies.
func (s *Store) MutateWithDerived(fn DerivedMutateFunc) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	derived := s.derived
	err := s.apply(func(doc *entities.Document) error {
		return fn(doc, derived)
	})
	return s.version, err
}

// MutateAt is Mutate for a change computed against version. It does not
// bump the version and fails with a stale error when the document moved on.
func (s *Store) MutateAt(version uint64, fn MutateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.version != version {
		return errors.Stale("mutate", version, s.version)
	}
	return s.apply(fn)
}

func (s *Store) apply(fn MutateFunc) error {
	if s.doc == nil {
		return errors.FailedPrecondition("no character loaded")
	}

	working := s.doc.Clone()
	if err := fn(working); err != nil {
		return err
	}
	s.doc = working
	return nil
}

// ApplyDerived stores snap only if the document is still at version
func (s *Store) ApplyDerived(version uint64, snap *entities.Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.version != version {
		return false
	}
	s.derived = snap
	return true
}

// ClearDerived drops the snapshot only if the document is still at version
func (s *Store) ClearDerived(version uint64) bool {
	return s.ApplyDerived(version, nil)
}
