// Package dao provides data access objects for use in the parlance server.
package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maybell/parlance"
)

// Store holds all the repositories.
type Store struct {
	Sessions SessionRepository
}

// Close closes every repository in the store, returning the first error
// encountered.
func (s Store) Close() error {
	return s.Sessions.Close()
}

// Session is one persisted game session: its identity plus a snapshot of the
// vocabulary and world model it has accumulated.
type Session struct {
	ID      uuid.UUID
	Created time.Time
	State   parlance.State
}

// SessionRepository stores and retrieves persisted sessions.
type SessionRepository interface {

	// Create creates a new Session. The ID and Created fields of the
	// provided Session are ignored; they are generated and returned in the
	// stored copy.
	Create(ctx context.Context, s Session) (Session, error)

	// GetByID retrieves the Session with the given ID. If no such session
	// exists, ErrNotFound is returned.
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)

	// GetAll retrieves every stored Session, ordered by ID so output is
	// reproducible.
	GetAll(ctx context.Context) ([]Session, error)

	// Update replaces the stored state of the session with the given ID. If
	// no such session exists, ErrNotFound is returned.
	Update(ctx context.Context, id uuid.UUID, s Session) (Session, error)

	// Delete removes the Session with the given ID and returns it as it was
	// just prior to deletion. If no such session exists, ErrNotFound is
	// returned.
	Delete(ctx context.Context, id uuid.UUID) (Session, error)

	// Close releases any resources held by the repository.
	Close() error
}
