package ports

import (
	"context"
	"time"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/session"
	"taskwizard/internal/pkg/errs"
)

// ErrSessionAlreadyExists is returned by DraftSessionRepository.Add for a draft id that
// already has a live session.
var ErrSessionAlreadyExists = errs.NewConflictError("draft session already exists")

// SessionMutation computes the next state of a session. Returning an error leaves the
// stored session untouched.
type SessionMutation func(current session.Session) (session.Session, error)

// DraftSessionRepository holds the live wizard sessions. Sessions are addressed by
// their draft id. Missing sessions are reported as errs.ObjectNotFoundError.
type DraftSessionRepository interface {
	// Add stores a new session. Returns ErrSessionAlreadyExists when the id is taken.
	Add(ctx context.Context, s session.Session) error

	// Get returns a snapshot of the session.
	Get(ctx context.Context, id kernel.UUID) (session.Session, error)

	// Update applies mutate to the stored session atomically and stores the result.
	// Concurrent updates of the same session are serialised.
	Update(ctx context.Context, id kernel.UUID, mutate SessionMutation) (session.Session, error)

	// Remove discards the session.
	Remove(ctx context.Context, id kernel.UUID) error

	// RemoveIdle discards every session last touched before cutoff and returns how many
	// were removed.
	RemoveIdle(ctx context.Context, cutoff time.Time) (int, error)
}
