// Package memory keeps live wizard sessions in process memory. Sessions are transient:
// they are lost on restart and evicted once idle.
package memory

import (
	"context"
	"sync"
	"time"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/session"
	"taskwizard/internal/core/ports"
	"taskwizard/internal/pkg/errs"
)

var _ ports.DraftSessionRepository = (*SessionStore)(nil)

// SessionStore is a ports.DraftSessionRepository over a map guarded by one lock.
// Sessions are immutable values, so readers get snapshots that later updates never change.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]session.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[kernel.UUID]session.Session),
	}
}

func (s *SessionStore) Add(_ context.Context, value session.Session) error {
	if err := value.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[value.ID()]; ok {
		return ports.ErrSessionAlreadyExists
	}
	s.sessions[value.ID()] = value
	return nil
}

func (s *SessionStore) Get(_ context.Context, id kernel.UUID) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.sessions[id]
	if !ok {
		return session.Session{}, errs.NewObjectNotFoundError("draft", id.String())
	}
	return value, nil
}

// Update runs mutate under the write lock. On error the stored session is kept and the
// current one is returned with the error.
func (s *SessionStore) Update(
	ctx context.Context,
	id kernel.UUID,
	mutate ports.SessionMutation,
) (session.Session, error) {
	if err := ctx.Err(); err != nil {
		return session.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[id]
	if !ok {
		return session.Session{}, errs.NewObjectNotFoundError("draft", id.String())
	}

	next, err := mutate(current)
	if err != nil {
		return current, err
	}
	if err = next.Validate(); err != nil {
		return current, err
	}
	if !next.ID().IsEqual(id) {
		return current, session.ErrDraftMismatch
	}

	s.sessions[id] = next
	return next, nil
}

func (s *SessionStore) Remove(_ context.Context, id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return errs.NewObjectNotFoundError("draft", id.String())
	}
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) RemoveIdle(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, value := range s.sessions {
		if value.IdleSince(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
