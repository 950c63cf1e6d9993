package session

import (
	"errors"
	"time"

	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/wizard"
	"taskwizard/internal/pkg/errs"
	"taskwizard/internal/pkg/guard"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not created through New.
	ErrSessionIsNotConstructed = errors.New("Session must be created via New constructor")

	// ErrDraftMismatch is returned when a session is handed a draft of another session.
	ErrDraftMismatch = errors.New("draft belongs to another session")
)

// Session is one user's live wizard: the draft being filled in, the wizard step and
// the time of the last interaction. It is a value; With* methods return a new Session.
type Session struct {
	draft     draft.Draft
	wizard    wizard.Wizard
	touchedAt time.Time

	guard guard.ConstructorGuard
}

// New opens a session for d at now.
func New(d draft.Draft, w wizard.Wizard, now time.Time) (Session, error) {
	if err := errors.Join(d.Validate(), w.Validate()); err != nil {
		return Session{}, err
	}
	if now.IsZero() {
		return Session{}, errs.NewValueIsRequiredError("touched at")
	}

	return Session{
		draft:     d,
		wizard:    w,
		touchedAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate rejects zero-value sessions.
func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// ID is the id of the session draft.
func (s Session) ID() kernel.UUID {
	return s.draft.ID()
}

func (s Session) Draft() draft.Draft    { return s.draft }
func (s Session) Wizard() wizard.Wizard { return s.wizard }
func (s Session) TouchedAt() time.Time  { return s.touchedAt }

// WithDraft replaces the draft wholesale.
func (s Session) WithDraft(d draft.Draft, now time.Time) (Session, error) {
	if err := d.Validate(); err != nil {
		return s, err
	}
	if !d.ID().IsEqual(s.draft.ID()) {
		return s, ErrDraftMismatch
	}
	s.draft = d
	s.touchedAt = now
	return s, nil
}

// WithWizard replaces the wizard state.
func (s Session) WithWizard(w wizard.Wizard, now time.Time) (Session, error) {
	if err := w.Validate(); err != nil {
		return s, err
	}
	s.wizard = w
	s.touchedAt = now
	return s, nil
}

// IdleSince reports whether the session was last touched before cutoff.
func (s Session) IdleSince(cutoff time.Time) bool {
	return s.touchedAt.Before(cutoff)
}
