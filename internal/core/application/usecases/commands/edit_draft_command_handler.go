package commands

import (
	"context"

	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/session"
	"taskwizard/internal/core/domain/model/wizard"
	"taskwizard/internal/core/ports"
)

// EditDraftCommandHandler applies edits to the draft of a live session.
type EditDraftCommandHandler struct {
	sessions ports.DraftSessionRepository
	now      Clock
}

func NewEditDraftCommandHandler(sessions ports.DraftSessionRepository, now Clock) EditDraftCommandHandler {
	return EditDraftCommandHandler{
		sessions: sessions,
		now:      now,
	}
}

// Handle replaces the session draft with the edited one and returns the updated session.
// When the edits undo a step the user already passed, the wizard is moved back to it.
// A submitted session no longer accepts edits (wizard.ErrWizardConfirmed).
func (h EditDraftCommandHandler) Handle(ctx context.Context, cmd EditDraftCommand) (session.Session, error) {
	if err := cmd.Validate(); err != nil {
		return session.Session{}, err
	}

	return h.sessions.Update(ctx, cmd.DraftID(), func(current session.Session) (session.Session, error) {
		if current.Wizard().Confirmed() {
			return current, wizard.ErrWizardConfirmed
		}

		edited, err := draft.Apply(current.Draft(), cmd.Edits()...)
		if err != nil {
			return current, err
		}

		next, err := current.WithDraft(edited, h.now())
		if err != nil {
			return current, err
		}
		return next.WithWizard(current.Wizard().Rewind(edited), h.now())
	})
}
