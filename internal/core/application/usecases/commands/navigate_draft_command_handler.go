package commands

import (
	"context"

	"taskwizard/internal/core/domain/model/session"
	"taskwizard/internal/core/domain/model/wizard"
	"taskwizard/internal/core/ports"
)

// NavigateDraftResult is the wizard position after a move.
type NavigateDraftResult struct {
	Step wizard.Step
	// Exited is set when Back was pressed on the first step. The session is gone.
	Exited bool
}

// NavigateDraftCommandHandler moves wizards between steps.
type NavigateDraftCommandHandler struct {
	sessions ports.DraftSessionRepository
	now      Clock
}

func NewNavigateDraftCommandHandler(sessions ports.DraftSessionRepository, now Clock) NavigateDraftCommandHandler {
	return NavigateDraftCommandHandler{
		sessions: sessions,
		now:      now,
	}
}

// Handle advances or steps back.
//
// Next fails with wizard.ErrStepIncomplete while the current step is not satisfied and
// with wizard.ErrConfirmationRequiresSubmission on the confirm step. Back on the first
// step exits the wizard and discards the session.
func (h NavigateDraftCommandHandler) Handle(ctx context.Context, cmd NavigateDraftCommand) (NavigateDraftResult, error) {
	if err := cmd.Validate(); err != nil {
		return NavigateDraftResult{}, err
	}

	var exited bool
	updated, err := h.sessions.Update(ctx, cmd.DraftID(), func(current session.Session) (session.Session, error) {
		var (
			next wizard.Wizard
			err  error
		)
		switch cmd.Direction() {
		case Next:
			next, err = current.Wizard().Advance(current.Draft())
		case Back:
			next, exited, err = current.Wizard().Back()
		}
		if err != nil {
			return current, err
		}

		return current.WithWizard(next, h.now())
	})
	if err != nil {
		return NavigateDraftResult{}, err
	}

	if exited {
		if err = h.sessions.Remove(ctx, cmd.DraftID()); err != nil {
			return NavigateDraftResult{}, err
		}
	}

	return NavigateDraftResult{Step: updated.Wizard().Step(), Exited: exited}, nil
}
