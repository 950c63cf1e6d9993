package commands

import (
	"context"

	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/session"
	"taskwizard/internal/core/domain/model/wizard"
	"taskwizard/internal/core/ports"
)

// StartDraftCommandHandler opens wizard sessions.
type StartDraftCommandHandler struct {
	sessions ports.DraftSessionRepository
	now      Clock
}

func NewStartDraftCommandHandler(sessions ports.DraftSessionRepository, now Clock) StartDraftCommandHandler {
	return StartDraftCommandHandler{
		sessions: sessions,
		now:      now,
	}
}

// Handle creates the draft with its defaults and stores a session whose wizard opens on
// the route step when a task type was preselected, else on the task type step.
func (h StartDraftCommandHandler) Handle(ctx context.Context, cmd StartDraftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := draft.NewDraft(cmd.DraftID(), cmd.Preselected())
	if err != nil {
		return err
	}

	s, err := session.New(d, wizard.New(cmd.Preselected()), h.now())
	if err != nil {
		return err
	}

	return h.sessions.Add(ctx, s)
}
