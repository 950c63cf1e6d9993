package commands

import (
	"context"
	"errors"

	"taskwizard/internal/core/domain/model/session"
	"taskwizard/internal/core/domain/model/task"
	"taskwizard/internal/core/domain/services"
	"taskwizard/internal/core/ports"
	"taskwizard/internal/pkg/errs"
)

// SubmitDraftCommandHandler hands confirmed drafts to order creation.
//
// Example:
//
//	handler := NewSubmitDraftCommandHandler(sessions, uowFactory, assembler, SystemClock)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, wizard.ErrNotOnConfirmStep):
//	    // the user has not reached the confirm step
//	case errors.Is(err, wizard.ErrStepIncomplete):
//	    // a later edit undid an earlier step
//	case errors.Is(err, wizard.ErrWizardConfirmed):
//	    // already submitted
//	case err != nil:
//	    // submission failed, the draft is still open
//	}
type SubmitDraftCommandHandler struct {
	sessions   ports.DraftSessionRepository
	uowFactory TaskUoWFactory
	assembler  services.SubmissionAssembler
	now        Clock
}

func NewSubmitDraftCommandHandler(
	sessions ports.DraftSessionRepository,
	uowFactory TaskUoWFactory,
	assembler services.SubmissionAssembler,
	now Clock,
) SubmitDraftCommandHandler {
	return SubmitDraftCommandHandler{
		sessions:   sessions,
		uowFactory: uowFactory,
		assembler:  assembler,
		now:        now,
	}
}

// Handle submits the draft.
//
// The session is confirmed first, which makes a concurrent second submission fail with
// wizard.ErrWizardConfirmed. The task is then stored in its own transaction. If storing
// fails the confirmation is undone and the draft stays editable. On success the session
// is discarded.
func (h SubmitDraftCommandHandler) Handle(ctx context.Context, cmd SubmitDraftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var (
		previous session.Session
		created  *task.Task
	)
	_, err := h.sessions.Update(ctx, cmd.DraftID(), func(current session.Session) (session.Session, error) {
		confirmed, err := current.Wizard().Confirm(current.Draft(), cmd.TaskID())
		if err != nil {
			return current, err
		}

		submission, err := h.assembler.Assemble(current.Draft())
		if err != nil {
			return current, err
		}

		created, err = task.NewTask(cmd.TaskID(), submission, h.now())
		if err != nil {
			return current, err
		}

		previous = current
		return current.WithWizard(confirmed, h.now())
	})
	if err != nil {
		return err
	}

	if err = h.store(ctx, created); err != nil {
		h.release(ctx, previous)
		return err
	}

	if err = h.sessions.Remove(ctx, cmd.DraftID()); err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	return nil
}

func (h SubmitDraftCommandHandler) store(ctx context.Context, t *task.Task) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TaskRepository().Add(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// release restores the wizard as it was before the failed submission.
func (h SubmitDraftCommandHandler) release(ctx context.Context, previous session.Session) {
	_, _ = h.sessions.Update(ctx, previous.ID(), func(current session.Session) (session.Session, error) {
		return current.WithWizard(previous.Wizard(), h.now())
	})
}
