package commands

import (
	"errors"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/pkg/guard"
)

var ErrSubmitDraftCommandIsNotConstructed = errors.New(
	"SubmitDraftCommand must be created via NewSubmitDraftCommand constructor",
)

// SubmitDraftCommand confirms the draft of a session and creates the task taskID from it.
//
// Example:
//
//	taskID := kernel.NewUUID()
//	cmd, _ := NewSubmitDraftCommand(draftID, taskID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	// redirect to the tracking view of taskID
type SubmitDraftCommand struct {
	draftID kernel.UUID
	taskID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitDraftCommand(draftID kernel.UUID, taskID kernel.UUID) (SubmitDraftCommand, error) {
	cmd := SubmitDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraftID(draftID),
		cmd.setTaskID(taskID),
	); err != nil {
		return SubmitDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitDraftCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDraftCommandIsNotConstructed)
}

func (c SubmitDraftCommand) DraftID() kernel.UUID {
	return c.draftID
}

func (c SubmitDraftCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c *SubmitDraftCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}
	c.draftID = draftID
	return nil
}

func (c *SubmitDraftCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}
	c.taskID = taskID
	return nil
}
