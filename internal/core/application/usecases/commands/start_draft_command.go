package commands

import (
	"errors"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/pkg/guard"
)

var ErrStartDraftCommandIsNotConstructed = errors.New(
	"StartDraftCommand must be created via NewStartDraftCommand constructor",
)

// StartDraftCommand opens a new wizard session with an empty draft.
//
// Example:
//
//	draftID := kernel.NewUUID()
//	cmd, err := NewStartDraftCommand(draftID, kernel.MultiStop)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type StartDraftCommand struct {
	draftID     kernel.UUID
	preselected kernel.TaskType

	guard guard.ConstructorGuard
}

// NewStartDraftCommand creates the command. preselected may be kernel.TaskTypeUnset when
// the user did not arrive with a task type.
func NewStartDraftCommand(draftID kernel.UUID, preselected kernel.TaskType) (StartDraftCommand, error) {
	cmd := StartDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraftID(draftID),
		cmd.setPreselected(preselected),
	); err != nil {
		return StartDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDraftCommand) Validate() error {
	return c.guard.Validate(ErrStartDraftCommandIsNotConstructed)
}

func (c StartDraftCommand) DraftID() kernel.UUID {
	return c.draftID
}

func (c StartDraftCommand) Preselected() kernel.TaskType {
	return c.preselected
}

func (c *StartDraftCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}
	c.draftID = draftID
	return nil
}

func (c *StartDraftCommand) setPreselected(taskType kernel.TaskType) error {
	if taskType != kernel.TaskTypeUnset {
		if err := taskType.Validate(); err != nil {
			return err
		}
	}
	c.preselected = taskType
	return nil
}
