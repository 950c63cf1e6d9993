package commands

import (
	"errors"
	"fmt"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/pkg/errs"
	"taskwizard/internal/pkg/guard"
)

var ErrNavigateDraftCommandIsNotConstructed = errors.New(
	"NavigateDraftCommand must be created via NewNavigateDraftCommand constructor",
)

// Direction is a wizard move.
type Direction string

const (
	Next Direction = "next"
	Back Direction = "back"
)

// NavigateDraftCommand moves the wizard of a session one step forwards or backwards.
type NavigateDraftCommand struct {
	draftID   kernel.UUID
	direction Direction

	guard guard.ConstructorGuard
}

func NewNavigateDraftCommand(draftID kernel.UUID, direction Direction) (NavigateDraftCommand, error) {
	cmd := NavigateDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraftID(draftID),
		cmd.setDirection(direction),
	); err != nil {
		return NavigateDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NavigateDraftCommand) Validate() error {
	return c.guard.Validate(ErrNavigateDraftCommandIsNotConstructed)
}

func (c NavigateDraftCommand) DraftID() kernel.UUID {
	return c.draftID
}

func (c NavigateDraftCommand) Direction() Direction {
	return c.direction
}

func (c *NavigateDraftCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}
	c.draftID = draftID
	return nil
}

func (c *NavigateDraftCommand) setDirection(direction Direction) error {
	if direction != Next && direction != Back {
		return errs.NewValueIsInvalidErrorWithCause("direction", fmt.Errorf("%q is not next or back", string(direction)))
	}
	c.direction = direction
	return nil
}
