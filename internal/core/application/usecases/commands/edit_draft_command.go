package commands

import (
	"errors"

	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/pkg/errs"
	"taskwizard/internal/pkg/guard"
)

var (
	ErrEditDraftCommandIsNotConstructed = errors.New(
		"EditDraftCommand must be created via NewEditDraftCommand constructor",
	)
	ErrEditsAreRequired = errs.NewValueIsRequiredError("edits")
)

// EditDraftCommand applies a batch of user edits to a draft. The batch is applied
// entirely or not at all.
//
// Example:
//
//	cmd, err := NewEditDraftCommand(draftID,
//	    draft.SetPickup("123 Main St", "Ana, 0917"),
//	    draft.AddStop(),
//	)
type EditDraftCommand struct {
	draftID kernel.UUID
	edits   []draft.Edit

	guard guard.ConstructorGuard
}

func NewEditDraftCommand(draftID kernel.UUID, edits ...draft.Edit) (EditDraftCommand, error) {
	cmd := EditDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraftID(draftID),
		cmd.setEdits(edits),
	); err != nil {
		return EditDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditDraftCommand) Validate() error {
	return c.guard.Validate(ErrEditDraftCommandIsNotConstructed)
}

func (c EditDraftCommand) DraftID() kernel.UUID {
	return c.draftID
}

// Edits returns the edits in application order.
func (c EditDraftCommand) Edits() []draft.Edit {
	return append([]draft.Edit(nil), c.edits...)
}

func (c *EditDraftCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}
	c.draftID = draftID
	return nil
}

func (c *EditDraftCommand) setEdits(edits []draft.Edit) error {
	if len(edits) == 0 {
		return ErrEditsAreRequired
	}
	for _, edit := range edits {
		if edit == nil {
			return ErrEditsAreRequired
		}
	}
	c.edits = append([]draft.Edit(nil), edits...)
	return nil
}
