package commands

import (
	"errors"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/ports"
	"taskwizard/internal/pkg/guard"
)

var ErrAttachPhotoCommandIsNotConstructed = errors.New(
	"AttachPhotoCommand must be created via NewAttachPhotoCommand constructor",
)

// AttachPhotoCommand sets the photo of the single item, or of one stop when a stop id
// is given, from the user's picker selection.
type AttachPhotoCommand struct {
	draftID   kernel.UUID
	stopID    *kernel.UUID
	selection ports.MediaSelection

	guard guard.ConstructorGuard
}

// NewAttachPhotoCommand creates the command. stopID is nil for the single item photo.
func NewAttachPhotoCommand(
	draftID kernel.UUID,
	stopID *kernel.UUID,
	selection ports.MediaSelection,
) (AttachPhotoCommand, error) {
	cmd := AttachPhotoCommand{
		selection: selection,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraftID(draftID),
		cmd.setStopID(stopID),
	); err != nil {
		return AttachPhotoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachPhotoCommand) Validate() error {
	return c.guard.Validate(ErrAttachPhotoCommandIsNotConstructed)
}

func (c AttachPhotoCommand) DraftID() kernel.UUID {
	return c.draftID
}

// StopID returns the target stop, or false for the single item.
func (c AttachPhotoCommand) StopID() (kernel.UUID, bool) {
	if c.stopID == nil {
		return kernel.UUID{}, false
	}
	return *c.stopID, true
}

func (c AttachPhotoCommand) Selection() ports.MediaSelection {
	return c.selection
}

// PickerOptions are the fixed picker settings of the photo target.
func (c AttachPhotoCommand) PickerOptions() ports.PickerOptions {
	if c.stopID != nil {
		return ports.StopPhotoOptions()
	}
	return ports.ItemPhotoOptions()
}

func (c *AttachPhotoCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}
	c.draftID = draftID
	return nil
}

func (c *AttachPhotoCommand) setStopID(stopID *kernel.UUID) error {
	if stopID == nil {
		return nil
	}
	if err := stopID.Validate(); err != nil {
		return err
	}
	id := *stopID
	c.stopID = &id
	return nil
}
