package commands

import (
	"context"
	"errors"

	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/session"
	"taskwizard/internal/core/domain/model/wizard"
	"taskwizard/internal/core/ports"
)

// AttachPhotoCommandHandler runs the media picker and stores the chosen photo.
type AttachPhotoCommandHandler struct {
	sessions ports.DraftSessionRepository
	picker   ports.MediaPicker
	now      Clock
}

func NewAttachPhotoCommandHandler(
	sessions ports.DraftSessionRepository,
	picker ports.MediaPicker,
	now Clock,
) AttachPhotoCommandHandler {
	return AttachPhotoCommandHandler{
		sessions: sessions,
		picker:   picker,
		now:      now,
	}
}

// Handle picks a photo and attaches it. A cancelled pick leaves the draft unchanged and
// is not an error. The picker runs outside the session update, so a slow pick does not
// hold up other edits.
func (h AttachPhotoCommandHandler) Handle(ctx context.Context, cmd AttachPhotoCommand) (session.Session, error) {
	if err := cmd.Validate(); err != nil {
		return session.Session{}, err
	}

	current, err := h.sessions.Get(ctx, cmd.DraftID())
	if err != nil {
		return session.Session{}, err
	}

	photo, err := h.picker.Pick(ctx, cmd.PickerOptions(), cmd.Selection())
	if errors.Is(err, ports.ErrPickCancelled) {
		return current, nil
	}
	if err != nil {
		return session.Session{}, err
	}

	edit := draft.UpdateItem(draft.ItemPatch{Photo: &photo})
	if stopID, ok := cmd.StopID(); ok {
		edit = draft.UpdateStop(stopID, draft.StopPatch{Photo: &photo})
	}

	return h.sessions.Update(ctx, cmd.DraftID(), func(current session.Session) (session.Session, error) {
		if current.Wizard().Confirmed() {
			return current, wizard.ErrWizardConfirmed
		}

		edited, err := draft.Apply(current.Draft(), edit)
		if err != nil {
			return current, err
		}

		return current.WithDraft(edited, h.now())
	})
}
