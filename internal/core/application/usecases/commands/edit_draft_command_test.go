package commands_test

import (
	"testing"

	"taskwizard/internal/core/application/usecases/commands"
	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/wizard"
	"taskwizard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditDraftCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewEditDraftCommand(id, draft.AddStop(), draft.SetPickup("A", ""))
	require.NoError(t, err)
	assert.Len(t, cmd.Edits(), 2)

	_, err = commands.NewEditDraftCommand(id)
	require.ErrorIs(t, err, commands.ErrEditsAreRequired)

	_, err = commands.NewEditDraftCommand(id, nil)
	require.ErrorIs(t, err, commands.ErrEditsAreRequired)
}

func TestEditDraftCommandHandler_Handle(t *testing.T) {
	t.Run("should apply the edits and refresh the session", func(t *testing.T) {
		ctx := t.Context()
		current := newSession(t, kernel.MultiStop, wizard.StepRoute)
		cmd, _ := commands.NewEditDraftCommand(current.ID(),
			draft.SetPickup("123 Main St", ""),
			draft.AddStop(),
			draft.UpdateStopAt(0, draft.StopPatch{Address: ptr("456 Oak Ave")}),
		)

		sessions := new(MockDraftSessionRepository)
		sessions.On("Update", ctx, current.ID()).Return(current, nil).Once()

		h := commands.NewEditDraftCommandHandler(sessions, fixedClock)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "123 Main St", updated.Draft().PickupAddress())
		assert.Equal(t, 1, updated.Draft().Stops().Len())
		assert.Equal(t, fixedNow, updated.TouchedAt())
		assert.True(t, wizard.CanAdvance(wizard.StepRoute, updated.Draft()))
		sessions.AssertExpectations(t)
	})

	t.Run("should leave the session untouched when one edit fails", func(t *testing.T) {
		ctx := t.Context()
		current := newSession(t, kernel.MultiStop, wizard.StepRoute)
		cmd, _ := commands.NewEditDraftCommand(current.ID(),
			draft.SetPickup("123 Main St", ""),
			draft.RemoveStopAt(0),
		)

		sessions := new(MockDraftSessionRepository)
		sessions.On("Update", ctx, current.ID()).Return(current, nil).Once()

		h := commands.NewEditDraftCommandHandler(sessions, fixedClock)
		updated, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Empty(t, updated.Draft().PickupAddress())
	})

	t.Run("should move the wizard back to a step the edits undid", func(t *testing.T) {
		ctx := t.Context()
		current := newSession(t, kernel.Send, wizard.StepConfirm, completeSendEdits()...)
		cmd, _ := commands.NewEditDraftCommand(current.ID(), draft.SetDropoff("", draft.Contact{}))

		sessions := new(MockDraftSessionRepository)
		sessions.On("Update", ctx, current.ID()).Return(current, nil).Once()

		h := commands.NewEditDraftCommandHandler(sessions, fixedClock)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, wizard.StepRoute, updated.Wizard().Step())
		assert.Empty(t, updated.Draft().DropoffAddress())
	})

	t.Run("should keep the step when the edits leave earlier steps complete", func(t *testing.T) {
		ctx := t.Context()
		current := newSession(t, kernel.Send, wizard.StepPayment, completeSendEdits()...)
		cmd, _ := commands.NewEditDraftCommand(current.ID(), draft.SetPaymentMethod(draft.GCash))

		sessions := new(MockDraftSessionRepository)
		sessions.On("Update", ctx, current.ID()).Return(current, nil).Once()

		h := commands.NewEditDraftCommandHandler(sessions, fixedClock)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, wizard.StepPayment, updated.Wizard().Step())
	})

	t.Run("should reject a stop on a send draft", func(t *testing.T) {
		ctx := t.Context()
		current := newSession(t, kernel.Send, wizard.StepRoute)
		cmd, _ := commands.NewEditDraftCommand(current.ID(), draft.AddStop())

		sessions := new(MockDraftSessionRepository)
		sessions.On("Update", ctx, current.ID()).Return(current, nil).Once()

		h := commands.NewEditDraftCommandHandler(sessions, fixedClock)
		updated, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, draft.ErrStopsRequireMultiStop)
		assert.Equal(t, 0, updated.Draft().Stops().Len())
	})

	t.Run("should return not found for an unknown session", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewEditDraftCommand(id, draft.AddStop())

		sessions := new(MockDraftSessionRepository)
		sessions.On("Update", ctx, id).Return(nil, errs.NewObjectNotFoundError("draft", id.String())).Once()

		h := commands.NewEditDraftCommandHandler(sessions, fixedClock)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
