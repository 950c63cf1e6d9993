package commands_test

import (
	"errors"
	"testing"
	"time"

	"taskwizard/internal/core/application/usecases/commands"
	"taskwizard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvictIdleDraftsCommand(t *testing.T) {
	cmd, err := commands.NewEvictIdleDraftsCommand(30 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cmd.IdleFor())

	_, err = commands.NewEvictIdleDraftsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestEvictIdleDraftsCommandHandler_Handle(t *testing.T) {
	t.Run("should remove sessions idle before the cutoff", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewEvictIdleDraftsCommand(30 * time.Minute)

		sessions := new(MockDraftSessionRepository)
		sessions.On("RemoveIdle", ctx, fixedNow.Add(-30*time.Minute)).Return(3, nil).Once()

		h := commands.NewEvictIdleDraftsCommandHandler(sessions, fixedClock)
		removed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 3, removed)
		sessions.AssertExpectations(t)
	})

	t.Run("should return store errors", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewEvictIdleDraftsCommand(time.Minute)

		sessions := new(MockDraftSessionRepository)
		sessions.On("RemoveIdle", ctx, fixedNow.Add(-time.Minute)).Return(0, errors.New("store error")).Once()

		h := commands.NewEvictIdleDraftsCommandHandler(sessions, fixedClock)
		_, err := h.Handle(ctx, cmd)

		require.Error(t, err)
	})

	t.Run("should reject a command that was not constructed", func(t *testing.T) {
		h := commands.NewEvictIdleDraftsCommandHandler(new(MockDraftSessionRepository), fixedClock)

		_, err := h.Handle(t.Context(), commands.EvictIdleDraftsCommand{})

		require.ErrorIs(t, err, commands.ErrEvictIdleDraftsCommandIsNotConstructed)
	})
}
