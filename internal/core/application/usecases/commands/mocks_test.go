package commands_test

import (
	"context"
	"testing"
	"time"

	"taskwizard/internal/core/application/usecases/commands"
	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/session"
	"taskwizard/internal/core/domain/model/task"
	"taskwizard/internal/core/domain/model/wizard"
	"taskwizard/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

type MockDraftSessionRepository struct{ mock.Mock }

func (m *MockDraftSessionRepository) Add(ctx context.Context, s session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockDraftSessionRepository) Get(ctx context.Context, id kernel.UUID) (session.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(session.Session), args.Error(1)
}

// Update applies mutate to the session configured as the first return value, the way
// the real store does.
func (m *MockDraftSessionRepository) Update(
	ctx context.Context,
	id kernel.UUID,
	mutate ports.SessionMutation,
) (session.Session, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return session.Session{}, err
	}
	return mutate(args.Get(0).(session.Session))
}

func (m *MockDraftSessionRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDraftSessionRepository) RemoveIdle(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

type MockTaskUoW struct{ mock.Mock }

func (m *MockTaskUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

type MockTaskUoWFactory struct{ mock.Mock }

func (m *MockTaskUoWFactory) Create() commands.TaskUoW {
	args := m.Called()
	return args.Get(0).(commands.TaskUoW)
}

type MockMediaPicker struct{ mock.Mock }

func (m *MockMediaPicker) Pick(
	ctx context.Context,
	options ports.PickerOptions,
	selection ports.MediaSelection,
) (draft.PhotoRef, error) {
	args := m.Called(ctx, options, selection)
	return args.Get(0).(draft.PhotoRef), args.Error(1)
}

func ptr[T any](v T) *T {
	return &v
}

// newSession builds a session for a draft of taskType with edits applied, and walks the
// wizard forward to step.
func newSession(t *testing.T, taskType kernel.TaskType, step wizard.Step, edits ...draft.Edit) session.Session {
	t.Helper()

	d, err := draft.NewDraft(kernel.NewUUID(), taskType)
	require.NoError(t, err)
	d, err = draft.Apply(d, edits...)
	require.NoError(t, err)

	w := wizard.New(taskType)
	for w.Step() < step {
		w, err = w.Advance(d)
		require.NoError(t, err)
	}

	s, err := session.New(d, w, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	return s
}

func completeSendEdits() []draft.Edit {
	return []draft.Edit{
		draft.SetPickup("A", ""),
		draft.SetDropoff("B", draft.Contact{Name: "Ben", Phone: "0918"}),
		draft.UpdateItem(draft.ItemPatch{ProductName: ptr("Phone"), Description: ptr("Gift")}),
	}
}
