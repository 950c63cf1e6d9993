// Package ports defines the contracts between the wizard core and its infrastructure:
// task persistence, the live draft session store and the media picker.
package ports

import (
	"context"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/task"
	"taskwizard/internal/pkg/errs"
)

// ErrTaskAlreadyExists is returned by TaskRepository.Add when a task with the same id
// has already been stored.
var ErrTaskAlreadyExists = errs.NewConflictError("task already exists")

// TaskRepository is the order-creation collaborator: it stores submitted tasks.
type TaskRepository interface {
	// Add persists a new task together with its stops.
	// Returns ErrTaskAlreadyExists when the id is taken.
	Add(ctx context.Context, aggregate *task.Task) error

	// Get retrieves a task with its stops.
	// Returns errs.ObjectNotFoundError when no task has the id.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)
}
