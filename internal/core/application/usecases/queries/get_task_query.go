package queries

import (
	"errors"
	"time"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/task"
	"taskwizard/internal/pkg/guard"
)

var ErrGetTaskQueryIsNotConstructed = errors.New(
	"GetTaskQuery must be created via NewGetTaskQuery constructor",
)

// GetTaskQuery reads the summary of a submitted task, e.g. for the tracking view the
// client opens after submission.
type GetTaskQuery struct {
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTaskQuery(taskID kernel.UUID) (GetTaskQuery, error) {
	if err := taskID.Validate(); err != nil {
		return GetTaskQuery{}, err
	}
	return GetTaskQuery{
		taskID: taskID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTaskQuery) Validate() error {
	return q.guard.Validate(ErrGetTaskQueryIsNotConstructed)
}

func (q GetTaskQuery) TaskID() kernel.UUID {
	return q.taskID
}

// TaskSummary is the tracking view of a submitted task.
type TaskSummary struct {
	ID             kernel.UUID
	TaskType       kernel.TaskType
	PickupAddress  string
	DropoffAddress string
	ProductName    string
	StopCount      int
	Price          int
	ETA            string
	Status         task.Status
	CreatedAt      time.Time
}
