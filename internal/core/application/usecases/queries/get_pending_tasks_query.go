package queries

import (
	"errors"

	"taskwizard/internal/pkg/guard"
)

var ErrGetPendingTasksQueryIsNotConstructed = errors.New(
	"GetPendingTasksQuery must be created via NewGetPendingTasksQuery constructor",
)

// GetPendingTasksQuery lists submitted tasks still waiting for a courier, oldest first.
//
// Example:
//
//	query := NewGetPendingTasksQuery()
//	tasks, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list pending tasks: %w", err)
//	}
//	for _, t := range tasks {
//	    fmt.Printf("%s %s %d\n", t.ID, t.TaskType, t.Price)
//	}
type GetPendingTasksQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingTasksQuery() GetPendingTasksQuery {
	return GetPendingTasksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingTasksQueryIsNotConstructed)
}
