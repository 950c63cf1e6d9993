package queries

import (
	"context"

	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/task"
	"taskwizard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTaskQueryHandler reads task summaries straight from the tasks table.
type GetTaskQueryHandler struct {
	db *gorm.DB
}

func NewGetTaskQueryHandler(db *gorm.DB) GetTaskQueryHandler {
	return GetTaskQueryHandler{db: db}
}

// Handle returns the summary of the task, or errs.ObjectNotFoundError when no task with
// the id was submitted.
func (h GetTaskQueryHandler) Handle(ctx context.Context, query GetTaskQuery) (TaskSummary, error) {
	if err := query.Validate(); err != nil {
		return TaskSummary{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.task_type,
			t.pickup_address,
			t.dropoff_address,
			t.product_name,
			(SELECT COUNT(*) FROM task_stops s WHERE s.task_id = t.id),
			t.price,
			t.eta,
			t.status,
			t.created_at
		FROM tasks t
		WHERE t.id = ?
	`, query.TaskID().Bytes()).Rows()
	if err != nil {
		return TaskSummary{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TaskSummary{}, err
		}
		return TaskSummary{}, errs.NewObjectNotFoundError("task", query.TaskID().String())
	}

	summary, err := scanTaskSummary(rows)
	if err != nil {
		return TaskSummary{}, err
	}

	return summary, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTaskSummary reads the column list shared by the task queries.
func scanTaskSummary(row rowScanner) (TaskSummary, error) {
	var (
		summary  TaskSummary
		id       uuid.UUID
		taskType string
		status   int
	)

	err := row.Scan(
		&id,
		&taskType,
		&summary.PickupAddress,
		&summary.DropoffAddress,
		&summary.ProductName,
		&summary.StopCount,
		&summary.Price,
		&summary.ETA,
		&status,
		&summary.CreatedAt,
	)
	if err != nil {
		return TaskSummary{}, err
	}

	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return TaskSummary{}, err
	}
	if summary.TaskType, err = kernel.ParseTaskType(taskType); err != nil {
		return TaskSummary{}, err
	}
	summary.Status = task.Status(status)
	if err = summary.Status.Validate(); err != nil {
		return TaskSummary{}, err
	}
	summary.CreatedAt = summary.CreatedAt.UTC()

	return summary, nil
}
