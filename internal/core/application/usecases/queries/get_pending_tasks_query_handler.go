package queries

import (
	"context"

	"taskwizard/internal/core/domain/model/task"

	"gorm.io/gorm"
)

type GetPendingTasksQueryHandler struct {
	db *gorm.DB
}

func NewGetPendingTasksQueryHandler(db *gorm.DB) GetPendingTasksQueryHandler {
	return GetPendingTasksQueryHandler{db: db}
}

// Handle returns pending tasks ordered by submission time, then id.
func (h GetPendingTasksQueryHandler) Handle(
	ctx context.Context,
	query GetPendingTasksQuery,
) ([]TaskSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]TaskSummary, 0)

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
		WHERE t.status = ?
		ORDER BY t.created_at, t.id
	`, int(task.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		summary, scanErr := scanTaskSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tasks = append(tasks, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
