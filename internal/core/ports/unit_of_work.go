package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per submission.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction a submitted task is stored in. A unit is used once:
// Begin, then repository calls, then Commit. Rollback after Commit is a no-op failure
// that deferred cleanup may ignore.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit makes the stored tasks visible. Fails without an active transaction.
	Commit(ctx context.Context) error

	// Rollback discards everything done since Begin. Fails without an active transaction.
	Rollback(ctx context.Context) error

	// TaskRepository is bound to the transaction opened by Begin.
	TaskRepository() TaskRepository
}
