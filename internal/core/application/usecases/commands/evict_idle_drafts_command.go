package commands

import (
	"errors"
	"fmt"
	"time"

	"taskwizard/internal/pkg/errs"
	"taskwizard/internal/pkg/guard"
)

var ErrEvictIdleDraftsCommandIsNotConstructed = errors.New(
	"EvictIdleDraftsCommand must be created via NewEvictIdleDraftsCommand constructor",
)

// EvictIdleDraftsCommand discards sessions the user walked away from. A session idle for
// longer than idleFor is treated as abandoned navigation.
//
// Example:
//
//	cmd, _ := NewEvictIdleDraftsCommand(30 * time.Minute)
//	removed, err := handler.Handle(ctx, cmd)
type EvictIdleDraftsCommand struct {
	idleFor time.Duration

	guard guard.ConstructorGuard
}

func NewEvictIdleDraftsCommand(idleFor time.Duration) (EvictIdleDraftsCommand, error) {
	if idleFor <= 0 {
		return EvictIdleDraftsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"idle for", fmt.Errorf("%s is not greater than 0", idleFor),
		)
	}

	return EvictIdleDraftsCommand{
		idleFor: idleFor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EvictIdleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrEvictIdleDraftsCommandIsNotConstructed)
}

func (c EvictIdleDraftsCommand) IdleFor() time.Duration {
	return c.idleFor
}
