package commands

import (
	"context"

	"taskwizard/internal/core/ports"
)

// EvictIdleDraftsCommandHandler removes abandoned sessions. It is run periodically by
// the draft eviction job.
type EvictIdleDraftsCommandHandler struct {
	sessions ports.DraftSessionRepository
	now      Clock
}

func NewEvictIdleDraftsCommandHandler(sessions ports.DraftSessionRepository, now Clock) EvictIdleDraftsCommandHandler {
	return EvictIdleDraftsCommandHandler{
		sessions: sessions,
		now:      now,
	}
}

// Handle removes every session untouched for longer than the command's idle period and
// returns how many were removed.
func (h EvictIdleDraftsCommandHandler) Handle(ctx context.Context, cmd EvictIdleDraftsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.sessions.RemoveIdle(ctx, h.now().Add(-cmd.IdleFor()))
}
