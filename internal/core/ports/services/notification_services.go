package services

import (
	"context"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
)

// NotificationDispatcher delivers workflow events to the outside world.
// Delivery is best-effort: the engine logs and swallows dispatch errors
// because the governing transition has already committed.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, event domain.NotificationEvent) error
}
