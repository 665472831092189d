package ports

import (
	"context"
	"errors"

	"ordering/internal/core/domain/events"
)

// ErrNotificationFailed marks an error raised by an event handler after a unit
// of work committed. The state change itself succeeded.
var ErrNotificationFailed = errors.New("event notification failed")

// EventPublisher delivers domain events to their handlers.
// *events.Dispatcher implements it.
type EventPublisher interface {
	Notify(ctx context.Context, event events.Event) error
}
