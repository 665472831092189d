package eventhandlers

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/events"
)

var ErrUnexpectedEvent = errors.New("unexpected event")

func unexpected(handler string, event events.Event) error {
	return fmt.Errorf("%s: %w: %T", handler, ErrUnexpectedEvent, event)
}
