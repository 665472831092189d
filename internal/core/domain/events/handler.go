package events

import "context"

// Handler reacts to a dispatched event.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a function to Handler.
//
// Function values are not comparable, so a HandlerFunc can be registered but
// never unregistered individually; use UnregisterAll or a named type instead.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}
