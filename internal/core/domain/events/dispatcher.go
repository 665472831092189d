package events

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var ErrEventIsRequired = errors.New("event is required")

// Dispatcher maps event names to ordered handler sequences.
// It is safe for concurrent use; Notify iterates over a snapshot taken when it starts,
// so handlers may register or unregister others without affecting the running delivery.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
	}
}

// Register appends handler to the sequence for eventName.
// The same handler may be registered more than once and then runs once per registration.
func (d *Dispatcher) Register(eventName string, handler Handler) {
	if handler == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Unregister removes the first registration of handler for eventName.
// Unknown names and handlers are ignored.
func (d *Dispatcher) Unregister(eventName string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	registered, ok := d.handlers[eventName]
	if !ok {
		return
	}

	for i, h := range registered {
		if !sameHandler(h, handler) {
			continue
		}

		remaining := make([]Handler, 0, len(registered)-1)
		remaining = append(remaining, registered[:i]...)
		remaining = append(remaining, registered[i+1:]...)
		if len(remaining) == 0 {
			delete(d.handlers, eventName)
		} else {
			d.handlers[eventName] = remaining
		}
		return
	}
}

// UnregisterAll empties the registry.
func (d *Dispatcher) UnregisterAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers = make(map[string][]Handler)
}

// Handlers returns a copy of the handlers registered for eventName,
// or nil when there are none.
func (d *Dispatcher) Handlers(eventName string) []Handler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	registered, ok := d.handlers[eventName]
	if !ok {
		return nil
	}

	out := make([]Handler, len(registered))
	copy(out, registered)
	return out
}

// Notify runs every handler registered for the event's name in registration order.
// The first handler error stops delivery and is returned; later handlers do not run.
// An event without handlers is not an error.
func (d *Dispatcher) Notify(ctx context.Context, event Event) error {
	if event == nil {
		return ErrEventIsRequired
	}

	for _, h := range d.Handlers(event.EventName()) {
		if err := h.Handle(ctx, event); err != nil {
			return fmt.Errorf("handler failed for event %s: %w", event.EventName(), err)
		}
	}

	return nil
}

// NotifyAll runs every handler registered for the event's name even when some fail,
// and returns all failures joined together.
func (d *Dispatcher) NotifyAll(ctx context.Context, event Event) error {
	if event == nil {
		return ErrEventIsRequired
	}

	var failures []error
	for _, h := range d.Handlers(event.EventName()) {
		if err := h.Handle(ctx, event); err != nil {
			failures = append(failures, fmt.Errorf("handler failed for event %s: %w", event.EventName(), err))
		}
	}

	return errors.Join(failures...)
}

// sameHandler compares handlers by identity. Handlers whose dynamic values
// cannot be compared, such as funcs or structs holding slices behind an
// interface field, never match.
func sameHandler(a, b Handler) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
