// Package events contains the domain event model and the Dispatcher that
// connects event names to handlers.
//
// A Dispatcher is an ordinary value owned by whoever constructs it; there is no
// package-level registry. Publishers call Notify with an event, and every handler
// registered for the event's name runs synchronously, in registration order, on
// the caller's goroutine:
//
//	d := events.NewDispatcher()
//	d.Register(customer.CustomerCreatedEventName, handler)
//
//	if err := d.Notify(ctx, customer.NewCustomerCreatedEvent(c)); err != nil {
//	    // the first failing handler stopped delivery
//	}
//
// Notify stops at the first handler error. NotifyAll keeps going and reports
// every failure at once.
package events
