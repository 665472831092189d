package events

// AggregateRoot is an aggregate that records domain events while it changes.
// The unit of work reads them after a successful commit and clears them.
type AggregateRoot interface {
	DomainEvents() []Event
	ClearDomainEvents()
}

// EventRecorder is embedded by aggregates to implement AggregateRoot.
// Its zero value records nothing yet.
type EventRecorder struct {
	events []Event
}

// RaiseDomainEvent appends event to the pending events.
func (r *EventRecorder) RaiseDomainEvent(event Event) {
	r.events = append(r.events, event)
}

// DomainEvents returns a copy of the pending events in the order they were raised.
func (r *EventRecorder) DomainEvents() []Event {
	if len(r.events) == 0 {
		return nil
	}
	return append([]Event(nil), r.events...)
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
