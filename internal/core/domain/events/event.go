package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable record of something that happened in the domain.
// EventName is the dispatch key.
type Event interface {
	EventID() string
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the envelope fields shared by every concrete event.
type BaseEvent struct {
	id         string
	name       string
	occurredAt time.Time
}

// NewBaseEvent stamps a new envelope with a fresh id and the current UTC time.
func NewBaseEvent(name string) BaseEvent {
	return BaseEvent{
		id:         uuid.NewString(),
		name:       name,
		occurredAt: time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() string {
	return e.id
}

func (e BaseEvent) EventName() string {
	return e.name
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}
