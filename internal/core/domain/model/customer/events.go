package customer

import (
	"ordering/internal/core/domain/events"
)

const (
	CustomerCreatedEventName        = "CustomerCreatedEvent"
	CustomerAddressChangedEventName = "CustomerAddressChangedEvent"
)

// CustomerCreatedEvent is raised once a new customer has been stored.
type CustomerCreatedEvent struct {
	events.BaseEvent
	Customer Snapshot
}

func NewCustomerCreatedEvent(c *Customer) CustomerCreatedEvent {
	return CustomerCreatedEvent{
		BaseEvent: events.NewBaseEvent(CustomerCreatedEventName),
		Customer:  c.Snapshot(),
	}
}

// CustomerAddressChangedEvent is raised after a customer's address was replaced.
type CustomerAddressChangedEvent struct {
	events.BaseEvent
	Customer Snapshot
}

func NewCustomerAddressChangedEvent(c *Customer) CustomerAddressChangedEvent {
	return CustomerAddressChangedEvent{
		BaseEvent: events.NewBaseEvent(CustomerAddressChangedEventName),
		Customer:  c.Snapshot(),
	}
}
