package eventhandlers

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/events"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/logger"
)

// LogWhenCustomerIsCreatedHandler writes one structured log line per created customer.
type LogWhenCustomerIsCreatedHandler struct {
	logger *logger.Logger
}

func NewLogWhenCustomerIsCreatedHandler(log *logger.Logger) *LogWhenCustomerIsCreatedHandler {
	return &LogWhenCustomerIsCreatedHandler{logger: log.With("handler", "log_when_customer_is_created")}
}

func (h *LogWhenCustomerIsCreatedHandler) Handle(_ context.Context, event events.Event) error {
	snapshot, ok := customerSnapshot(event, customer.CustomerCreatedEventName)
	if !ok {
		return unexpected("LogWhenCustomerIsCreatedHandler", event)
	}

	h.logger.Info("customer created",
		"eventId", event.EventID(),
		"customerId", snapshot.ID,
		"name", snapshot.Name,
		"occurredAt", event.OccurredAt(),
	)
	return nil
}

// NotifyWhenCustomerIsCreatedHandler sends a welcome notification to the new customer.
type NotifyWhenCustomerIsCreatedHandler struct {
	notifier ports.Notifier
}

func NewNotifyWhenCustomerIsCreatedHandler(notifier ports.Notifier) *NotifyWhenCustomerIsCreatedHandler {
	return &NotifyWhenCustomerIsCreatedHandler{notifier: notifier}
}

func (h *NotifyWhenCustomerIsCreatedHandler) Handle(ctx context.Context, event events.Event) error {
	snapshot, ok := customerSnapshot(event, customer.CustomerCreatedEventName)
	if !ok {
		return unexpected("NotifyWhenCustomerIsCreatedHandler", event)
	}

	return h.notifier.Send(ctx, ports.Notification{
		Channel:   ports.ChannelLog,
		Recipient: snapshot.ID,
		Subject:   "Welcome",
		Body:      fmt.Sprintf("Customer %s - %s was created", snapshot.ID, snapshot.Name),
	})
}

// NotifyWhenCustomerAddressChangedHandler announces the new address of a customer.
type NotifyWhenCustomerAddressChangedHandler struct {
	notifier ports.Notifier
}

func NewNotifyWhenCustomerAddressChangedHandler(notifier ports.Notifier) *NotifyWhenCustomerAddressChangedHandler {
	return &NotifyWhenCustomerAddressChangedHandler{notifier: notifier}
}

func (h *NotifyWhenCustomerAddressChangedHandler) Handle(ctx context.Context, event events.Event) error {
	snapshot, ok := customerSnapshot(event, customer.CustomerAddressChangedEventName)
	if !ok {
		return unexpected("NotifyWhenCustomerAddressChangedHandler", event)
	}

	return h.notifier.Send(ctx, ports.Notification{
		Channel:   ports.ChannelLog,
		Recipient: snapshot.ID,
		Subject:   "Address changed",
		Body:      AddressChangedMessage(snapshot),
	})
}

// AddressChangedMessage renders the notification body for an address change.
func AddressChangedMessage(snapshot customer.Snapshot) string {
	address := ""
	if snapshot.Address != nil {
		address = snapshot.Address.String()
	}
	return fmt.Sprintf("Changing address of customer %s - %s to: %s", snapshot.ID, snapshot.Name, address)
}

func customerSnapshot(event events.Event, name string) (customer.Snapshot, bool) {
	switch e := event.(type) {
	case customer.CustomerCreatedEvent:
		return e.Customer, e.EventName() == name
	case *customer.CustomerCreatedEvent:
		if e == nil {
			return customer.Snapshot{}, false
		}
		return e.Customer, e.EventName() == name
	case customer.CustomerAddressChangedEvent:
		return e.Customer, e.EventName() == name
	case *customer.CustomerAddressChangedEvent:
		if e == nil {
			return customer.Snapshot{}, false
		}
		return e.Customer, e.EventName() == name
	default:
		return customer.Snapshot{}, false
	}
}
