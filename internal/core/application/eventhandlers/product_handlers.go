package eventhandlers

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/events"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
)

// SendEmailWhenProductIsCreatedHandler emails the catalogue team about a new product.
type SendEmailWhenProductIsCreatedHandler struct {
	notifier  ports.Notifier
	recipient string
}

func NewSendEmailWhenProductIsCreatedHandler(
	notifier ports.Notifier,
	recipient string,
) *SendEmailWhenProductIsCreatedHandler {
	return &SendEmailWhenProductIsCreatedHandler{notifier: notifier, recipient: recipient}
}

func (h *SendEmailWhenProductIsCreatedHandler) Handle(ctx context.Context, event events.Event) error {
	var snapshot product.Snapshot
	switch e := event.(type) {
	case product.ProductCreatedEvent:
		snapshot = e.Product
	case *product.ProductCreatedEvent:
		if e == nil {
			return unexpected("SendEmailWhenProductIsCreatedHandler", nil)
		}
		snapshot = e.Product
	default:
		return unexpected("SendEmailWhenProductIsCreatedHandler", event)
	}

	return h.notifier.Send(ctx, ports.Notification{
		Channel:   ports.ChannelEmail,
		Recipient: h.recipient,
		Subject:   "New product " + snapshot.Name,
		Body:      fmt.Sprintf("Product %s - %s was created with price %s", snapshot.ID, snapshot.Name, snapshot.Price.StringFixed(2)),
	})
}
