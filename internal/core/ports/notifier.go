package ports

import "context"

// Channel names the medium a Notification is delivered through.
type Channel string

const (
	ChannelLog   Channel = "log"
	ChannelEmail Channel = "email"
)

// Notification is a message produced by an event handler.
type Notification struct {
	Channel   Channel
	Recipient string
	Subject   string
	Body      string
}

// Notifier delivers notifications. What delivery means is up to the adapter.
type Notifier interface {
	Send(ctx context.Context, notification Notification) error
}
