// Package notifier delivers ports.Notification values.
// LogNotifier is the only transport: every channel ends up as a structured log entry.
package notifier

import (
	"context"
	"errors"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/logger"
)

var ErrRecipientIsRequired = errors.New("notification recipient is required")

type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &LogNotifier{logger: log.With("component", "notifier")}
}

// Send logs the notification. It fails only for email notifications without a
// recipient and for cancelled contexts.
func (n *LogNotifier) Send(ctx context.Context, notification ports.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if notification.Channel == ports.ChannelEmail && notification.Recipient == "" {
		return ErrRecipientIsRequired
	}

	n.logger.Info(notification.Body,
		"channel", string(notification.Channel),
		"recipient", notification.Recipient,
		"subject", notification.Subject,
	)
	return nil
}
