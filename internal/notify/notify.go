// Package notify publishes email notification commands. Actual mail delivery
// is done by a separate worker consuming the emails queue.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Publisher --filename publisher.go

// Publisher is RabbitMQ messages publisher.
type Publisher interface {
	Publish(context.Context, string, []byte) error
}

// EmailCommand orders sending one email to recipients.
type EmailCommand struct {
	Title      string   `json:"title"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}

// EmailNotifier publishes email commands to a routing key.
type EmailNotifier struct {
	publisher  Publisher
	routingKey string
}

// NewEmailNotifier returns new EmailNotifier.
func NewEmailNotifier(publisher Publisher, routingKey string) EmailNotifier {
	return EmailNotifier{
		publisher:  publisher,
		routingKey: routingKey,
	}
}

// Notify sends an email with title and message to recipients.
func (n EmailNotifier) Notify(ctx context.Context, title, message string, recipients []string) error {
	cmd := EmailCommand{
		Title:      title,
		Message:    message,
		Recipients: recipients,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal email command: %w", err)
	}

	return n.publisher.Publish(ctx, n.routingKey, cmdMsg)
}
