package email

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/unifiedacademics/uap-backend/internal/pkg/mailqueue"
	"github.com/unifiedacademics/uap-backend/internal/pkg/metrics"
)

const messageType = "email"

// Notifier hands a message off for best-effort delivery. Failures never
// propagate to the caller; record creation must not depend on mail.
type Notifier interface {
	Notify(msg Message)
}

// Outbox implements Notifier by placing messages on the mail queue.
type Outbox struct {
	queue  mailqueue.Queue
	logger zerolog.Logger
}

// NewOutbox creates a queue-backed notifier
func NewOutbox(queue mailqueue.Queue, logger zerolog.Logger) *Outbox {
	return &Outbox{queue: queue, logger: logger}
}

// Notify enqueues the message. Enqueue failures are logged and swallowed.
func (o *Outbox) Notify(msg Message) {
	body, err := json.Marshal(msg)
	if err != nil {
		o.logger.Error().Err(err).Str("to", msg.To).Msg("Failed to encode outbound email")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := o.queue.Publish(ctx, mailqueue.Message{Type: messageType, Body: body}); err != nil {
		o.logger.Error().Err(err).Str("to", msg.To).Msg("Failed to enqueue outbound email")
		metrics.MailFailedTotal.Inc()
		return
	}
	metrics.MailEnqueuedTotal.Inc()
}

// Mailer drains the outbox queue and delivers messages through a Sender.
// Send errors are logged only; the originating records are already durable.
type Mailer struct {
	queue  mailqueue.Queue
	sender Sender
	logger zerolog.Logger
}

// NewMailer creates the outbox worker
func NewMailer(queue mailqueue.Queue, sender Sender, logger zerolog.Logger) *Mailer {
	return &Mailer{queue: queue, sender: sender, logger: logger}
}

// Run consumes until the context is cancelled.
func (m *Mailer) Run(ctx context.Context) error {
	messages, err := m.queue.Consume(ctx)
	if err != nil {
		return err
	}

	for raw := range messages {
		if raw.Type != messageType {
			continue
		}

		var msg Message
		if err := json.Unmarshal(raw.Body, &msg); err != nil {
			m.logger.Error().Err(err).Msg("Dropping undecodable outbox message")
			continue
		}

		if err := m.sender.Send(msg); err != nil {
			m.logger.Error().Err(err).Str("to", msg.To).Str("subject", msg.Subject).Msg("Email delivery failed")
			metrics.MailFailedTotal.Inc()
		}
	}

	return nil
}
