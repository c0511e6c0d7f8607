package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/setu-events/ticket-service/internal/core/domain"
)

// TicketEvent is the body published for every lifecycle transition.
type TicketEvent struct {
	TicketID      string `json:"ticket_id"`
	TicketNumber  string `json:"ticket_number"`
	EventID       string `json:"event_id"`
	ParticipantID string `json:"participant_id"`
	Status        string `json:"status"`
	OccurredAt    int64  `json:"occurred_at"` // unix millis
}

func NewTicketEvent(t *domain.Ticket, at time.Time) TicketEvent {
	return TicketEvent{
		TicketID:      t.ID.String(),
		TicketNumber:  t.TicketNumber,
		EventID:       t.EventID.String(),
		ParticipantID: t.ParticipantID.String(),
		Status:        string(t.Status),
		OccurredAt:    at.UnixMilli(),
	}
}

type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) PublishTicketEvent(ctx context.Context, routingKey string, t *domain.Ticket) error {
	b, err := json.Marshal(NewTicketEvent(t, time.Now()))
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         b,
	})
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher drops events; used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishTicketEvent(context.Context, string, *domain.Ticket) error {
	return nil
}
