package mq_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setu-events/ticket-service/internal/adapter/mq"
	"github.com/setu-events/ticket-service/internal/core/domain"
)

func TestNewTicketEvent(t *testing.T) {
	ticket := &domain.Ticket{
		ID:            uuid.New(),
		TicketNumber:  "TKT-202610-Q7W8E9",
		EventID:       uuid.New(),
		ParticipantID: uuid.New(),
		Status:        domain.TicketUsed,
	}
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	ev := mq.NewTicketEvent(ticket, at)

	b, err := json.Marshal(ev)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, ticket.ID.String(), body["ticket_id"])
	assert.Equal(t, "TKT-202610-Q7W8E9", body["ticket_number"])
	assert.Equal(t, "used", body["status"])
	assert.EqualValues(t, at.UnixMilli(), body["occurred_at"])
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, mq.NoopPublisher{}.PublishTicketEvent(context.Background(), "ticket.issued", &domain.Ticket{}))
}
