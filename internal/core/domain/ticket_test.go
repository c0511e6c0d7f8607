package domain_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setu-events/ticket-service/internal/core/domain"
)

func TestExpiredAt(t *testing.T) {
	event := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	assert.False(t, domain.ExpiredAt(event, event.Add(-48*time.Hour)))
	assert.False(t, domain.ExpiredAt(event, event))
	assert.False(t, domain.ExpiredAt(event, event.Add(20*time.Hour)))
	assert.False(t, domain.ExpiredAt(event, event.Add(domain.CheckInGracePeriod)))
	assert.True(t, domain.ExpiredAt(event, event.Add(domain.CheckInGracePeriod+time.Millisecond)))
	assert.True(t, domain.ExpiredAt(event, event.Add(72*time.Hour)))
}

func TestTicketStatusPredicates(t *testing.T) {
	for _, status := range []domain.TicketStatus{domain.TicketUsed, domain.TicketCancelled, domain.TicketExpired} {
		ticket := &domain.Ticket{Status: status}
		assert.False(t, ticket.IsValid(), status)
		assert.True(t, ticket.IsTerminal(), status)
	}

	ticket := &domain.Ticket{Status: domain.TicketValid}
	assert.True(t, ticket.IsValid())
	assert.False(t, ticket.IsTerminal())
}

func TestNewCheckInStats(t *testing.T) {
	eventID := uuid.New()

	stats := domain.NewCheckInStats(eventID, map[domain.TicketStatus]int{
		domain.TicketUsed:      3,
		domain.TicketValid:     4,
		domain.TicketCancelled: 2,
		domain.TicketExpired:   1,
	})

	assert.Equal(t, eventID, stats.EventID)
	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 3, stats.Used)
	assert.Equal(t, 4, stats.Valid)
	assert.Equal(t, 2, stats.Cancelled)
	assert.Equal(t, 1, stats.Expired)
	assert.InDelta(t, 30.0, stats.CheckInRate, 1e-9)
}

func TestNewCheckInStats_Empty(t *testing.T) {
	stats := domain.NewCheckInStats(uuid.New(), nil)

	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.CheckInRate)
}

func TestTicketError(t *testing.T) {
	ticket := &domain.Ticket{ID: uuid.New(), Status: domain.TicketUsed}

	err := fmt.Errorf("check-in: %w", domain.NewInvalidStateError(ticket, "ticket already used"))

	assert.True(t, errors.Is(err, domain.ErrInvalidState))
	assert.False(t, errors.Is(err, domain.ErrExpired))

	te, ok := domain.AsTicketError(err)
	require.True(t, ok)
	assert.Equal(t, domain.TicketUsed, te.Status)
	assert.Same(t, ticket, te.Ticket)
	assert.Equal(t, "ticket already used", te.Error())

	expired := domain.NewExpiredError(&domain.Ticket{Status: domain.TicketExpired})
	assert.ErrorIs(t, expired, domain.ErrExpired)

	_, ok = domain.AsTicketError(domain.ErrNotFound)
	assert.False(t, ok)
}
