package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/setu-events/ticket-service/internal/core/domain"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error)
	GetByNumber(ctx context.Context, ticketNumber string) (*domain.Ticket, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Ticket, error)
	MarkUsed(ctx context.Context, ticketID uuid.UUID, checkIn domain.CheckIn) error
	MarkStatus(ctx context.Context, ticketID uuid.UUID, status domain.TicketStatus) error
	CountByStatus(ctx context.Context, eventID uuid.UUID) (map[domain.TicketStatus]int, error)
	CheckInTimesSince(ctx context.Context, eventID uuid.UUID, since time.Time) ([]time.Time, error)
	ListUnsyncedCheckIns(ctx context.Context, limit int) ([]domain.Ticket, error)
}

type ParticipantRepository interface {
	GetByID(ctx context.Context, participantID uuid.UUID) (*domain.Participant, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, error)
	SetCheckedIn(ctx context.Context, participantID uuid.UUID, at time.Time) error
	AttachTicket(ctx context.Context, participantID uuid.UUID, ticketID uuid.UUID) error
}

type EventRepository interface {
	GetByID(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
}
