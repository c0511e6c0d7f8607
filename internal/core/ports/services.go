package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/setu-events/ticket-service/internal/core/domain"
)

type TokenCodec interface {
	Encode(payload domain.TokenPayload) (string, error)
	Decode(token string) (domain.TokenPayload, error)
}

type StatsCache interface {
	GetStats(ctx context.Context, eventID uuid.UUID) (*domain.CheckInStats, bool, error)
	SetStats(ctx context.Context, stats *domain.CheckInStats) error
	GetParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, bool, error)
	SetParticipants(ctx context.Context, eventID uuid.UUID, participants []domain.Participant) error
	Invalidate(ctx context.Context, eventID uuid.UUID) error
}

// EventPublisher emits ticket lifecycle events to other services.
type EventPublisher interface {
	PublishTicketEvent(ctx context.Context, routingKey string, ticket *domain.Ticket) error
}
