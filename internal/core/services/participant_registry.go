package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/setu-events/ticket-service/internal/core/domain"
	"github.com/setu-events/ticket-service/internal/core/ports"
	"github.com/setu-events/ticket-service/internal/platform/telemetry"
)

// ParticipantRegistry serves the participants of an event from a cache keyed
// by event id. Check-ins invalidate the entry; Refresh forces a reload.
type ParticipantRegistry struct {
	participantRepo ports.ParticipantRepository
	eventRepo       ports.EventRepository
	cache           ports.StatsCache
	logger          *zap.Logger
}

func NewParticipantRegistry(participantRepo ports.ParticipantRepository, eventRepo ports.EventRepository, cache ports.StatsCache, logger *zap.Logger) *ParticipantRegistry {
	return &ParticipantRegistry{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		cache:           cache,
		logger:          logger,
	}
}

func (r *ParticipantRegistry) ListParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, error) {
	cached, ok, err := r.cache.GetParticipants(ctx, eventID)
	if err != nil {
		r.logger.Warn("participant cache read failed", zap.String("event_id", eventID.String()), zap.Error(err))
	} else {
		telemetry.TrackCacheLookup("participants", ok)
		if ok {
			return cached, nil
		}
	}

	return r.load(ctx, eventID)
}

func (r *ParticipantRegistry) Refresh(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, error) {
	if err := r.cache.Invalidate(ctx, eventID); err != nil {
		return nil, fmt.Errorf("failed to invalidate participant cache: %w", err)
	}

	return r.load(ctx, eventID)
}

func (r *ParticipantRegistry) load(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, error) {
	if _, err := r.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("event %s: %w", eventID, err)
	}

	participants, err := r.participantRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	if err := r.cache.SetParticipants(ctx, eventID, participants); err != nil {
		r.logger.Warn("participant cache write failed", zap.String("event_id", eventID.String()), zap.Error(err))
	}

	return participants, nil
}
