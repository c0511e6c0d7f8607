package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/setu-events/ticket-service/internal/platform/telemetry"
)

const reconcileBatchSize = 100

// RunCheckInReconciler periodically sets the participant check-in flag for
// used tickets whose participant write was lost. It never touches ticket
// status.
func (s *TicketService) RunCheckInReconciler(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("check-in reconciler started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("check-in reconciler stopped")
			return
		case <-ticker.C:
			s.ReconcileCheckIns(ctx)
		}
	}
}

// ReconcileCheckIns runs one reconciliation pass and returns the number of
// participants repaired.
func (s *TicketService) ReconcileCheckIns(ctx context.Context) int {
	tickets, err := s.ticketRepo.ListUnsyncedCheckIns(ctx, reconcileBatchSize)
	if err != nil {
		s.logger.Error("failed to fetch unsynced check-ins", zap.Error(err))
		return 0
	}

	if len(tickets) == 0 {
		return 0
	}

	s.logger.Info("repairing participant check-in flags", zap.Int("count", len(tickets)))

	repaired := 0
	for _, t := range tickets {
		if t.CheckInTime == nil {
			continue
		}

		if err := s.participantRepo.SetCheckedIn(ctx, t.ParticipantID, *t.CheckInTime); err != nil {
			s.logger.Warn("failed to repair participant check-in",
				zap.String("participant_id", t.ParticipantID.String()),
				zap.Error(err),
			)
			continue
		}

		if err := s.cache.Invalidate(ctx, t.EventID); err != nil {
			s.logger.Warn("cache invalidation failed", zap.String("event_id", t.EventID.String()), zap.Error(err))
		}

		repaired++
	}

	telemetry.TrackReconciled(repaired)

	return repaired
}
