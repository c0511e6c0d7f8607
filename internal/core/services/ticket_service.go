package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/setu-events/ticket-service/internal/core/domain"
	"github.com/setu-events/ticket-service/internal/core/ports"
	"github.com/setu-events/ticket-service/internal/platform/telemetry"
)

const maxTicketNumberAttempts = 5

const (
	RoutingTicketIssued    = "ticket.issued"
	RoutingTicketCheckedIn = "ticket.checked_in"
	RoutingTicketCancelled = "ticket.cancelled"
	RoutingTicketExpired   = "ticket.expired"
)

var tracer = otel.Tracer("github.com/setu-events/ticket-service/internal/core/services")

type IssueTicketRequest struct {
	ParticipantID string          `json:"participant_id"`
	EventID       string          `json:"event_id"`
	TicketType    string          `json:"ticket_type"`
	Price         decimal.Decimal `json:"price"`
}

type TicketService struct {
	ticketRepo      ports.TicketRepository
	participantRepo ports.ParticipantRepository
	eventRepo       ports.EventRepository
	codec           ports.TokenCodec
	cache           ports.StatsCache
	publisher       ports.EventPublisher
	logger          *zap.Logger

	now      func() time.Time
	location *time.Location
}

type Option func(*TicketService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *TicketService) { s.now = now }
}

// WithLocation sets the time zone used for the hour-of-day histogram.
func WithLocation(loc *time.Location) Option {
	return func(s *TicketService) { s.location = loc }
}

func NewTicketService(
	ticketRepo ports.TicketRepository,
	participantRepo ports.ParticipantRepository,
	eventRepo ports.EventRepository,
	codec ports.TokenCodec,
	cache ports.StatsCache,
	publisher ports.EventPublisher,
	logger *zap.Logger,
	opts ...Option,
) *TicketService {
	s := &TicketService{
		ticketRepo:      ticketRepo,
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		codec:           codec,
		cache:           cache,
		publisher:       publisher,
		logger:          logger,
		now:             time.Now,
		location:        time.UTC,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *TicketService) IssueTicket(ctx context.Context, req IssueTicketRequest) (ticket *domain.Ticket, err error) {
	ctx, span := tracer.Start(ctx, "TicketService.IssueTicket")
	defer func() { s.finish(span, "issue", err) }()

	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid participant id", domain.ErrInvalidInput)
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event id", domain.ErrInvalidInput)
	}

	ticketType := strings.TrimSpace(req.TicketType)
	if ticketType == "" {
		return nil, fmt.Errorf("%w: ticket type is required", domain.ErrInvalidInput)
	}

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	participant, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("participant %s: %w", participantID, err)
	}

	if participant.EventID != eventID {
		return nil, fmt.Errorf("%w: participant is not registered for this event", domain.ErrInvalidInput)
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("event %s: %w", eventID, err)
	}

	for attempt := 1; attempt <= maxTicketNumberAttempts; attempt++ {
		ticket, err = s.newTicket(participantID, eventID, ticketType, req.Price)
		if err != nil {
			return nil, err
		}

		err = s.ticketRepo.Create(ctx, ticket)
		if err == nil {
			break
		}

		if !errors.Is(err, domain.ErrDuplicateTicketNumber) {
			return nil, fmt.Errorf("failed to create ticket: %w", err)
		}

		s.logger.Warn("ticket number collision, regenerating",
			zap.String("ticket_number", ticket.TicketNumber),
			zap.Int("attempt", attempt),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to allocate a unique ticket number after %d attempts: %w", maxTicketNumberAttempts, err)
	}

	s.afterTransition(ctx, RoutingTicketIssued, ticket)

	return ticket, nil
}

func (s *TicketService) newTicket(participantID, eventID uuid.UUID, ticketType string, price decimal.Decimal) (*domain.Ticket, error) {
	now := s.now()

	number, err := GenerateTicketNumber(now)
	if err != nil {
		return nil, err
	}

	token, err := s.codec.Encode(domain.TokenPayload{
		TicketNumber:  number,
		EventID:       eventID,
		ParticipantID: participantID,
		IssuedAt:      now.UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode verification token: %w", err)
	}

	return &domain.Ticket{
		ID:                uuid.New(),
		TicketNumber:      number,
		VerificationToken: token,
		ParticipantID:     participantID,
		EventID:           eventID,
		TicketType:        ticketType,
		Price:             price.Round(2),
		Status:            domain.TicketValid,
		CreatedAt:         now,
	}, nil
}

// ValidateAndCheckIn redeems the ticket behind token. Expiry is evaluated
// here, so a ticket past its grace window is persisted as expired on the
// first attempt that notices it.
func (s *TicketService) ValidateAndCheckIn(ctx context.Context, token string, performedBy uuid.UUID, location *domain.GeoPoint) (ticket *domain.Ticket, err error) {
	ctx, span := tracer.Start(ctx, "TicketService.ValidateAndCheckIn")
	start := time.Now()
	defer func() {
		telemetry.ObserveCheckIn(time.Since(start))
		s.finish(span, "check_in", err)
	}()

	if performedBy == uuid.Nil {
		return nil, fmt.Errorf("%w: performed_by is required", domain.ErrInvalidInput)
	}

	payload, err := s.codec.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	if !IsTicketNumber(payload.TicketNumber) {
		return nil, fmt.Errorf("%w: malformed ticket number", domain.ErrInvalidToken)
	}

	ticket, err = s.ticketRepo.GetByNumber(ctx, payload.TicketNumber)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", payload.TicketNumber, err)
	}

	if ticket.EventID != payload.EventID || ticket.ParticipantID != payload.ParticipantID {
		return nil, fmt.Errorf("%w: token does not match ticket %s", domain.ErrInvalidToken, ticket.TicketNumber)
	}

	span.SetAttributes(attribute.String("ticket.number", ticket.TicketNumber))

	if !ticket.IsValid() {
		return nil, domain.NewInvalidStateError(ticket, checkInRejection(ticket.Status))
	}

	event, err := s.eventRepo.GetByID(ctx, ticket.EventID)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", ticket.EventID, err)
	}

	now := s.now()

	if domain.ExpiredAt(event.Date, now) {
		if err := s.ticketRepo.MarkStatus(ctx, ticket.ID, domain.TicketExpired); err != nil {
			if errors.Is(err, domain.ErrStatusConflict) {
				return nil, s.conflict(ctx, ticket.ID, checkInRejection)
			}
			return nil, fmt.Errorf("failed to expire ticket: %w", err)
		}

		ticket.Status = domain.TicketExpired
		s.afterTransition(ctx, RoutingTicketExpired, ticket)

		return nil, domain.NewExpiredError(ticket)
	}

	checkIn := domain.CheckIn{Time: now, By: performedBy, Location: location}
	if err := s.ticketRepo.MarkUsed(ctx, ticket.ID, checkIn); err != nil {
		if errors.Is(err, domain.ErrStatusConflict) {
			return nil, s.conflict(ctx, ticket.ID, checkInRejection)
		}
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}

	ticket.Status = domain.TicketUsed
	ticket.CheckInTime = &now
	ticket.CheckInBy = &performedBy
	ticket.CheckInLocation = location

	// Not transactional with the ticket write; the reconciler repairs misses.
	if err := s.participantRepo.SetCheckedIn(ctx, ticket.ParticipantID, now); err != nil {
		s.logger.Warn("failed to flag participant as checked in",
			zap.String("participant_id", ticket.ParticipantID.String()),
			zap.String("ticket_number", ticket.TicketNumber),
			zap.Error(err),
		)
	}

	s.afterTransition(ctx, RoutingTicketCheckedIn, ticket)

	return ticket, nil
}

func (s *TicketService) CancelTicket(ctx context.Context, ticketID uuid.UUID) (ticket *domain.Ticket, err error) {
	ctx, span := tracer.Start(ctx, "TicketService.CancelTicket")
	defer func() { s.finish(span, "cancel", err) }()

	ticket, err = s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", ticketID, err)
	}

	switch ticket.Status {
	case domain.TicketCancelled:
		return ticket, nil
	case domain.TicketUsed, domain.TicketExpired:
		return nil, domain.NewInvalidStateError(ticket, cancelRejection(ticket.Status))
	}

	if err := s.ticketRepo.MarkStatus(ctx, ticket.ID, domain.TicketCancelled); err != nil {
		if !errors.Is(err, domain.ErrStatusConflict) {
			return nil, fmt.Errorf("failed to cancel ticket: %w", err)
		}

		current, getErr := s.ticketRepo.GetByID(ctx, ticket.ID)
		if getErr != nil {
			return nil, fmt.Errorf("ticket %s: %w", ticket.ID, getErr)
		}
		if current.Status == domain.TicketCancelled {
			return current, nil
		}
		return nil, domain.NewInvalidStateError(current, cancelRejection(current.Status))
	}

	ticket.Status = domain.TicketCancelled
	s.afterTransition(ctx, RoutingTicketCancelled, ticket)

	return ticket, nil
}

func (s *TicketService) GetTicket(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", ticketID, err)
	}
	return ticket, nil
}

func (s *TicketService) ListEventTickets(ctx context.Context, eventID uuid.UUID) ([]domain.Ticket, error) {
	tickets, err := s.ticketRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets for event %s: %w", eventID, err)
	}
	return tickets, nil
}

// ComputeCheckInStats is read-only; it never moves a ticket between states.
func (s *TicketService) ComputeCheckInStats(ctx context.Context, eventID uuid.UUID) (*domain.CheckInStats, error) {
	ctx, span := tracer.Start(ctx, "TicketService.ComputeCheckInStats")
	defer span.End()

	if cached, ok, err := s.cache.GetStats(ctx, eventID); err != nil {
		s.logger.Warn("stats cache read failed", zap.String("event_id", eventID.String()), zap.Error(err))
	} else {
		telemetry.TrackCacheLookup("stats", ok)
		if ok {
			return cached, nil
		}
	}

	counts, err := s.ticketRepo.CountByStatus(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	stats := domain.NewCheckInStats(eventID, counts)

	since := s.now().Add(-24 * time.Hour)
	times, err := s.ticketRepo.CheckInTimesSince(ctx, eventID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent check-ins: %w", err)
	}

	for _, t := range times {
		if t.Before(since) {
			continue
		}
		stats.HourlyCheckIns[t.In(s.location).Hour()]++
	}

	if err := s.cache.SetStats(ctx, stats); err != nil {
		s.logger.Warn("stats cache write failed", zap.String("event_id", eventID.String()), zap.Error(err))
	}

	return stats, nil
}

// conflict reports the state a concurrent writer left the ticket in.
func (s *TicketService) conflict(ctx context.Context, ticketID uuid.UUID, reason func(domain.TicketStatus) string) error {
	current, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("ticket %s: %w", ticketID, err)
	}
	return domain.NewInvalidStateError(current, reason(current.Status))
}

func (s *TicketService) afterTransition(ctx context.Context, routingKey string, ticket *domain.Ticket) {
	if err := s.cache.Invalidate(ctx, ticket.EventID); err != nil {
		s.logger.Warn("cache invalidation failed", zap.String("event_id", ticket.EventID.String()), zap.Error(err))
	}

	if err := s.publisher.PublishTicketEvent(ctx, routingKey, ticket); err != nil {
		s.logger.Warn("failed to publish ticket event",
			zap.String("routing_key", routingKey),
			zap.String("ticket_number", ticket.TicketNumber),
			zap.Error(err),
		)
	}

	s.logger.Info("ticket transition",
		zap.String("event", routingKey),
		zap.String("ticket_number", ticket.TicketNumber),
		zap.String("status", string(ticket.Status)),
	)
}

func (s *TicketService) finish(span trace.Span, operation string, err error) {
	result := resultLabel(err)
	telemetry.TrackOperation(operation, result)
	span.SetAttributes(attribute.String("result", result))
	if err != nil && result == "error" {
		span.RecordError(err)
	}
	span.End()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, domain.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, domain.ErrExpired):
		return "expired"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}

func checkInRejection(status domain.TicketStatus) string {
	if status == domain.TicketUsed {
		return "ticket already used"
	}
	return fmt.Sprintf("ticket is %s", status)
}

func cancelRejection(status domain.TicketStatus) string {
	if status == domain.TicketExpired {
		return "cannot cancel an expired ticket"
	}
	return fmt.Sprintf("cannot cancel a %s ticket", status)
}
