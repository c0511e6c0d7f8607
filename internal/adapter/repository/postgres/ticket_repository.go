package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/setu-events/ticket-service/internal/core/domain"
)

const uniqueViolation = "23505"

const ticketColumns = `
	t.id, t.ticket_number, t.verification_token, t.participant_id, t.event_id,
	t.ticket_type, t.price, t.status, t.check_in_time, t.check_in_by,
	t.check_in_latitude, t.check_in_longitude, t.created_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	query := `
	INSERT INTO tickets (id, ticket_number, verification_token, participant_id, event_id, ticket_type, price, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		ticket.ID,
		ticket.TicketNumber,
		ticket.VerificationToken,
		ticket.ParticipantID,
		ticket.EventID,
		ticket.TicketType,
		ticket.Price,
		ticket.Status,
		ticket.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == "tickets_ticket_number_key" {
			return domain.ErrDuplicateTicketNumber
		}
		return fmt.Errorf("failed to insert ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets t WHERE t.id = $1`

	return scanTicket(r.db.QueryRowContext(ctx, query, ticketID))
}

func (r *TicketRepository) GetByNumber(ctx context.Context, ticketNumber string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets t WHERE t.ticket_number = $1`

	return scanTicket(r.db.QueryRowContext(ctx, query, ticketNumber))
}

func (r *TicketRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets t WHERE t.event_id = $1 ORDER BY t.created_at`

	return r.queryTickets(ctx, query, eventID)
}

// MarkUsed records a check-in only if the ticket is still valid.
func (r *TicketRepository) MarkUsed(ctx context.Context, ticketID uuid.UUID, checkIn domain.CheckIn) error {
	query := `
	UPDATE tickets
	SET status = $1,
		check_in_time = $2,
		check_in_by = $3,
		check_in_latitude = $4,
		check_in_longitude = $5
	WHERE id = $6 AND status = 'valid'
	`

	var lat, lng sql.NullFloat64
	if checkIn.Location != nil {
		lat = sql.NullFloat64{Float64: checkIn.Location.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: checkIn.Location.Longitude, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query, domain.TicketUsed, checkIn.Time, checkIn.By, lat, lng, ticketID)
	if err != nil {
		return err
	}

	return expectOneRow(result)
}

// MarkStatus moves a valid ticket to a terminal status without check-in data.
func (r *TicketRepository) MarkStatus(ctx context.Context, ticketID uuid.UUID, status domain.TicketStatus) error {
	if status == domain.TicketUsed || status == domain.TicketValid {
		return fmt.Errorf("status %s cannot be set without a check-in", status)
	}

	query := `
	UPDATE tickets
	SET status = $1
	WHERE id = $2 AND status = 'valid'
	`

	result, err := r.db.ExecContext(ctx, query, status, ticketID)
	if err != nil {
		return err
	}

	return expectOneRow(result)
}

func (r *TicketRepository) CountByStatus(ctx context.Context, eventID uuid.UUID) (map[domain.TicketStatus]int, error) {
	query := `
	SELECT status, COUNT(*)
	FROM tickets
	WHERE event_id = $1
	GROUP BY status
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	counts := make(map[domain.TicketStatus]int)
	for rows.Next() {
		var status domain.TicketStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}

		counts[status] = n
	}

	return counts, rows.Err()
}

func (r *TicketRepository) CheckInTimesSince(ctx context.Context, eventID uuid.UUID, since time.Time) ([]time.Time, error) {
	query := `
	SELECT check_in_time
	FROM tickets
	WHERE event_id = $1 AND status = 'used' AND check_in_time >= $2
	`

	rows, err := r.db.QueryContext(ctx, query, eventID, since)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}

		times = append(times, t)
	}

	return times, rows.Err()
}

// ListUnsyncedCheckIns returns used tickets whose participant is not yet
// flagged as checked in.
func (r *TicketRepository) ListUnsyncedCheckIns(ctx context.Context, limit int) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
	FROM tickets t
	JOIN participants p ON p.id = t.participant_id
	WHERE t.status = 'used' AND p.checked_in = FALSE
	ORDER BY t.check_in_time
	LIMIT $1
	`

	return r.queryTickets(ctx, query, limit)
}

func (r *TicketRepository) queryTickets(ctx context.Context, query string, args ...any) ([]domain.Ticket, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}

		tickets = append(tickets, *ticket)
	}

	return tickets, rows.Err()
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	var ticket domain.Ticket
	var checkInTime sql.NullTime
	var checkInBy uuid.NullUUID
	var lat, lng sql.NullFloat64

	err := row.Scan(
		&ticket.ID,
		&ticket.TicketNumber,
		&ticket.VerificationToken,
		&ticket.ParticipantID,
		&ticket.EventID,
		&ticket.TicketType,
		&ticket.Price,
		&ticket.Status,
		&checkInTime,
		&checkInBy,
		&lat,
		&lng,
		&ticket.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	if checkInTime.Valid {
		ticket.CheckInTime = &checkInTime.Time
	}

	if checkInBy.Valid {
		ticket.CheckInBy = &checkInBy.UUID
	}

	if lat.Valid && lng.Valid {
		ticket.CheckInLocation = &domain.GeoPoint{Latitude: lat.Float64, Longitude: lng.Float64}
	}

	return &ticket, nil
}

func expectOneRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrStatusConflict
	}

	return nil
}
