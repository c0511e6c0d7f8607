package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/setu-events/ticket-service/internal/core/domain"
)

type ParticipantRepository struct {
	db *sql.DB
}

func NewParticipantRepository(db *sql.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) GetByID(ctx context.Context, participantID uuid.UUID) (*domain.Participant, error) {
	query := `
	SELECT id, event_id, name, email, ticket_id, checked_in, checked_in_at
	FROM participants
	WHERE id = $1
	`

	return scanParticipant(r.db.QueryRowContext(ctx, query, participantID))
}

func (r *ParticipantRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, error) {
	query := `
	SELECT id, event_id, name, email, ticket_id, checked_in, checked_in_at
	FROM participants
	WHERE event_id = $1
	ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}

		participants = append(participants, *p)
	}

	return participants, rows.Err()
}

// SetCheckedIn keeps the first check-in time when called more than once.
func (r *ParticipantRepository) SetCheckedIn(ctx context.Context, participantID uuid.UUID, at time.Time) error {
	query := `
	UPDATE participants
	SET checked_in = TRUE,
		checked_in_at = COALESCE(checked_in_at, $2)
	WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, participantID, at)
	if err != nil {
		return err
	}

	return expectFound(result)
}

func (r *ParticipantRepository) AttachTicket(ctx context.Context, participantID uuid.UUID, ticketID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE participants SET ticket_id = $2 WHERE id = $1`, participantID, ticketID)
	if err != nil {
		return err
	}

	return expectFound(result)
}

func scanParticipant(row rowScanner) (*domain.Participant, error) {
	var p domain.Participant
	var ticketID uuid.NullUUID
	var checkedInAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.EventID,
		&p.Name,
		&p.Email,
		&ticketID,
		&p.CheckedIn,
		&checkedInAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	if ticketID.Valid {
		p.TicketID = &ticketID.UUID
	}

	if checkedInAt.Valid {
		p.CheckedInAt = &checkedInAt.Time
	}

	return &p, nil
}

func expectFound(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
