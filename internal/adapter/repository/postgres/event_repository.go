package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/setu-events/ticket-service/internal/core/domain"
)

// EventRepository only reads; events are owned by the organizer service.
type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetByID(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	var event domain.Event

	err := r.db.QueryRowContext(ctx, `SELECT id, name, date FROM events WHERE id = $1`, eventID).Scan(
		&event.ID,
		&event.Name,
		&event.Date,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	return &event, nil
}
