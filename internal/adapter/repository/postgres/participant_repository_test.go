package postgres_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setu-events/ticket-service/internal/adapter/repository/postgres"
	"github.com/setu-events/ticket-service/internal/core/domain"
)

var participantRowColumns = []string{"id", "event_id", "name", "email", "ticket_id", "checked_in", "checked_in_at"}

func TestParticipantRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewParticipantRepository(db)

	id, eventID, ticketID := uuid.New(), uuid.New(), uuid.New()
	at := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM participants")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(participantRowColumns).
			AddRow(id.String(), eventID.String(), "Asha", "asha@example.com", ticketID.String(), true, at))

	got, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, eventID, got.EventID)
	assert.Equal(t, ticketID, *got.TicketID)
	assert.True(t, got.CheckedIn)
	assert.Equal(t, at, *got.CheckedInAt)
}

func TestParticipantRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewParticipantRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM participants")).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipantRepository_ListByEvent(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewParticipantRepository(db)
	eventID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE event_id = $1")).
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows(participantRowColumns).
			AddRow(uuid.NewString(), eventID.String(), "Anil", "anil@example.com", nil, false, nil).
			AddRow(uuid.NewString(), eventID.String(), "Bina", "bina@example.com", nil, false, nil))

	got, err := repo.ListByEvent(context.Background(), eventID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].TicketID)
	assert.Nil(t, got[0].CheckedInAt)
	assert.Equal(t, "Bina", got[1].Name)
}

func TestParticipantRepository_SetCheckedIn(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewParticipantRepository(db)
	id := uuid.New()
	at := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("checked_in_at = COALESCE(checked_in_at, $2)")).
		WithArgs(id, at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE participants")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.SetCheckedIn(context.Background(), id, at))
	assert.ErrorIs(t, repo.SetCheckedIn(context.Background(), uuid.New(), at), domain.ErrNotFound)
}

func TestParticipantRepository_AttachTicket(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewParticipantRepository(db)
	participantID, ticketID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("SET ticket_id = $2")).
		WithArgs(participantID, ticketID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.AttachTicket(context.Background(), participantID, ticketID))
}

func TestEventRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewEventRepository(db)
	id := uuid.New()
	date := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, date FROM events WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "date"}).AddRow(id.String(), "SETU Hackathon", date))
	mock.ExpectQuery(regexp.QuoteMeta("FROM events")).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "SETU Hackathon", got.Name)
	assert.Equal(t, date, got.Date)

	_, err = repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
