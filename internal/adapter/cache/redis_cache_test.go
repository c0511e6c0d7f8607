package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setu-events/ticket-service/internal/adapter/cache"
	"github.com/setu-events/ticket-service/internal/core/domain"
)

func TestRedisCache_GetStats_Miss(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisCache(db, time.Minute, time.Minute)

	eventID := uuid.New()
	mockRedis.ExpectGet(cache.StatsKey(eventID)).RedisNil()

	stats, ok, err := c.GetStats(context.Background(), eventID)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, stats)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisCache_GetStats_Hit(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisCache(db, time.Minute, time.Minute)

	eventID := uuid.New()
	want := domain.NewCheckInStats(eventID, map[domain.TicketStatus]int{
		domain.TicketUsed:  3,
		domain.TicketValid: 1,
	})
	want.HourlyCheckIns[14] = 3

	b, err := json.Marshal(want)
	require.NoError(t, err)
	mockRedis.ExpectGet(cache.StatsKey(eventID)).SetVal(string(b))

	got, ok, err := c.GetStats(context.Background(), eventID)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisCache_GetStats_Error(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisCache(db, time.Minute, time.Minute)

	eventID := uuid.New()
	mockRedis.ExpectGet(cache.StatsKey(eventID)).SetErr(errors.New("connection refused"))

	_, ok, err := c.GetStats(context.Background(), eventID)

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisCache_SetStats(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisCache(db, 30*time.Second, time.Minute)

	stats := domain.NewCheckInStats(uuid.New(), nil)
	b, err := json.Marshal(stats)
	require.NoError(t, err)

	mockRedis.ExpectSet(cache.StatsKey(stats.EventID), b, 30*time.Second).SetVal("OK")

	assert.NoError(t, c.SetStats(context.Background(), stats))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisCache_Participants(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisCache(db, time.Minute, 5*time.Minute)

	eventID := uuid.New()
	participants := []domain.Participant{{ID: uuid.New(), EventID: eventID, Name: "Asha", Email: "asha@example.com"}}
	b, err := json.Marshal(participants)
	require.NoError(t, err)

	mockRedis.ExpectSet(cache.ParticipantsKey(eventID), b, 5*time.Minute).SetVal("OK")
	mockRedis.ExpectGet(cache.ParticipantsKey(eventID)).SetVal(string(b))

	require.NoError(t, c.SetParticipants(context.Background(), eventID, participants))

	got, ok, err := c.GetParticipants(context.Background(), eventID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, participants, got)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisCache_Invalidate(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisCache(db, time.Minute, time.Minute)

	eventID := uuid.New()
	mockRedis.ExpectDel(cache.StatsKey(eventID), cache.ParticipantsKey(eventID)).SetVal(2)

	assert.NoError(t, c.Invalidate(context.Background(), eventID))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
