package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/setu-events/ticket-service/internal/core/domain"
)

const (
	statsKeyPrefix        = "checkin-stats:"
	participantsKeyPrefix = "participants:"
)

type RedisCache struct {
	rdb             redis.Cmdable
	statsTTL        time.Duration
	participantsTTL time.Duration
}

func NewRedisCache(rdb redis.Cmdable, statsTTL, participantsTTL time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, statsTTL: statsTTL, participantsTTL: participantsTTL}
}

func StatsKey(eventID uuid.UUID) string {
	return statsKeyPrefix + eventID.String()
}

func ParticipantsKey(eventID uuid.UUID) string {
	return participantsKeyPrefix + eventID.String()
}

func (c *RedisCache) GetStats(ctx context.Context, eventID uuid.UUID) (*domain.CheckInStats, bool, error) {
	var stats domain.CheckInStats
	ok, err := c.get(ctx, StatsKey(eventID), &stats)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &stats, true, nil
}

func (c *RedisCache) SetStats(ctx context.Context, stats *domain.CheckInStats) error {
	return c.set(ctx, StatsKey(stats.EventID), stats, c.statsTTL)
}

func (c *RedisCache) GetParticipants(ctx context.Context, eventID uuid.UUID) ([]domain.Participant, bool, error) {
	var participants []domain.Participant
	ok, err := c.get(ctx, ParticipantsKey(eventID), &participants)
	if err != nil || !ok {
		return nil, ok, err
	}
	return participants, true, nil
}

func (c *RedisCache) SetParticipants(ctx context.Context, eventID uuid.UUID, participants []domain.Participant) error {
	return c.set(ctx, ParticipantsKey(eventID), participants, c.participantsTTL)
}

// Invalidate drops every cached view of the event.
func (c *RedisCache) Invalidate(ctx context.Context, eventID uuid.UUID) error {
	return c.rdb.Del(ctx, StatsKey(eventID), ParticipantsKey(eventID)).Err()
}

func (c *RedisCache) get(ctx context.Context, key string, v any) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}

	return true, nil
}

func (c *RedisCache) set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}
