// Package ratelimit provides the backing stores for the claim rate limiter.
//
// A store holds, per rate key, the epoch-millisecond timestamp of the last
// claim (or of a reservation in flight), expiring after the rate-limit
// window. Presence of a key means "denied". Reservations are conditional
// writes so that concurrent claims for the same pair cannot both pass.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the rate limiter with a shared redis instance, required
// for multi-instance deployments.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Last returns the recorded claim time for key, if any.
func (s *RedisStore) Last(ctx context.Context, key string) (time.Time, bool, error) {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("redis get: %w", err)
	}
	return parseMillis(raw), true, nil
}

// Reserve atomically sets key to at unless it already exists. On denial the
// existing timestamp is returned so callers can compute the remaining wait.
func (s *RedisStore) Reserve(ctx context.Context, key string, at time.Time, window time.Duration) (bool, time.Time, error) {
	ok, err := s.client.SetNX(ctx, key, formatMillis(at), window).Result()
	if err != nil {
		return false, time.Time{}, fmt.Errorf("redis setnx: %w", err)
	}
	if ok {
		return true, time.Time{}, nil
	}

	existing, found, err := s.Last(ctx, key)
	if err != nil {
		return false, time.Time{}, err
	}
	if !found {
		// Key expired between SETNX and GET; treat as denied with the
		// reservation time so the caller retries on the next request.
		existing = at
	}
	return false, existing, nil
}

// Commit overwrites key with the final claim time and restarts the window.
func (s *RedisStore) Commit(ctx context.Context, key string, at time.Time, window time.Duration) error {
	if err := s.client.Set(ctx, key, formatMillis(at), window).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Release drops a reservation after a failed disbursement so the window is
// not consumed.
func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func formatMillis(at time.Time) string {
	return strconv.FormatInt(at.UnixMilli(), 10)
}

func parseMillis(raw string) time.Time {
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(millis).UTC()
}
