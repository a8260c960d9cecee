package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"advanx_funnel_backend/internal/funnel/domain"
	"advanx_funnel_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions as JSON blobs under a TTL. Every save renews
// the TTL, so a session lives as long as the visitor keeps moving.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Compile-time check that RedisStore implements Store.
var _ Store = (*RedisStore)(nil)

func sessionKey(id uuid.UUID) string {
	return "funnel:session:" + id.String()
}

// Save writes the session and renews its TTL.
func (s *RedisStore) Save(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get loads a session by ID.
func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound(sessionNotFoundMessage)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

const createdCounterKey = "funnel:sessions:created"

// IncrementCreated bumps the lifetime session counter.
func (s *RedisStore) IncrementCreated(ctx context.Context) error {
	if err := s.client.Incr(ctx, createdCounterKey).Err(); err != nil {
		return fmt.Errorf("increment session counter: %w", err)
	}
	return nil
}

// CreatedCount returns the lifetime session counter.
func (s *RedisStore) CreatedCount(ctx context.Context) (int64, error) {
	count, err := s.client.Get(ctx, createdCounterKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("read session counter: %w", err)
	}
	return count, nil
}
