// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/linkforge/session-runtime/internal/logging"
	"github.com/linkforge/session-runtime/internal/tracing"
	"github.com/linkforge/session-runtime/internal/types"
)

var _ StoreInterface = (*RedisStore)(nil)

const pendingTTL = time.Hour

// RedisStore keeps the device state in a local redis, keyed by prefix.
type RedisStore struct {
	client redis.Cmdable
	prefix string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (s *RedisStore) credentialKey() string {
	return s.prefix + ":credential"
}

func (s *RedisStore) pendingKey(key string) string {
	return s.prefix + ":pending:" + key
}

func (s *RedisStore) Load(ctx context.Context) (*types.Credential, error) {
	ctx, span := s.tracer.Start(ctx, "credentials.RedisStore.Load")
	defer span.End()

	data, err := s.client.Get(ctx, s.credentialKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credential: %w", err)
	}

	c := new(types.Credential)
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to decode credential: %w", err)
	}
	return c, nil
}

func (s *RedisStore) Save(ctx context.Context, c *types.Credential) error {
	ctx, span := s.tracer.Start(ctx, "credentials.RedisStore.Save")
	defer span.End()

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode credential: %w", err)
	}

	// no TTL: an expired credential is still needed for the refresh exchange
	if err := s.client.Set(ctx, s.credentialKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "credentials.RedisStore.Clear")
	defer span.End()

	if err := s.client.Del(ctx, s.credentialKey()).Err(); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}

func (s *RedisStore) SetPending(ctx context.Context, key, value string) error {
	ctx, span := s.tracer.Start(ctx, "credentials.RedisStore.SetPending")
	defer span.End()

	if err := s.client.Set(ctx, s.pendingKey(key), value, pendingTTL).Err(); err != nil {
		return fmt.Errorf("failed to write pending value: %w", err)
	}
	return nil
}

func (s *RedisStore) TakePending(ctx context.Context, key string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "credentials.RedisStore.TakePending")
	defer span.End()

	v, err := s.client.GetDel(ctx, s.pendingKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to take pending value: %w", err)
	}
	return v, nil
}

func NewRedisStore(client redis.Cmdable, prefix string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *RedisStore {
	s := new(RedisStore)

	s.client = client
	s.prefix = prefix
	s.tracer = tracer
	s.logger = logger

	return s
}

// NewRedisClient connects to addr and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
