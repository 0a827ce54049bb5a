package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisAPI is the subset of *redis.Client the store uses.
type RedisAPI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisStore struct {
	client RedisAPI
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client RedisAPI, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: "stockify:form:", ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, key string) (*domain.FormSession, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get form session: %w", err)
	}

	var form domain.FormSession
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("failed to unmarshal form session: %w", err)
	}
	return &form, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, form *domain.FormSession) error {
	data, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("failed to marshal form session: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set form session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete form session: %w", err)
	}
	return nil
}
