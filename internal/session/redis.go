package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dbenson457/cake-solution/internal/domain"

	"github.com/go-redis/redis/v8"
)

const cartKeyPrefix = "cart:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	raw, err := s.client.Get(ctx, cartKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return domain.NewCart(), nil
	}
	if err != nil {
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = make(map[uint64]int64)
	}
	return &cart, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKeyPrefix+sessionID, data, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKeyPrefix+sessionID).Err()
}
