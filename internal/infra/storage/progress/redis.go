package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
)

// keyPrefix совпадает с ключом localStorage браузерного клиента
const keyPrefix = "checkoutProgress:"

// RedisStore хранилище прогресса в Redis
// Запись живёт ttl и истекает сама, проверка возраста всё равно выполняется визардом
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisStore создает хранилище поверх Redis клиента
func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = domain.ProgressTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisClient создает клиент и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("progress: redis ping %s: %w", addr, err)
	}
	return client, nil
}

// Get возвращает сохранённый прогресс
func (s *RedisStore) Get(ctx context.Context, key string) (*domain.CheckoutProgress, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrProgressNotFound
		}
		return nil, fmt.Errorf("%w: Get - redis get: %v", ErrExecQuery, err)
	}

	var p domain.CheckoutProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: Get - key=%s: %v", ErrDecode, key, err)
	}
	return &p, nil
}

// Save перезаписывает прогресс и продлевает TTL
func (s *RedisStore) Save(ctx context.Context, key string, p domain.CheckoutProgress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: Save - key=%s: %v", ErrEncode, key, err)
	}

	if err := s.client.Set(ctx, keyPrefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - redis set: %v", ErrExecQuery, err)
	}
	return nil
}

// Delete удаляет прогресс
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("%w: Delete - redis del: %v", ErrExecQuery, err)
	}
	return nil
}
