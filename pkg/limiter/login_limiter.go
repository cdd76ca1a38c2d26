package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	MaxLoginAttempts = 5
	LockoutWindow    = 15 * time.Minute
)

// AttemptStore tracks failed login attempts per identifier
// (username + client IP) and reports when an identifier is locked out.
type AttemptStore interface {
	IsBlocked(ctx context.Context, identifier string) (bool, error)

	// AddAttempt records one failed attempt. Attempts expire after
	// LockoutWindow.
	AddAttempt(ctx context.Context, identifier string) error

	// Clear removes all attempts for identifier (called on successful login).
	Clear(ctx context.Context, identifier string) error
}

type RedisAttemptStore struct {
	client *redis.Client
}

func NewRedisAttemptStore(client *redis.Client) *RedisAttemptStore {
	return &RedisAttemptStore{client: client}
}

func attemptKey(identifier string) string {
	return fmt.Sprintf("login_attempts:%s", identifier)
}

func (s *RedisAttemptStore) IsBlocked(ctx context.Context, identifier string) (bool, error) {
	count, err := s.client.Get(ctx, attemptKey(identifier)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return count >= MaxLoginAttempts, nil
}

func (s *RedisAttemptStore) AddAttempt(ctx context.Context, identifier string) error {
	key := attemptKey(identifier)
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	// First attempt opens the lockout window.
	if count == 1 {
		return s.client.Expire(ctx, key, LockoutWindow).Err()
	}
	return nil
}

func (s *RedisAttemptStore) Clear(ctx context.Context, identifier string) error {
	return s.client.Del(ctx, attemptKey(identifier)).Err()
}
