package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
)

// ErrCacheMiss is returned when a session is not cached.
var ErrCacheMiss = errors.New("session not found in cache")

// SessionCacheRepository caches session id to user id lookups in Redis.
type SessionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached sessions
}

// NewSessionCacheRepository creates a new repository instance with the given TTL.
func NewSessionCacheRepository(client *redis.Client, expiration time.Duration) *SessionCacheRepository {
	return &SessionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// GetUserID returns the cached owner of a session.
func (r *SessionCacheRepository) GetUserID(ctx context.Context, sessionID string) (string, error) {
	key := sessionKey(sessionID)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Debugw(
		"key", key,
		"result", val,
		"error", err,
	)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

// SetUserID caches the owner of a session. The entry never outlives ttl.
func (r *SessionCacheRepository) SetUserID(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if r.exp > 0 && r.exp < ttl {
		ttl = r.exp
	}
	key := sessionKey(sessionID)

	err := r.client.Set(ctx, key, userID, ttl).Err()
	logger.Log.Debugw(
		"key", key,
		"ttl", ttl,
		"error", err,
	)
	return err
}

// Delete evicts a session.
func (r *SessionCacheRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}
