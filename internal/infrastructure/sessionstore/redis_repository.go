package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sokoyetu/storefront/internal/core/domain"
)

// keyPrefix namespaces the serialized sessions in Redis.
// Key format: auth-storage:<session id>
const keyPrefix = "auth-storage:"

const defaultTTL = 30 * 24 * time.Hour

// RedisRepository persists sessions as JSON under auth-storage:* keys.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository wraps the given Redis client. A non-positive TTL falls
// back to 30 days; the TTL refreshes on every save.
func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisRepository{client: client, ttl: ttl}
}

// Find loads and rehydrates a session. Missing and undecodable entries both
// report domain.ErrSessionNotFound so the caller restarts anonymous.
func (r *RedisRepository) Find(ctx context.Context, sessionID string) (domain.Session, error) {
	data, err := r.client.Get(ctx, r.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, domain.ErrSessionNotFound
		}
		return domain.Session{}, fmt.Errorf("session lookup: %w", err)
	}
	return decodeSession(data)
}

// Save serializes the session in a single write.
func (r *RedisRepository) Save(ctx context.Context, sessionID string, sess domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, r.key(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Delete removes the session. Deleting an absent session is not an error.
func (r *RedisRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}

func (r *RedisRepository) key(sessionID string) string {
	return keyPrefix + sessionID
}

// decodeSession unmarshals stored JSON and derives the auth state. Corrupt
// payloads are treated as absent rather than fatal.
func decodeSession(data []byte) (domain.Session, error) {
	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	sess.Normalize()
	return sess, nil
}
