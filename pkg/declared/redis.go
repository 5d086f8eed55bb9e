package declared

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores declarations as JSON values that expire after the TTL.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedis creates a Redis store. Keys are prefix + "declared:" + session id.
func NewRedis(client redis.UniversalClient, prefix string, ttl time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix + "declared:", ttl: ttl}
}

func (r *Redis) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *Redis) Declare(ctx context.Context, sessionID string, d Declaration) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode declaration: %w", err)
	}
	if err := r.client.Set(ctx, r.key(sessionID), data, r.ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (r *Redis) Declared(ctx context.Context, sessionID string) (Declaration, error) {
	if sessionID == "" {
		return Declaration{}, ErrEmptySessionID
	}
	data, err := r.client.Get(ctx, r.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Declaration{}, ErrNotDeclared
	}
	if err != nil {
		return Declaration{}, errors.Join(ErrStoreUnavailable, err)
	}

	var d Declaration
	if err := json.Unmarshal(data, &d); err != nil {
		return Declaration{}, fmt.Errorf("decode declaration: %w", err)
	}
	return d, nil
}

func (r *Redis) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
