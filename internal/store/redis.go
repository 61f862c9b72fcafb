package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// redisStore persists envelopes as plain string values under prefixed keys.
// SaveAll uses MULTI/EXEC so multi-key commits apply atomically.
type redisStore struct {
	rdb *redis.Client
}

// NewRedis returns a Store backed by the given redis client.
func NewRedis(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Load(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := s.rdb.Get(ctx, Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrIndisponivel, err)
	}
	if err := unseal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *redisStore) Save(ctx context.Context, key string, value interface{}) error {
	raw, err := seal(value)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, Prefix+key, raw, 0).Err(); err != nil {
		return errors.Join(ErrIndisponivel, err)
	}
	return nil
}

func (s *redisStore) SaveAll(ctx context.Context, values map[string]interface{}) error {
	// Serialize everything before touching the wire so an encoding failure
	// cannot leave a partial commit behind.
	sealed := make(map[string][]byte, len(values))
	for key, value := range values {
		raw, err := seal(value)
		if err != nil {
			return err
		}
		sealed[Prefix+key] = raw
	}

	pipe := s.rdb.TxPipeline()
	for key, raw := range sealed {
		pipe.Set(ctx, key, raw, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrIndisponivel, err)
	}
	return nil
}
