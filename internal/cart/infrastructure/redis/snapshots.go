// Package redis adapts a redis client to the cart's snapshot port. It
// plays the role the browser's local storage played for the original
// cart: one serialized snapshot under one fixed key.
package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type Snapshots struct {
	rdb *redis.Client
}

func NewSnapshots(rdb *redis.Client) *Snapshots {
	return &Snapshots{rdb: rdb}
}

func (s *Snapshots) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Snapshots) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}
