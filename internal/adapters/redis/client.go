package redisad

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "nopsync:"

// Store wraps one redis client and serves both the run lock and the
// last-run recorder.
type Store struct{ c *redis.Client }

func New(addr, pass string, db int) *Store {
	return &Store{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (s *Store) Ping(ctx context.Context) error { return s.c.Ping(ctx).Err() }

func (s *Store) Close() error { return s.c.Close() }
