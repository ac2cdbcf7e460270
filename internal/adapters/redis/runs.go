package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"nopsync/internal/domain"
)

func runKey(entity string) string { return keyPrefix + "run:" + entity }

// SaveRun overwrites the last-run summary of s.Entity. Summaries don't expire.
func (s *Store) SaveRun(ctx context.Context, sum domain.RunSummary) error {
	b, err := json.Marshal(sum)
	if err != nil {
		return err
	}
	return s.c.Set(ctx, runKey(sum.Entity), b, 0).Err()
}

func (s *Store) LastRun(ctx context.Context, entity string) (domain.RunSummary, error) {
	var out domain.RunSummary
	v, err := s.c.Get(ctx, runKey(entity)).Bytes()
	if errors.Is(err, redis.Nil) {
		return out, domain.ErrNotFound
	}
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(v, &out); err != nil {
		return out, fmt.Errorf("decode run summary %s: %w", entity, err)
	}
	return out, nil
}
