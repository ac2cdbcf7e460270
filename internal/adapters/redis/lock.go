package redisad

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"nopsync/internal/adapters/observability"
	"nopsync/internal/domain"
)

// releaseScript deletes the lock only if it still holds our token, so an
// expired lock taken over by another run is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func lockKey(name string) string { return keyPrefix + "lock:" + name }

// Acquire takes the named lock for ttl. It returns domain.ErrLocked when
// another holder has it.
func (s *Store) Acquire(ctx context.Context, name string, ttl time.Duration) (func(context.Context) error, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	key := lockKey(name)
	ok, err := s.c.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", name, err)
	}
	if !ok {
		observability.ObserveLock(name, "busy")
		return nil, fmt.Errorf("%w: %s", domain.ErrLocked, name)
	}
	observability.ObserveLock(name, "acquired")

	release := func(ctx context.Context) error {
		n, err := releaseScript.Run(ctx, s.c, []string{key}, token).Int()
		if err != nil {
			return fmt.Errorf("release lock %s: %w", name, err)
		}
		if n == 0 {
			log.Warn().Str("lock", name).Msg("lock expired before release")
		}
		observability.ObserveLock(name, "released")
		return nil
	}
	return release, nil
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
