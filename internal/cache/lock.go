package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	lockTTL   = 5 * time.Second
	lockRetry = 50 * time.Millisecond
)

// Released only when the token still matches, so an expired lock taken over
// by another request is never deleted from under it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisBarberLocker serializes booking writes per barber across API
// instances with a SETNX lease.
type RedisBarberLocker struct {
	rdb *redis.Client
}

func NewRedisBarberLocker(c *Client) *RedisBarberLocker {
	return &RedisBarberLocker{rdb: c.rdb}
}

func (l *RedisBarberLocker) Lock(ctx context.Context, barberID uint) (func(), error) {
	key := fmt.Sprintf("lock:barber:%d", barberID)
	token := uuid.NewString()

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("barber lock: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetry):
		}
	}

	release := func() {
		bg, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		releaseScript.Run(bg, l.rdb, []string{key}, token)
	}
	return release, nil
}

// LocalBarberLocker is the single-instance fallback used when Redis is not
// configured.
type LocalBarberLocker struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewLocalBarberLocker() *LocalBarberLocker {
	return &LocalBarberLocker{locks: make(map[uint]*sync.Mutex)}
}

func (l *LocalBarberLocker) Lock(_ context.Context, barberID uint) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[barberID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[barberID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}
