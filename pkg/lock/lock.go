// Package lock serializes work on named keys. The Redis locker coordinates
// several API instances; the local locker covers a single process.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go-recruitment-ops/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL  = 30 * time.Second
	retryPeriod = 50 * time.Millisecond
)

// releaseScript deletes the key only while it still holds our token
const releaseScript = `
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`

// Redis holds locks as SET NX keys with a TTL
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis creates a Redis locker. A non-positive ttl uses 30 seconds.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

// Acquire polls SET NX until it wins or ctx is done
func (l *Redis) Acquire(ctx context.Context, key string) (func(), error) {
	fullKey := l.prefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(retryPeriod)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, fullKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", fullKey, err)
		}
		if ok {
			release := func() {
				ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				defer cancel()
				if err := l.client.Eval(ctx, releaseScript, []string{fullKey}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
					logger.Log.Warn("Failed to release lock", "key", fullKey, "error", err)
				}
			}
			return release, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("lock %s: %w", fullKey, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Local holds locks in process memory. A key's slot lives only while
// someone holds or waits for it.
type Local struct {
	mu    sync.Mutex
	slots map[string]*localSlot
}

type localSlot struct {
	ch   chan struct{}
	refs int
}

// NewLocal creates an in-process locker
func NewLocal() *Local {
	return &Local{slots: make(map[string]*localSlot)}
}

// Acquire waits for the key's slot or ctx
func (l *Local) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[key]
	if !ok {
		slot = &localSlot{ch: make(chan struct{}, 1)}
		l.slots[key] = slot
	}
	slot.refs++
	l.mu.Unlock()

	select {
	case slot.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-slot.ch
				l.unref(key, slot)
			})
		}, nil
	case <-ctx.Done():
		l.unref(key, slot)
		return nil, fmt.Errorf("lock %s: %w", key, ctx.Err())
	}
}

func (l *Local) unref(key string, slot *localSlot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	slot.refs--
	if slot.refs == 0 {
		delete(l.slots, key)
	}
}
