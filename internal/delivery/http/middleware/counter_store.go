package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CounterStore is the shared hit counter behind the submission rate limit.
// Implementations must provide atomic increment-and-check semantics so
// concurrent requests from one IP never lose updates.
type CounterStore interface {
	// Incr records one hit for key and returns the total within the current
	// window together with the time the window resets.
	Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error)
}

// Lua script for atomic increment with TTL set on the first hit.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
// Returns: [current_count, ttl_remaining]
const counterScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RedisStore counts hits in Redis, surviving restarts and shared across
// instances.
type RedisStore struct {
	client *goredis.Client
}

func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	result, err := s.client.Eval(ctx, counterScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

type memoryEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// MemoryStore counts hits in process memory. Counters live for the process
// lifetime; a background sweep drops expired entries.
type MemoryStore struct {
	entries sync.Map
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	go s.cleanupLoop(5 * time.Minute)
	return s
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	now := time.Now()
	v, _ := s.entries.LoadOrStore(key, &memoryEntry{resetAt: now.Add(window)})
	entry := v.(*memoryEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++

	return entry.count, entry.resetAt, nil
}

func (s *MemoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		s.entries.Range(func(key, value interface{}) bool {
			entry := value.(*memoryEntry)
			entry.mu.Lock()
			expired := now.After(entry.resetAt)
			entry.mu.Unlock()
			if expired {
				s.entries.Delete(key)
			}
			return true
		})
	}
}
