package redis

import (
	"context"
	"esveikata-finder/internal/app/contracts"
	"esveikata-finder/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// memoryRepository stands in for Redis when no server is configured. Values
// are stored JSON-encoded, matching what redisRepository writes.
type memoryRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryRepository() contracts.RedisRepository {
	return &memoryRepository{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (r *memoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}

func (r *memoryRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	entry := memoryEntry{value: string(jsonValue)}
	if exp > 0 {
		entry.expiresAt = r.now().Add(exp)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = entry
	return nil
}

func (r *memoryRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[key]
	if !ok {
		return "", nil
	}
	if !entry.expiresAt.IsZero() && !r.now().Before(entry.expiresAt) {
		delete(r.entries, key)
		return "", nil
	}
	return entry.value, nil
}
