package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// InMemoryBackend backs tests and local development. Carts are stored
// serialized, so the JSON round-trip matches the Postgres backend.
type InMemoryBackend struct {
	mu    sync.RWMutex
	carts map[string]memoryCart
}

type memoryCart struct {
	payload   []byte
	updatedAt time.Time
}

func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{carts: make(map[string]memoryCart)}
}

func (b *InMemoryBackend) Load(ctx context.Context, tableID string) ([]LineItem, error) {
	b.mu.RLock()
	entry, ok := b.carts[tableID]
	b.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	var items []LineItem
	if err := json.Unmarshal(entry.payload, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (b *InMemoryBackend) Save(ctx context.Context, tableID string, items []LineItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.carts[tableID] = memoryCart{payload: payload, updatedAt: time.Now()}
	b.mu.Unlock()
	return nil
}

func (b *InMemoryBackend) Delete(ctx context.Context, tableID string) error {
	b.mu.Lock()
	delete(b.carts, tableID)
	b.mu.Unlock()
	return nil
}

func (b *InMemoryBackend) DeleteIdle(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	b.mu.Lock()
	defer b.mu.Unlock()

	var removed int64
	for tableID, entry := range b.carts {
		if entry.updatedAt.Before(cutoff) {
			delete(b.carts, tableID)
			removed++
		}
	}
	return removed, nil
}

// Corrupt overwrites a stored cart with an unparseable payload.
// Test helper for the load-failure fallback.
func (b *InMemoryBackend) Corrupt(tableID string) {
	b.mu.Lock()
	b.carts[tableID] = memoryCart{payload: []byte("{not json"), updatedAt: time.Now()}
	b.mu.Unlock()
}
