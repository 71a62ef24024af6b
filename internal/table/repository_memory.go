package table

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	tables map[string]*DiningTable
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{tables: make(map[string]*DiningTable)}
}

func (r *InMemoryRepository) Create(ctx context.Context, t *DiningTable) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.TokenVersion == 0 {
		t.TokenVersion = 1
	}
	t.CreatedAt = time.Now()

	cp := *t
	r.tables[t.ID] = &cp
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]DiningTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]DiningTable, 0, len(r.tables))
	for _, t := range r.tables {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*DiningTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[id]
	if !ok {
		return nil, ErrTableNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, t *DiningTable) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tables[t.ID]
	if !ok {
		return ErrTableNotFound
	}
	existing.Number = t.Number
	existing.Name = t.Name
	existing.Seats = t.Seats
	return nil
}

func (r *InMemoryRepository) SetActive(ctx context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[id]
	if !ok {
		return ErrTableNotFound
	}
	t.Active = active
	return nil
}

func (r *InMemoryRepository) BumpTokenVersion(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[id]
	if !ok {
		return 0, ErrTableNotFound
	}
	t.TokenVersion++
	return t.TokenVersion, nil
}
