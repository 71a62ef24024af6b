package menu

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var ErrItemNotFound = errors.New("menu item not found")

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*Category
	items      map[string]*MenuItem
	groups     map[string]*ModifierGroup
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		categories: make(map[string]*Category),
		items:      make(map[string]*MenuItem),
		groups:     make(map[string]*ModifierGroup),
	}
}

func (r *InMemoryRepository) ListCategories(ctx context.Context, activeOnly bool) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, 0, len(r.categories))
	for _, c := range r.categories {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *InMemoryRepository) ListItems(ctx context.Context, categoryID string, availableOnly bool) ([]MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]MenuItem, 0, len(r.items))
	for _, it := range r.items {
		if categoryID != "" && it.CategoryID != categoryID {
			continue
		}
		if availableOnly && !it.Available {
			continue
		}
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) GetItemDetail(ctx context.Context, itemID string) (*ItemDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, ErrItemNotFound
	}

	detail := &ItemDetail{MenuItem: *item}
	for _, g := range r.groups {
		if g.MenuItemID == itemID {
			detail.ModifierGroups = append(detail.ModifierGroups, *g)
		}
	}
	sort.Slice(detail.ModifierGroups, func(i, j int) bool {
		return detail.ModifierGroups[i].Name < detail.ModifierGroups[j].Name
	})
	return detail, nil
}

func (r *InMemoryRepository) CreateCategory(ctx context.Context, c *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *InMemoryRepository) UpdateCategory(ctx context.Context, c *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[c.ID]; !ok {
		return errors.New("category not found")
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *InMemoryRepository) CreateItem(ctx context.Context, item *MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *InMemoryRepository) UpdateItem(ctx context.Context, item *MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return ErrItemNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *InMemoryRepository) SetItemAvailability(ctx context.Context, itemID string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return ErrItemNotFound
	}
	item.Available = available
	return nil
}

func (r *InMemoryRepository) SetItemImage(ctx context.Context, itemID string, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return ErrItemNotFound
	}
	item.ImageURL = imageURL
	return nil
}

func (r *InMemoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, itemID)
	for id, g := range r.groups {
		if g.MenuItemID == itemID {
			delete(r.groups, id)
		}
	}
	return nil
}

func (r *InMemoryRepository) CreateModifierGroup(ctx context.Context, g *ModifierGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	cp := *g
	cp.Options = append([]ModifierOption(nil), g.Options...)
	r.groups[g.ID] = &cp
	return nil
}

func (r *InMemoryRepository) CreateModifierOption(ctx context.Context, o *ModifierOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[o.GroupID]
	if !ok {
		return errors.New("modifier group not found")
	}
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	g.Options = append(g.Options, *o)
	return nil
}

func (r *InMemoryRepository) DeleteModifierGroup(ctx context.Context, groupID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.groups, groupID)
	return nil
}
