package order

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrItemNotFound  = errors.New("order item not found")
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]*Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[string]*Order)}
}

func (r *InMemoryRepository) Create(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	for i := range o.Items {
		if o.Items[i].ID == "" {
			o.Items[i].ID = uuid.New().String()
		}
		o.Items[i].OrderID = o.ID
	}

	cp := cloneOrder(o)
	r.orders[o.ID] = cp
	return nil
}

func (r *InMemoryRepository) GetOpenByTable(ctx context.Context, tableID string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.TableID == tableID && (o.Status == StatusOpen || o.Status == StatusBillRequested) {
			return cloneOrder(o), nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *InMemoryRepository) GetByID(ctx context.Context, orderID string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (r *InMemoryRepository) AppendItems(ctx context.Context, orderID string, items []OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}

	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.OrderID = orderID
		o.Items = append(o.Items, item)
	}
	o.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) ListByStatus(ctx context.Context, status string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Order
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			out = append(out, *cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) UpdateItemStatus(ctx context.Context, orderID, itemID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}

	for i := range o.Items {
		if o.Items[i].ID == itemID {
			o.Items[i].Status = status
			o.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) ConfirmBill(ctx context.Context, orderID string, bill BillUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}

	o.DiscountType = bill.DiscountType
	o.DiscountValue = bill.DiscountValue
	o.TaxAmount = bill.TaxAmount
	o.TotalAmount = bill.TotalAmount
	o.BillNote = bill.Note
	o.PaymentMethod = bill.PaymentMethod
	o.Status = StatusPaid
	o.UpdatedAt = time.Now()
	return nil
}

func cloneOrder(o *Order) *Order {
	cp := *o
	cp.Items = append([]OrderItem(nil), o.Items...)
	return &cp
}
