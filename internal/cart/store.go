package cart

import (
	"context"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// Store holds the line items for one table's browsing session.
// Every mutation synchronously writes the full line set through the
// backend, so a new Store built from the same table id sees the same cart.
//
// None of the mutations fail on customer input: unknown line ids are
// silently ignored and a quantity below one deletes the line. The cart
// never blocks an order.
type Store struct {
	tableID string
	backend Backend
	items   []LineItem
}

// NewStore loads the table's persisted cart. A load failure (missing row,
// corrupt payload) falls back to an empty cart — by contract the cart
// never surfaces persistence errors to the customer.
func NewStore(ctx context.Context, tableID string, backend Backend) *Store {
	items, err := backend.Load(ctx, tableID)
	if err != nil {
		log.Printf("cart load failed for table %s, starting empty: %v", tableID, err)
		items = nil
	}
	return &Store{
		tableID: tableID,
		backend: backend,
		items:   items,
	}
}

// AddItem appends a line or, when an identical line already exists
// (same menu item, same option set, same note), increments its quantity.
// Quantity defaults to 1.
func (s *Store) AddItem(
	ctx context.Context,
	menuItemID string,
	name string,
	basePrice decimal.Decimal,
	modifiers []Modifier,
	quantity int,
	note string,
) LineItem {

	if quantity < 1 {
		quantity = 1
	}
	note = strings.TrimSpace(note)

	lineID := computeLineID(menuItemID, modifiers, note)

	for i := range s.items {
		if s.items[i].LineID == lineID {
			s.items[i].Quantity += quantity
			s.items[i].recompute()
			s.save(ctx)
			return s.items[i]
		}
	}

	line := LineItem{
		LineID:     lineID,
		MenuItemID: menuItemID,
		Name:       name,
		BasePrice:  basePrice,
		Modifiers:  modifiers,
		Quantity:   quantity,
		Note:       note,
	}
	line.recompute()

	s.items = append(s.items, line)
	s.save(ctx)
	return line
}

// UpdateQuantity sets a line's quantity. Below one removes the line —
// the cart never holds a zero-quantity line. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) {
	if quantity < 1 {
		s.RemoveItem(ctx, lineID)
		return
	}

	for i := range s.items {
		if s.items[i].LineID == lineID {
			s.items[i].Quantity = quantity
			s.items[i].recompute()
			s.save(ctx)
			return
		}
	}
}

// RemoveItem deletes the matching line; no-op if absent.
func (s *Store) RemoveItem(ctx context.Context, lineID string) {
	for i := range s.items {
		if s.items[i].LineID == lineID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.save(ctx)
			return
		}
	}
}

// UpdateNote replaces a line's note. Pricing is untouched; the note is
// not part of the stored identity once the line exists.
func (s *Store) UpdateNote(ctx context.Context, lineID string, note string) {
	for i := range s.items {
		if s.items[i].LineID == lineID {
			s.items[i].Note = strings.TrimSpace(note)
			s.save(ctx)
			return
		}
	}
}

// Clear empties the cart; persistence reflects the empty state.
func (s *Store) Clear(ctx context.Context) {
	s.items = nil
	if err := s.backend.Delete(ctx, s.tableID); err != nil {
		log.Printf("cart clear failed for table %s: %v", s.tableID, err)
	}
}

// Items returns a copy of the current lines.
func (s *Store) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Totals recomputes the derived cart figures from scratch.
func (s *Store) Totals() Totals {
	t := Totals{CartTotal: decimal.Zero}
	for _, line := range s.items {
		t.CartTotal = t.CartTotal.Add(line.LineTotal)
		t.TotalItems += line.Quantity
	}
	return t
}

func (s *Store) save(ctx context.Context) {
	if err := s.backend.Save(ctx, s.tableID, s.items); err != nil {
		log.Printf("cart save failed for table %s: %v", s.tableID, err)
	}
}
