package order

import (
	"context"
	"errors"

	"github.com/nhatduy27/Table-Management-sub000/internal/billing"
	"github.com/nhatduy27/Table-Management-sub000/internal/cart"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrAlreadyPaid     = errors.New("order is already paid")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidDiscount = errors.New("invalid discount")
)

// Publisher pushes realtime events to the table's socket room.
// Satisfied by the realtime hub; a no-op stub works for tests.
type Publisher interface {
	Publish(tableID string, event any)
}

// StatusEvent is what flows over the socket. Last received wins —
// no sequence numbers, no replay.
type StatusEvent struct {
	Type    string `json:"type"`
	OrderID string `json:"order_id"`
	TableID string `json:"table_id"`
	ItemID  string `json:"item_id,omitempty"`
	Status  string `json:"status"`
}

type Service struct {
	repo      Repository
	carts     cart.Backend
	publisher Publisher
}

func NewService(repo Repository, carts cart.Backend, publisher Publisher) *Service {
	return &Service{
		repo:      repo,
		carts:     carts,
		publisher: publisher,
	}
}

// --------------------------------------------------
// Submit cart as order (CUSTOMER)
// --------------------------------------------------

// Submit flattens the table's cart into order items and appends them to
// the table's open order, creating one if needed. The cart is cleared on
// success — a second submit with an un-refreshed client finds it empty.
func (s *Service) Submit(ctx context.Context, tableID string) (*Order, error) {
	store := cart.NewStore(ctx, tableID, s.carts)
	lines := store.Items()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]OrderItem, len(lines))
	for i, line := range lines {
		modifiers := make([]ItemModifier, len(line.Modifiers))
		for j, m := range line.Modifiers {
			modifiers[j] = ItemModifier{
				GroupID:         m.GroupID,
				GroupName:       m.GroupName,
				OptionID:        m.OptionID,
				OptionName:      m.OptionName,
				PriceAdjustment: m.PriceAdjustment,
			}
		}
		items[i] = OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.UnitPrice,
			Quantity:   line.Quantity,
			Notes:      line.Note,
			Modifiers:  modifiers,
			Status:     ItemPending,
		}
	}

	existing, err := s.repo.GetOpenByTable(ctx, tableID)
	switch {
	case err == nil:
		if err := s.repo.AppendItems(ctx, existing.ID, items); err != nil {
			return nil, err
		}
	case errors.Is(err, ErrOrderNotFound):
		existing = &Order{
			TableID: tableID,
			Status:  StatusOpen,
			Items:   items,
		}
		if err := s.repo.Create(ctx, existing); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	store.Clear(ctx)

	s.publisher.Publish(tableID, StatusEvent{
		Type:    "order_submitted",
		OrderID: existing.ID,
		TableID: tableID,
		Status:  existing.Status,
	})

	return s.repo.GetByID(ctx, existing.ID)
}

// --------------------------------------------------
// Active order view (CUSTOMER BILL DISPLAY)
// --------------------------------------------------

// ActiveOrderView pairs the stored order with a server-computed subtotal
// over non-cancelled lines. The stored total_amount stays zero until the
// bill is confirmed; the subtotal is the client's fallback figure.
type ActiveOrderView struct {
	Order    *Order         `json:"order"`
	Subtotal billing.Result `json:"bill_preview"`
}

func (s *Service) GetActive(ctx context.Context, tableID string) (*ActiveOrderView, error) {
	o, err := s.repo.GetOpenByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	return &ActiveOrderView{
		Order:    o,
		Subtotal: billing.Calculate(billLines(o), billing.Config{}),
	}, nil
}

// --------------------------------------------------
// Bill request (CUSTOMER)
// --------------------------------------------------
func (s *Service) RequestBill(ctx context.Context, tableID string) (*Order, error) {
	o, err := s.repo.GetOpenByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, o.ID, StatusBillRequested); err != nil {
		return nil, err
	}
	o.Status = StatusBillRequested

	s.publisher.Publish(tableID, StatusEvent{
		Type:    "bill_requested",
		OrderID: o.ID,
		TableID: tableID,
		Status:  StatusBillRequested,
	})

	return o, nil
}

// --------------------------------------------------
// Staff: order views and item transitions
// --------------------------------------------------

func (s *Service) ListOrders(ctx context.Context, status string) ([]Order, error) {
	if status != "" && status != StatusOpen && status != StatusBillRequested &&
		status != StatusPaid && status != StatusCancelled {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) UpdateItemStatus(ctx context.Context, orderID, itemID, status string) error {
	if !validItemStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateItemStatus(ctx, orderID, itemID, status); err != nil {
		return err
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	s.publisher.Publish(o.TableID, StatusEvent{
		Type:    "item_status",
		OrderID: orderID,
		TableID: o.TableID,
		ItemID:  itemID,
		Status:  status,
	})
	return nil
}

func (s *Service) CancelOrder(ctx context.Context, orderID string) error {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.Status == StatusPaid {
		return ErrAlreadyPaid
	}

	if err := s.repo.UpdateStatus(ctx, orderID, StatusCancelled); err != nil {
		return err
	}

	s.publisher.Publish(o.TableID, StatusEvent{
		Type:    "order_status",
		OrderID: orderID,
		TableID: o.TableID,
		Status:  StatusCancelled,
	})
	return nil
}

// --------------------------------------------------
// Staff: confirm bill
// --------------------------------------------------

// ConfirmBill recomputes the bill over non-cancelled lines and persists
// the ABSOLUTE tax amount plus the final total, then marks the order PAID.
func (s *Service) ConfirmBill(
	ctx context.Context,
	orderID string,
	cfg billing.Config,
	paymentMethod string,
) (*billing.Result, error) {

	if cfg.DiscountType != "" &&
		cfg.DiscountType != billing.DiscountPercent &&
		cfg.DiscountType != billing.DiscountFixed {
		return nil, ErrInvalidDiscount
	}
	// Staff is trusted with high percentages, not with negative amounts.
	if cfg.DiscountValue.IsNegative() || cfg.TaxPercent.IsNegative() {
		return nil, ErrInvalidDiscount
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status == StatusPaid {
		return nil, ErrAlreadyPaid
	}

	result := billing.Calculate(billLines(o), cfg)

	err = s.repo.ConfirmBill(ctx, orderID, BillUpdate{
		DiscountType:  cfg.DiscountType,
		DiscountValue: cfg.DiscountValue,
		TaxAmount:     result.TaxAmount,
		TotalAmount:   result.FinalTotal,
		Note:          cfg.Note,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(o.TableID, StatusEvent{
		Type:    "order_status",
		OrderID: orderID,
		TableID: o.TableID,
		Status:  StatusPaid,
	})

	return &result, nil
}

func billLines(o *Order) []billing.Line {
	lines := make([]billing.Line, len(o.Items))
	for i, item := range o.Items {
		lines[i] = billing.Line{
			Name:      item.Name,
			BasePrice: item.Price, // unit price snapshot already includes modifiers
			Quantity:  item.Quantity,
			Status:    item.Status,
		}
	}
	return lines
}
