package order

import (
	"context"
	"testing"

	"github.com/nhatduy27/Table-Management-sub000/internal/billing"
	"github.com/nhatduy27/Table-Management-sub000/internal/cart"

	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// --------------------------------------------------
// Publisher spy
// --------------------------------------------------

type spyPublisher struct {
	events []StatusEvent
}

func (p *spyPublisher) Publish(tableID string, event any) {
	if e, ok := event.(StatusEvent); ok {
		p.events = append(p.events, e)
	}
}

func newTestService() (*Service, cart.Backend, *spyPublisher) {
	carts := cart.NewInMemoryBackend()
	publisher := &spyPublisher{}
	return NewService(NewInMemoryRepository(), carts, publisher), carts, publisher
}

func fillCart(ctx context.Context, carts cart.Backend, tableID string) {
	store := cart.NewStore(ctx, tableID, carts)
	store.AddItem(ctx, "pho", "Pho Bo", dec(50000), []cart.Modifier{
		{GroupID: "size", OptionID: "size-l", OptionName: "Large", PriceAdjustment: dec(10000)},
	}, 2, "")
	store.AddItem(ctx, "tea", "Iced Tea", dec(15000), nil, 1, "no ice")
}

// --------------------------------------------------
// Submit
// --------------------------------------------------

func TestSubmitCreatesOrderAndClearsCart(t *testing.T) {
	ctx := context.Background()
	service, carts, publisher := newTestService()

	fillCart(ctx, carts, "table-1")

	o, err := service.Submit(ctx, "table-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Status != StatusOpen {
		t.Fatalf("expected OPEN, got %s", o.Status)
	}
	if len(o.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(o.Items))
	}
	// unit price snapshot includes modifiers: 50000 + 10000
	if !o.Items[0].Price.Equal(dec(60000)) {
		t.Fatalf("expected unit price snapshot 60000, got %s", o.Items[0].Price)
	}

	if len(cart.NewStore(ctx, "table-1", carts).Items()) != 0 {
		t.Fatal("cart must be cleared after submission")
	}

	if len(publisher.events) == 0 || publisher.events[0].Type != "order_submitted" {
		t.Fatalf("expected order_submitted event, got %+v", publisher.events)
	}
}

func TestSubmitEmptyCartRejected(t *testing.T) {
	service, _, _ := newTestService()

	if _, err := service.Submit(context.Background(), "table-1"); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSecondSubmitAppendsToOpenOrder(t *testing.T) {
	ctx := context.Background()
	service, carts, _ := newTestService()

	fillCart(ctx, carts, "table-1")
	first, err := service.Submit(ctx, "table-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fillCart(ctx, carts, "table-1")
	second, err := service.Submit(ctx, "table-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.ID != first.ID {
		t.Fatal("second submission must append to the open order, not create a new one")
	}
	if len(second.Items) != 4 {
		t.Fatalf("expected 4 items after second submission, got %d", len(second.Items))
	}
}

// --------------------------------------------------
// Bill flow
// --------------------------------------------------

func TestConfirmBillPersistsAbsoluteTax(t *testing.T) {
	ctx := context.Background()
	service, carts, _ := newTestService()

	fillCart(ctx, carts, "table-1")
	o, err := service.Submit(ctx, "table-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// subtotal = 60000*2 + 15000 = 135000; 10% tax on post-discount subtotal
	result, err := service.ConfirmBill(ctx, o.ID, billing.Config{
		TaxPercent: dec(10),
	}, "cash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.TaxAmount.Equal(dec(13500)) {
		t.Fatalf("expected tax amount 13500, got %s", result.TaxAmount)
	}

	paid, err := service.repo.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid.Status != StatusPaid {
		t.Fatalf("expected PAID, got %s", paid.Status)
	}
	if !paid.TaxAmount.Equal(dec(13500)) {
		t.Fatalf("stored tax must be the absolute amount, got %s", paid.TaxAmount)
	}
	if !paid.TotalAmount.Equal(dec(148500)) {
		t.Fatalf("expected total 148500, got %s", paid.TotalAmount)
	}
	if paid.PaymentMethod != "cash" {
		t.Fatalf("expected payment method cash, got %s", paid.PaymentMethod)
	}
}

func TestConfirmBillExcludesCancelledItems(t *testing.T) {
	ctx := context.Background()
	service, carts, _ := newTestService()

	fillCart(ctx, carts, "table-1")
	o, err := service.Submit(ctx, "table-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// cancel the pho line (60000 x 2)
	if err := service.UpdateItemStatus(ctx, o.ID, o.Items[0].ID, ItemCancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := service.ConfirmBill(ctx, o.ID, billing.Config{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Subtotal.Equal(dec(15000)) {
		t.Fatalf("cancelled line must contribute zero, got subtotal %s", result.Subtotal)
	}
}

func TestConfirmBillRejectsNegativeInputs(t *testing.T) {
	ctx := context.Background()
	service, carts, _ := newTestService()

	fillCart(ctx, carts, "table-1")
	o, _ := service.Submit(ctx, "table-1")

	_, err := service.ConfirmBill(ctx, o.ID, billing.Config{
		DiscountType:  billing.DiscountFixed,
		DiscountValue: dec(-5000),
	}, "")
	if err != ErrInvalidDiscount {
		t.Fatalf("expected ErrInvalidDiscount, got %v", err)
	}
}

func TestConfirmBillTwiceRejected(t *testing.T) {
	ctx := context.Background()
	service, carts, _ := newTestService()

	fillCart(ctx, carts, "table-1")
	o, _ := service.Submit(ctx, "table-1")

	if _, err := service.ConfirmBill(ctx, o.ID, billing.Config{}, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.ConfirmBill(ctx, o.ID, billing.Config{}, ""); err != ErrAlreadyPaid {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}
}

// --------------------------------------------------
// Status transitions & events
// --------------------------------------------------

func TestRequestBillTransitionsAndPublishes(t *testing.T) {
	ctx := context.Background()
	service, carts, publisher := newTestService()

	fillCart(ctx, carts, "table-1")
	if _, err := service.Submit(ctx, "table-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o, err := service.RequestBill(ctx, "table-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != StatusBillRequested {
		t.Fatalf("expected BILL_REQUESTED, got %s", o.Status)
	}

	last := publisher.events[len(publisher.events)-1]
	if last.Type != "bill_requested" {
		t.Fatalf("expected bill_requested event, got %s", last.Type)
	}
}

func TestUpdateItemStatusRejectsUnknownStatus(t *testing.T) {
	service, _, _ := newTestService()

	if err := service.UpdateItemStatus(context.Background(), "o", "i", "EATEN"); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestListOrdersCarriesItemsAndFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	service, carts, _ := newTestService()

	fillCart(ctx, carts, "table-1")
	if _, err := service.Submit(ctx, "table-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fillCart(ctx, carts, "table-2")
	paid, err := service.Submit(ctx, "table-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.ConfirmBill(ctx, paid.ID, billing.Config{}, "cash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	open, err := service.ListOrders(ctx, StatusOpen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(open) != 1 || open[0].TableID != "table-1" {
		t.Fatalf("expected one open order for table-1, got %+v", open)
	}

	all, err := service.ListOrders(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(all))
	}
	for _, o := range all {
		if len(o.Items) != 2 {
			t.Fatalf("listed order %s must carry its items, got %d", o.ID, len(o.Items))
		}
	}
}

func TestGetActiveComputesFallbackSubtotal(t *testing.T) {
	ctx := context.Background()
	service, carts, _ := newTestService()

	fillCart(ctx, carts, "table-1")
	if _, err := service.Submit(ctx, "table-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, err := service.GetActive(ctx, "table-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !view.Subtotal.Subtotal.Equal(dec(135000)) {
		t.Fatalf("expected fallback subtotal 135000, got %s", view.Subtotal.Subtotal)
	}
	// bill not confirmed yet — stored total stays zero
	if !view.Order.TotalAmount.Equal(dec(0)) {
		t.Fatalf("expected stored total 0 before confirmation, got %s", view.Order.TotalAmount)
	}
}
