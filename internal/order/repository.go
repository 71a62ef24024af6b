package order

import (
	"context"

	"github.com/shopspring/decimal"
)

// BillUpdate carries the staff-confirmed bill figures. TaxAmount and
// TotalAmount are absolute amounts computed by the bill calculator.
type BillUpdate struct {
	DiscountType  string
	DiscountValue decimal.Decimal
	TaxAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	Note          string
	PaymentMethod string
}

// Repository defines all database operations for orders
type Repository interface {

	// -------------------------------
	// Lifecycle
	// -------------------------------

	Create(ctx context.Context, o *Order) error

	// Open order for a table (OPEN or BILL_REQUESTED), with items.
	GetOpenByTable(ctx context.Context, tableID string) (*Order, error)

	GetByID(ctx context.Context, orderID string) (*Order, error)

	AppendItems(ctx context.Context, orderID string, items []OrderItem) error

	// -------------------------------
	// Staff views & transitions
	// -------------------------------

	ListByStatus(ctx context.Context, status string) ([]Order, error)

	UpdateItemStatus(ctx context.Context, orderID, itemID, status string) error

	UpdateStatus(ctx context.Context, orderID, status string) error

	// ConfirmBill atomically writes the bill figures and flips the
	// order to PAID.
	ConfirmBill(ctx context.Context, orderID string, bill BillUpdate) error
}
