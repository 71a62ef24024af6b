package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses
const (
	StatusOpen          = "OPEN"
	StatusBillRequested = "BILL_REQUESTED"
	StatusPaid          = "PAID"
	StatusCancelled     = "CANCELLED"
)

// Order item statuses
const (
	ItemPending   = "PENDING"
	ItemPreparing = "PREPARING"
	ItemServed    = "SERVED"
	ItemCancelled = "CANCELLED"
)

// ItemModifier is the option snapshot carried by an order line, stored
// as JSON alongside the line.
type ItemModifier struct {
	GroupID         string          `json:"group_id"`
	GroupName       string          `json:"group_name"`
	OptionID        string          `json:"option_id"`
	OptionName      string          `json:"option_name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

// OrderItem is one submitted line. Price is the unit price snapshot
// (base + modifiers) taken from the cart at submission.
type OrderItem struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Notes      string          `json:"notes,omitempty"`
	Modifiers  []ItemModifier  `json:"modifiers,omitempty"`
	Status     string          `json:"status"`
}

// Order is the server-side record of a table's active orders, distinct
// from the client-local cart. Bill figures stay zero until staff confirm
// the bill; TaxAmount is the absolute amount, not a percentage.
type Order struct {
	ID            string          `json:"id"`
	TableID       string          `json:"table_id"`
	Status        string          `json:"status"`
	Items         []OrderItem     `json:"items"`
	DiscountType  string          `json:"discount_type,omitempty"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	BillNote      string          `json:"bill_note,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func validItemStatus(status string) bool {
	switch status {
	case ItemPending, ItemPreparing, ItemServed, ItemCancelled:
		return true
	}
	return false
}
