package billing

import "github.com/shopspring/decimal"

// Discount types accepted on bill confirmation
const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"
)

// Line is one order line as the calculator sees it.
// Prices are snapshots in whole currency units.
type Line struct {
	Name           string          `json:"name"`
	BasePrice      decimal.Decimal `json:"base_price"`
	ModifiersTotal decimal.Decimal `json:"modifiers_total"`
	Quantity       int             `json:"quantity"`
	Status         string          `json:"status"`
}

// Config carries the staff-entered discount and tax inputs.
// DiscountValue for "percent" is clamped to [0,100] at application time;
// "fixed" is applied verbatim. TaxPercent is NOT clamped (staff is trusted) —
// the final total floor is the only unconditional guard.
type Config struct {
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	TaxPercent    decimal.Decimal `json:"tax_percent"`
	Note          string          `json:"note"`
}

// Result is derived, never stored as-is; ConfirmBill snapshots the
// absolute amounts it needs.
type Result struct {
	Subtotal              decimal.Decimal `json:"subtotal"`
	DiscountAmount        decimal.Decimal `json:"discount_amount"`
	SubtotalAfterDiscount decimal.Decimal `json:"subtotal_after_discount"`
	TaxAmount             decimal.Decimal `json:"tax_amount"`
	FinalTotal            decimal.Decimal `json:"final_total"`
}
