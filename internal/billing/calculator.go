package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculate turns order lines plus the discount/tax config into a bill.
// PURE business logic (NO db / NO http)
//
// Cancelled lines contribute zero everywhere. Percent discounts are clamped
// to 100; fixed discounts are not clamped to the subtotal. The final total
// is floored at zero — that floor is the one invariant that always holds.
func Calculate(lines []Line, cfg Config) Result {
	subtotal := decimal.Zero

	for _, line := range lines {
		if strings.EqualFold(line.Status, "cancelled") {
			continue
		}
		unitPrice := line.BasePrice.Add(line.ModifiersTotal)
		subtotal = subtotal.Add(
			unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(0),
		)
	}

	discount := decimal.Zero
	switch cfg.DiscountType {
	case DiscountPercent:
		pct := cfg.DiscountValue
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
		if pct.IsNegative() {
			pct = decimal.Zero
		}
		discount = subtotal.Mul(pct).Div(hundred).Round(0)
	case DiscountFixed:
		discount = cfg.DiscountValue.Round(0)
	}

	afterDiscount := subtotal.Sub(discount)
	tax := afterDiscount.Mul(cfg.TaxPercent).Div(hundred).Round(0)

	final := afterDiscount.Add(tax)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return Result{
		Subtotal:              subtotal,
		DiscountAmount:        discount,
		SubtotalAfterDiscount: afterDiscount,
		TaxAmount:             tax,
		FinalTotal:            final,
	}
}
