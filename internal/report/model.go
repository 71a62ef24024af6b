package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRow aggregates the paid orders of one calendar day.
type DailyRow struct {
	Day           time.Time       `json:"day"`
	OrderCount    int             `json:"order_count"`
	GrossTotal    decimal.Decimal `json:"gross_total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	TaxTotal      decimal.Decimal `json:"tax_total"`
}
