package billing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrNotANumber = errors.New("value is not a number")

// ParseAmount parses a money/percent input coming off the wire.
// Empty means absent and parses to zero; anything else must be numeric.
// Callers decide what to do with the error — customer-facing cart paths
// default to zero so an order is never blocked, the staff bill path rejects.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	return d, nil
}
