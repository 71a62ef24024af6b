package cart

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Modifier is a price-snapshotted option choice attached to a line.
type Modifier struct {
	GroupID         string          `json:"group_id"`
	GroupName       string          `json:"group_name"`
	OptionID        string          `json:"option_id"`
	OptionName      string          `json:"option_name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

// LineItem is one distinct cart entry: a menu item plus a specific
// modifier selection and note. Name and prices are snapshots taken at
// add-time and never re-fetched.
type LineItem struct {
	LineID         string          `json:"line_id"`
	MenuItemID     string          `json:"menu_item_id"`
	Name           string          `json:"name"`
	BasePrice      decimal.Decimal `json:"base_price"`
	Modifiers      []Modifier      `json:"modifiers,omitempty"`
	ModifiersTotal decimal.Decimal `json:"modifiers_total"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
	LineTotal      decimal.Decimal `json:"line_total"`
	Note           string          `json:"note,omitempty"`
}

// recompute rederives every value owned by the pricing invariants:
// modifiers_total, unit_price and line_total are never mutated directly.
func (l *LineItem) recompute() {
	total := decimal.Zero
	for _, m := range l.Modifiers {
		total = total.Add(m.PriceAdjustment)
	}
	l.ModifiersTotal = total
	l.UnitPrice = l.BasePrice.Add(total)
	l.LineTotal = l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(0)
}

// computeLineID fingerprints the line identity: menu item, the SET of
// selected options (order-independent) and the trimmed note. Two adds with
// the same identity collapse into one line. Fields are length-prefixed so
// option id formats can never collide across field boundaries.
func computeLineID(menuItemID string, modifiers []Modifier, note string) string {
	optionIDs := make([]string, len(modifiers))
	for i, m := range modifiers {
		optionIDs[i] = m.OptionID
	}
	sort.Strings(optionIDs)

	h := sha256.New()
	writeField := func(s string) {
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], uint32(len(s)))
		h.Write(n[:])
		h.Write([]byte(s))
	}

	writeField(menuItemID)
	for _, id := range optionIDs {
		writeField(id)
	}
	writeField(strings.TrimSpace(note))

	return hex.EncodeToString(h.Sum(nil))
}

// Totals are derived reads, recomputed on every access.
type Totals struct {
	CartTotal  decimal.Decimal `json:"cart_total"`
	TotalItems int             `json:"total_items"`
}
