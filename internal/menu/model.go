package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

// Selection types for modifier groups
const (
	SelectionSingle   = "single"
	SelectionMultiple = "multiple"
)

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
}

// MenuItem is the staff-managed item. Price is in whole currency units;
// the cart snapshots it at add-time and never reads it back.
type MenuItem struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ModifierGroup struct {
	ID            string           `json:"id"`
	MenuItemID    string           `json:"menu_item_id"`
	Name          string           `json:"name"`
	IsRequired    bool             `json:"is_required"`
	MinSelections int              `json:"min_selections"`
	MaxSelections int              `json:"max_selections"`
	SelectionType string           `json:"selection_type"` // single | multiple
	Options       []ModifierOption `json:"options"`
}

type ModifierOption struct {
	ID              string          `json:"id"`
	GroupID         string          `json:"group_id"`
	Name            string          `json:"name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

// ItemDetail is an item together with its modifier groups,
// the shape the customer menu and the cart add path consume.
type ItemDetail struct {
	MenuItem
	ModifierGroups []ModifierGroup `json:"modifier_groups"`
}

// SelectedModifier is a resolved, price-snapshotted option choice.
type SelectedModifier struct {
	GroupID         string          `json:"group_id"`
	GroupName       string          `json:"group_name"`
	OptionID        string          `json:"option_id"`
	OptionName      string          `json:"option_name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}
