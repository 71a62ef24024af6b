package menu

import "context"

// Repository defines all database operations for the menu
type Repository interface {

	// -------------------------------
	// Public reads (CUSTOMER MENU)
	// -------------------------------

	ListCategories(ctx context.Context, activeOnly bool) ([]Category, error)
	ListItems(ctx context.Context, categoryID string, availableOnly bool) ([]MenuItem, error)

	// Item with its modifier groups and options; the cart add path
	// resolves selections against this.
	GetItemDetail(ctx context.Context, itemID string) (*ItemDetail, error)

	// -------------------------------
	// Admin CRUD
	// -------------------------------

	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error

	CreateItem(ctx context.Context, item *MenuItem) error
	UpdateItem(ctx context.Context, item *MenuItem) error
	SetItemAvailability(ctx context.Context, itemID string, available bool) error
	SetItemImage(ctx context.Context, itemID string, imageURL string) error
	DeleteItem(ctx context.Context, itemID string) error

	CreateModifierGroup(ctx context.Context, g *ModifierGroup) error
	CreateModifierOption(ctx context.Context, o *ModifierOption) error
	DeleteModifierGroup(ctx context.Context, groupID string) error
}
