package cart

import (
	"context"

	"github.com/nhatduy27/Table-Management-sub000/internal/menu"
)

// MenuReader is the slice of the menu module the cart needs: the item
// detail used to validate selections and snapshot prices.
type MenuReader interface {
	GetItemDetail(ctx context.Context, itemID string) (*menu.ItemDetail, error)
}

type Service struct {
	backend Backend
	menu    MenuReader
}

func NewService(backend Backend, menuReader MenuReader) *Service {
	return &Service{backend: backend, menu: menuReader}
}

// Open loads the cart for a verified table session.
func (s *Service) Open(ctx context.Context, tableID string) *Store {
	return NewStore(ctx, tableID, s.backend)
}

// AddItem resolves the selection against the live menu, snapshots name and
// prices, and adds the line. This is the only cart path that reads the menu;
// everything after add works off the snapshots.
func (s *Service) AddItem(
	ctx context.Context,
	tableID string,
	menuItemID string,
	optionIDs []string,
	quantity int,
	note string,
) (LineItem, error) {

	detail, err := s.menu.GetItemDetail(ctx, menuItemID)
	if err != nil {
		return LineItem{}, err
	}

	selected, err := menu.ResolveSelection(detail, optionIDs)
	if err != nil {
		return LineItem{}, err
	}

	modifiers := make([]Modifier, len(selected))
	for i, sel := range selected {
		modifiers[i] = Modifier{
			GroupID:         sel.GroupID,
			GroupName:       sel.GroupName,
			OptionID:        sel.OptionID,
			OptionName:      sel.OptionName,
			PriceAdjustment: sel.PriceAdjustment,
		}
	}

	store := s.Open(ctx, tableID)
	line := store.AddItem(ctx, detail.ID, detail.Name, detail.Price, modifiers, quantity, note)
	return line, nil
}
