package menu

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOption   = errors.New("unknown modifier option")
	ErrItemUnavailable = errors.New("menu item is not available")
)

// ResolveSelection validates a set of chosen option ids against the item's
// modifier groups and returns the resolved, price-snapshotted selection.
//
// Rules enforced per group:
//   - every option id must belong to one of the item's groups
//   - required groups need at least one selection (or min_selections if higher)
//   - single-select groups accept at most one option
//   - multiple-select groups respect min/max_selections when set
func ResolveSelection(detail *ItemDetail, optionIDs []string) ([]SelectedModifier, error) {
	if !detail.Available {
		return nil, ErrItemUnavailable
	}

	// option id -> (group, option)
	type ownedOption struct {
		group  *ModifierGroup
		option *ModifierOption
	}
	owned := make(map[string]ownedOption)
	for gi := range detail.ModifierGroups {
		g := &detail.ModifierGroups[gi]
		for oi := range g.Options {
			owned[g.Options[oi].ID] = ownedOption{group: g, option: &g.Options[oi]}
		}
	}

	selected := make([]SelectedModifier, 0, len(optionIDs))
	perGroup := make(map[string]int)
	seen := make(map[string]bool)

	for _, id := range optionIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		oo, ok := owned[id]
		if !ok {
			return nil, ErrUnknownOption
		}

		perGroup[oo.group.ID]++
		selected = append(selected, SelectedModifier{
			GroupID:         oo.group.ID,
			GroupName:       oo.group.Name,
			OptionID:        oo.option.ID,
			OptionName:      oo.option.Name,
			PriceAdjustment: oo.option.PriceAdjustment,
		})
	}

	for _, g := range detail.ModifierGroups {
		count := perGroup[g.ID]

		min := g.MinSelections
		if g.IsRequired && min < 1 {
			min = 1
		}
		if count < min {
			return nil, fmt.Errorf("group %q requires at least %d selection(s)", g.Name, min)
		}

		max := g.MaxSelections
		if g.SelectionType == SelectionSingle && (max == 0 || max > 1) {
			max = 1
		}
		if max > 0 && count > max {
			return nil, fmt.Errorf("group %q allows at most %d selection(s)", g.Name, max)
		}
	}

	return selected, nil
}
