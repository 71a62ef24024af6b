package menu

import (
	"testing"

	"github.com/shopspring/decimal"
)

func sampleDetail() *ItemDetail {
	return &ItemDetail{
		MenuItem: MenuItem{
			ID:        "item-1",
			Name:      "Pho Bo",
			Price:     decimal.NewFromInt(50000),
			Available: true,
		},
		ModifierGroups: []ModifierGroup{
			{
				ID:            "size",
				Name:          "Size",
				IsRequired:    true,
				SelectionType: SelectionSingle,
				Options: []ModifierOption{
					{ID: "size-s", Name: "Small", PriceAdjustment: decimal.Zero},
					{ID: "size-l", Name: "Large", PriceAdjustment: decimal.NewFromInt(10000)},
				},
			},
			{
				ID:            "toppings",
				Name:          "Toppings",
				SelectionType: SelectionMultiple,
				MaxSelections: 2,
				Options: []ModifierOption{
					{ID: "top-egg", Name: "Egg", PriceAdjustment: decimal.NewFromInt(5000)},
					{ID: "top-beef", Name: "Extra Beef", PriceAdjustment: decimal.NewFromInt(15000)},
					{ID: "top-herb", Name: "Herbs", PriceAdjustment: decimal.Zero},
				},
			},
		},
	}
}

func TestResolveSelectionSnapshotsPrices(t *testing.T) {
	selected, err := ResolveSelection(sampleDetail(), []string{"size-l", "top-egg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(selected) != 2 {
		t.Fatalf("expected 2 modifiers, got %d", len(selected))
	}
	if selected[0].GroupName != "Size" || selected[0].OptionName != "Large" {
		t.Fatalf("unexpected snapshot: %+v", selected[0])
	}
	if !selected[0].PriceAdjustment.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected adjustment 10000, got %s", selected[0].PriceAdjustment)
	}
}

func TestResolveSelectionRequiredGroupMissing(t *testing.T) {
	_, err := ResolveSelection(sampleDetail(), []string{"top-egg"})
	if err == nil {
		t.Fatal("expected error when required group has no selection")
	}
}

func TestResolveSelectionSingleGroupCap(t *testing.T) {
	_, err := ResolveSelection(sampleDetail(), []string{"size-s", "size-l"})
	if err == nil {
		t.Fatal("expected error for two selections in a single-select group")
	}
}

func TestResolveSelectionMaxSelections(t *testing.T) {
	_, err := ResolveSelection(sampleDetail(), []string{"size-s", "top-egg", "top-beef", "top-herb"})
	if err == nil {
		t.Fatal("expected error when max_selections exceeded")
	}
}

func TestResolveSelectionUnknownOption(t *testing.T) {
	_, err := ResolveSelection(sampleDetail(), []string{"size-s", "nope"})
	if err != ErrUnknownOption {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

func TestResolveSelectionUnavailableItem(t *testing.T) {
	detail := sampleDetail()
	detail.Available = false

	_, err := ResolveSelection(detail, []string{"size-s"})
	if err != ErrItemUnavailable {
		t.Fatalf("expected ErrItemUnavailable, got %v", err)
	}
}

func TestResolveSelectionDuplicateOptionCollapses(t *testing.T) {
	selected, err := ResolveSelection(sampleDetail(), []string{"size-s", "top-egg", "top-egg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("expected duplicates collapsed to 2 modifiers, got %d", len(selected))
	}
}
