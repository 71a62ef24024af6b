package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func largeMod() []Modifier {
	return []Modifier{
		{GroupID: "size", GroupName: "Size", OptionID: "size-l", OptionName: "Large", PriceAdjustment: dec(10000)},
	}
}

func newTestStore(t *testing.T) (*Store, *InMemoryBackend) {
	t.Helper()
	backend := NewInMemoryBackend()
	return NewStore(context.Background(), "table-1", backend), backend
}

func TestAddSameConfigurationMergesIntoOneLine(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.AddItem(ctx, "pho", "Pho Bo", dec(50000), largeMod(), 2, "")
	store.AddItem(ctx, "pho", "Pho Bo", dec(50000), largeMod(), 1, "")

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
	// unit price 60000 x 3
	if !items[0].LineTotal.Equal(dec(180000)) {
		t.Fatalf("expected line total 180000, got %s", items[0].LineTotal)
	}
}

func TestDifferentModifiersOrNoteMakeDistinctLines(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.AddItem(ctx, "pho", "Pho Bo", dec(50000), largeMod(), 1, "")
	store.AddItem(ctx, "pho", "Pho Bo", dec(50000), nil, 1, "")
	store.AddItem(ctx, "pho", "Pho Bo", dec(50000), nil, 1, "no onions")

	if len(store.Items()) != 3 {
		t.Fatalf("expected 3 distinct lines, got %d", len(store.Items()))
	}
}

func TestModifierOrderDoesNotChangeIdentity(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	a := Modifier{OptionID: "opt-a", PriceAdjustment: dec(1000)}
	b := Modifier{OptionID: "opt-b", PriceAdjustment: dec(2000)}

	store.AddItem(ctx, "pho", "Pho Bo", dec(50000), []Modifier{a, b}, 1, "")
	store.AddItem(ctx, "pho", "Pho Bo", dec(50000), []Modifier{b, a}, 1, "")

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected order-independent identity, got %d lines", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	line := store.AddItem(ctx, "pho", "Pho Bo", dec(50000), nil, 2, "")
	store.UpdateQuantity(ctx, line.LineID, 0)

	if len(store.Items()) != 0 {
		t.Fatal("line with quantity 0 must be removed, not retained")
	}
}

func TestUpdateQuantityUnknownLineIsNoOp(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.AddItem(ctx, "pho", "Pho Bo", dec(50000), nil, 1, "")
	store.UpdateQuantity(ctx, "no-such-line", 5)

	items := store.Items()
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("unknown line id must not affect the cart: %+v", items)
	}
}

func TestTotalsConsistentAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	checkConsistency := func() {
		t.Helper()
		expected := dec(0)
		for _, line := range store.Items() {
			want := line.UnitPrice.Mul(dec(int64(line.Quantity))).Round(0)
			if !line.LineTotal.Equal(want) {
				t.Fatalf("line total drifted: have %s, want %s", line.LineTotal, want)
			}
			expected = expected.Add(line.LineTotal)
		}
		if !store.Totals().CartTotal.Equal(expected) {
			t.Fatalf("cart total %s != sum of line totals %s", store.Totals().CartTotal, expected)
		}
	}

	first := store.AddItem(ctx, "pho", "Pho Bo", dec(50000), largeMod(), 2, "")
	checkConsistency()

	store.AddItem(ctx, "tea", "Iced Tea", dec(15000), nil, 3, "")
	checkConsistency()

	store.UpdateQuantity(ctx, first.LineID, 5)
	checkConsistency()

	store.UpdateNote(ctx, first.LineID, "extra herbs")
	checkConsistency()

	store.RemoveItem(ctx, first.LineID)
	checkConsistency()
}

func TestEndToEndPricingExample(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	// base 50000 + modifier 10000, quantity 2
	line := store.AddItem(ctx, "pho", "Pho Bo", dec(50000), largeMod(), 2, "")

	if !line.UnitPrice.Equal(dec(60000)) {
		t.Fatalf("expected unit price 60000, got %s", line.UnitPrice)
	}
	if !line.LineTotal.Equal(dec(120000)) {
		t.Fatalf("expected line total 120000, got %s", line.LineTotal)
	}

	// re-adding one unit of the same configuration increments, not appends
	line = store.AddItem(ctx, "pho", "Pho Bo", dec(50000), largeMod(), 1, "")

	if line.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", line.Quantity)
	}
	if !line.LineTotal.Equal(dec(180000)) {
		t.Fatalf("expected line total 180000, got %s", line.LineTotal)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := NewInMemoryBackend()

	store := NewStore(ctx, "table-7", backend)
	store.AddItem(ctx, "pho", "Pho Bo", dec(50000), largeMod(), 2, "less salt")
	store.AddItem(ctx, "tea", "Iced Tea", dec(15000), nil, 1, "")

	reloaded := NewStore(ctx, "table-7", backend)

	original := store.Items()
	restored := reloaded.Items()
	if len(restored) != len(original) {
		t.Fatalf("expected %d lines after reload, got %d", len(original), len(restored))
	}
	for i := range original {
		if restored[i].LineID != original[i].LineID {
			t.Fatalf("line id changed across reload: %s != %s", restored[i].LineID, original[i].LineID)
		}
		if restored[i].Quantity != original[i].Quantity {
			t.Fatalf("quantity changed across reload")
		}
		if !restored[i].LineTotal.Equal(original[i].LineTotal) {
			t.Fatalf("line total changed across reload")
		}
	}
	if !reloaded.Totals().CartTotal.Equal(store.Totals().CartTotal) {
		t.Fatal("cart total changed across reload")
	}
}

func TestCartsAreScopedPerTable(t *testing.T) {
	ctx := context.Background()
	backend := NewInMemoryBackend()

	NewStore(ctx, "table-1", backend).AddItem(ctx, "pho", "Pho Bo", dec(50000), nil, 1, "")

	other := NewStore(ctx, "table-2", backend)
	if len(other.Items()) != 0 {
		t.Fatal("carts must not cross-contaminate between tables")
	}
}

func TestCorruptPayloadFallsBackToEmptyCart(t *testing.T) {
	ctx := context.Background()
	backend := NewInMemoryBackend()

	store := NewStore(ctx, "table-9", backend)
	store.AddItem(ctx, "pho", "Pho Bo", dec(50000), nil, 1, "")

	backend.Corrupt("table-9")

	reloaded := NewStore(ctx, "table-9", backend)
	if len(reloaded.Items()) != 0 {
		t.Fatal("corrupt stored cart must load as empty")
	}
}

func TestClearPersistsEmptyState(t *testing.T) {
	ctx := context.Background()
	backend := NewInMemoryBackend()

	store := NewStore(ctx, "table-3", backend)
	store.AddItem(ctx, "pho", "Pho Bo", dec(50000), nil, 2, "")
	store.Clear(ctx)

	reloaded := NewStore(ctx, "table-3", backend)
	if len(reloaded.Items()) != 0 {
		t.Fatal("cleared cart must stay empty after reload")
	}
}
