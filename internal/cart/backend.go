package cart

import (
	"context"
	"time"
)

// Backend persists one cart per table session. The store saves the full
// line set on every mutation and loads on init; any load failure is
// treated as an empty cart, never surfaced to the customer.
type Backend interface {
	Load(ctx context.Context, tableID string) ([]LineItem, error)
	Save(ctx context.Context, tableID string, items []LineItem) error
	Delete(ctx context.Context, tableID string) error

	// DeleteIdle removes carts untouched for longer than the given age.
	// Used by the abandoned-session expiry worker.
	DeleteIdle(ctx context.Context, olderThan time.Duration) (int64, error)
}
