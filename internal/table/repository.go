package table

import "context"

// Repository defines all database operations for dining tables
type Repository interface {
	Create(ctx context.Context, t *DiningTable) error
	List(ctx context.Context) ([]DiningTable, error)
	GetByID(ctx context.Context, id string) (*DiningTable, error)
	Update(ctx context.Context, t *DiningTable) error
	SetActive(ctx context.Context, id string, active bool) error

	// BumpTokenVersion atomically increments the table's token version
	// and returns the new value. Previously printed QR codes stop
	// verifying once this commits.
	BumpTokenVersion(ctx context.Context, id string) (int, error)
}
