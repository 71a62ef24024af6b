package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBackend struct {
	db *pgxpool.Pool
}

func NewPostgresBackend(db *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (b *PostgresBackend) Load(ctx context.Context, tableID string) ([]LineItem, error) {
	var payload []byte

	err := b.db.QueryRow(ctx, `
		SELECT items
		FROM carts
		WHERE table_id = $1
	`, tableID).Scan(&payload)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var items []LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (b *PostgresBackend) Save(ctx context.Context, tableID string, items []LineItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}

	_, err = b.db.Exec(ctx, `
		INSERT INTO carts (table_id, items, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (table_id)
		DO UPDATE SET items = $2, updated_at = now()
	`, tableID, payload)
	return err
}

func (b *PostgresBackend) Delete(ctx context.Context, tableID string) error {
	_, err := b.db.Exec(ctx, `
		DELETE FROM carts WHERE table_id = $1
	`, tableID)
	return err
}

func (b *PostgresBackend) DeleteIdle(ctx context.Context, olderThan time.Duration) (int64, error) {
	cmd, err := b.db.Exec(ctx, `
		DELETE FROM carts
		WHERE updated_at < now() - ($1 * interval '1 second')
	`, int64(olderThan.Seconds()))
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
