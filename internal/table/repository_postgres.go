package table

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *DiningTable) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.TokenVersion == 0 {
		t.TokenVersion = 1
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO dining_tables (id, table_number, name, seats, active, token_version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING created_at
	`, t.ID, t.Number, t.Name, t.Seats, t.Active, t.TokenVersion).Scan(&t.CreatedAt)
}

func (r *PostgresRepository) List(ctx context.Context) ([]DiningTable, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, table_number, COALESCE(name, ''), seats, active, token_version, created_at
		FROM dining_tables
		ORDER BY table_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DiningTable
	for rows.Next() {
		var t DiningTable
		if err := rows.Scan(
			&t.ID, &t.Number, &t.Name, &t.Seats,
			&t.Active, &t.TokenVersion, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*DiningTable, error) {
	var t DiningTable

	err := r.db.QueryRow(ctx, `
		SELECT id, table_number, COALESCE(name, ''), seats, active, token_version, created_at
		FROM dining_tables
		WHERE id = $1
	`, id).Scan(
		&t.ID, &t.Number, &t.Name, &t.Seats,
		&t.Active, &t.TokenVersion, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) Update(ctx context.Context, t *DiningTable) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE dining_tables
		SET table_number = $1, name = $2, seats = $3
		WHERE id = $4
	`, t.Number, t.Name, t.Seats, t.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrTableNotFound
	}
	return nil
}

func (r *PostgresRepository) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE dining_tables SET active = $1 WHERE id = $2
	`, active, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrTableNotFound
	}
	return nil
}

func (r *PostgresRepository) BumpTokenVersion(ctx context.Context, id string) (int, error) {
	var version int

	err := r.db.QueryRow(ctx, `
		UPDATE dining_tables
		SET token_version = token_version + 1
		WHERE id = $1
		RETURNING token_version
	`, id).Scan(&version)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrTableNotFound
		}
		return 0, err
	}
	return version, nil
}
