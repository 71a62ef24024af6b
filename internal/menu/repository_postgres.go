package menu

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// PUBLIC READS
// --------------------------------------------------

func (r *PostgresRepository) ListCategories(
	ctx context.Context,
	activeOnly bool,
) ([]Category, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, name, sort_order, active
		FROM menu_categories
		WHERE ($1 = false OR active = true)
		ORDER BY sort_order, name
	`, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder, &c.Active); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) ListItems(
	ctx context.Context,
	categoryID string,
	availableOnly bool,
) ([]MenuItem, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, category_id, name, COALESCE(description, ''),
		       price, COALESCE(image_url, ''), available, created_at
		FROM menu_items
		WHERE ($1 = '' OR category_id::text = $1)
		  AND ($2 = false OR available = true)
		ORDER BY name
	`, categoryID, availableOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MenuItem
	for rows.Next() {
		var it MenuItem
		if err := rows.Scan(
			&it.ID, &it.CategoryID, &it.Name, &it.Description,
			&it.Price, &it.ImageURL, &it.Available, &it.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetItemDetail(
	ctx context.Context,
	itemID string,
) (*ItemDetail, error) {

	detail := &ItemDetail{}

	err := r.db.QueryRow(ctx, `
		SELECT id, category_id, name, COALESCE(description, ''),
		       price, COALESCE(image_url, ''), available, created_at
		FROM menu_items
		WHERE id = $1
	`, itemID).Scan(
		&detail.ID, &detail.CategoryID, &detail.Name, &detail.Description,
		&detail.Price, &detail.ImageURL, &detail.Available, &detail.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT g.id, g.name, g.is_required, g.min_selections,
		       g.max_selections, g.selection_type,
		       o.id, o.name, o.price_adjustment
		FROM modifier_groups g
		LEFT JOIN modifier_options o ON o.group_id = g.id
		WHERE g.menu_item_id = $1
		ORDER BY g.name, o.name
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]*ModifierGroup)
	var ordered []string

	for rows.Next() {
		var g ModifierGroup
		var optID, optName *string
		var optAdjustment *decimal.Decimal

		if err := rows.Scan(
			&g.ID, &g.Name, &g.IsRequired, &g.MinSelections,
			&g.MaxSelections, &g.SelectionType,
			&optID, &optName, &optAdjustment,
		); err != nil {
			return nil, err
		}

		existing, ok := byID[g.ID]
		if !ok {
			g.MenuItemID = itemID
			byID[g.ID] = &g
			ordered = append(ordered, g.ID)
			existing = &g
		}

		// LEFT JOIN: groups without options produce NULL option columns
		if optID != nil {
			opt := ModifierOption{ID: *optID, GroupID: existing.ID}
			if optName != nil {
				opt.Name = *optName
			}
			if optAdjustment != nil {
				opt.PriceAdjustment = *optAdjustment
			}
			existing.Options = append(existing.Options, opt)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, id := range ordered {
		detail.ModifierGroups = append(detail.ModifierGroups, *byID[id])
	}
	return detail, nil
}

// --------------------------------------------------
// ADMIN CRUD
// --------------------------------------------------

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_categories (id, name, sort_order, active)
		VALUES ($1, $2, $3, $4)
	`, c.ID, c.Name, c.SortOrder, c.Active)
	return err
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *Category) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_categories
		SET name = $1, sort_order = $2, active = $3
		WHERE id = $4
	`, c.Name, c.SortOrder, c.Active, c.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}

func (r *PostgresRepository) CreateItem(ctx context.Context, item *MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (id, category_id, name, description, price, image_url, available, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING created_at
	`, item.ID, item.CategoryID, item.Name, item.Description,
		item.Price, item.ImageURL, item.Available,
	).Scan(&item.CreatedAt)
}

func (r *PostgresRepository) UpdateItem(ctx context.Context, item *MenuItem) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET category_id = $1, name = $2, description = $3,
		    price = $4, available = $5
		WHERE id = $6
	`, item.CategoryID, item.Name, item.Description,
		item.Price, item.Available, item.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresRepository) SetItemAvailability(
	ctx context.Context,
	itemID string,
	available bool,
) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items SET available = $1 WHERE id = $2
	`, available, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresRepository) SetItemImage(
	ctx context.Context,
	itemID string,
	imageURL string,
) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items SET image_url = $1 WHERE id = $2
	`, imageURL, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, itemID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM modifier_options
		WHERE group_id IN (SELECT id FROM modifier_groups WHERE menu_item_id = $1)
	`, itemID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		DELETE FROM modifier_groups WHERE menu_item_id = $1
	`, itemID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		DELETE FROM menu_items WHERE id = $1
	`, itemID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) CreateModifierGroup(ctx context.Context, g *ModifierGroup) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO modifier_groups
			(id, menu_item_id, name, is_required, min_selections, max_selections, selection_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, g.ID, g.MenuItemID, g.Name, g.IsRequired,
		g.MinSelections, g.MaxSelections, g.SelectionType)
	return err
}

func (r *PostgresRepository) CreateModifierOption(ctx context.Context, o *ModifierOption) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO modifier_options (id, group_id, name, price_adjustment)
		VALUES ($1, $2, $3, $4)
	`, o.ID, o.GroupID, o.Name, o.PriceAdjustment)
	return err
}

func (r *PostgresRepository) DeleteModifierGroup(ctx context.Context, groupID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM modifier_options WHERE group_id = $1
	`, groupID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		DELETE FROM modifier_groups WHERE id = $1
	`, groupID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
