package order

import (
	"context"
	"encoding/json"
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

// --------------------------------------------------
// CREATE ORDER (WITH ITEMS, ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (id, table_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING created_at, updated_at
	`, o.ID, o.TableID, o.Status).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range o.Items {
		if err := insertItem(ctx, tx, o.ID, &o.Items[i]); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func insertItem(ctx context.Context, tx pgx.Tx, orderID string, item *OrderItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.OrderID = orderID

	modifiers, err := json.Marshal(item.Modifiers)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO order_items
			(id, order_id, menu_item_id, name, price, quantity, notes, modifiers, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, item.ID, orderID, item.MenuItemID, item.Name,
		item.Price, item.Quantity, item.Notes, modifiers, item.Status)
	return err
}

// --------------------------------------------------
// READS
// --------------------------------------------------

func (r *PostgresRepository) GetOpenByTable(ctx context.Context, tableID string) (*Order, error) {
	return r.getOne(ctx, `
		SELECT id, table_id, status,
		       COALESCE(discount_type, ''), discount_value, tax_amount, total_amount,
		       COALESCE(bill_note, ''), COALESCE(payment_method, ''),
		       created_at, updated_at
		FROM orders
		WHERE table_id = $1 AND status IN ('OPEN', 'BILL_REQUESTED')
		ORDER BY created_at DESC
		LIMIT 1
	`, tableID)
}

func (r *PostgresRepository) GetByID(ctx context.Context, orderID string) (*Order, error) {
	return r.getOne(ctx, `
		SELECT id, table_id, status,
		       COALESCE(discount_type, ''), discount_value, tax_amount, total_amount,
		       COALESCE(bill_note, ''), COALESCE(payment_method, ''),
		       created_at, updated_at
		FROM orders
		WHERE id = $1
	`, orderID)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*Order, error) {
	o := &Order{}

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&o.ID, &o.TableID, &o.Status,
		&o.DiscountType, &o.DiscountValue, &o.TaxAmount, &o.TotalAmount,
		&o.BillNote, &o.PaymentMethod,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, menu_item_id, name, price, quantity,
		       COALESCE(notes, ''), modifiers, status
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(rows pgx.Rows) (OrderItem, error) {
	var item OrderItem
	var modifiers []byte

	if err := rows.Scan(
		&item.ID, &item.OrderID, &item.MenuItemID, &item.Name,
		&item.Price, &item.Quantity, &item.Notes, &modifiers, &item.Status,
	); err != nil {
		return OrderItem{}, err
	}

	if len(modifiers) > 0 {
		if err := json.Unmarshal(modifiers, &item.Modifiers); err != nil {
			return OrderItem{}, err
		}
	}
	return item, nil
}

// ListByStatus loads the orders in one query and their items in a second
// batched one, instead of a query per order.
func (r *PostgresRepository) ListByStatus(ctx context.Context, status string) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, table_id, status,
		       COALESCE(discount_type, ''), discount_value, tax_amount, total_amount,
		       COALESCE(bill_note, ''), COALESCE(payment_method, ''),
		       created_at, updated_at
		FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at
	`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	index := make(map[string]int)

	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.TableID, &o.Status,
			&o.DiscountType, &o.DiscountValue, &o.TaxAmount, &o.TotalAmount,
			&o.BillNote, &o.PaymentMethod,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		index[o.ID] = len(out)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}

	ids := make([]string, len(out))
	for i := range out {
		ids[i] = out[i].ID
	}

	itemRows, err := r.db.Query(ctx, `
		SELECT id, order_id, menu_item_id, name, price, quantity,
		       COALESCE(notes, ''), modifiers, status
		FROM order_items
		WHERE order_id = ANY($1::uuid[])
		ORDER BY order_id, id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		item, err := scanItem(itemRows)
		if err != nil {
			return nil, err
		}
		out[index[item.OrderID]].Items = append(out[index[item.OrderID]].Items, item)
	}
	return out, itemRows.Err()
}

// --------------------------------------------------
// APPEND ITEMS TO OPEN ORDER
// --------------------------------------------------
func (r *PostgresRepository) AppendItems(ctx context.Context, orderID string, items []OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range items {
		if err := insertItem(ctx, tx, orderID, &items[i]); err != nil {
			return err
		}
	}

	cmd, err := tx.Exec(ctx, `
		UPDATE orders SET updated_at = now() WHERE id = $1
	`, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// STATUS TRANSITIONS
// --------------------------------------------------

func (r *PostgresRepository) UpdateItemStatus(ctx context.Context, orderID, itemID, status string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE order_items
		SET status = $1
		WHERE id = $2 AND order_id = $3
	`, status, itemID, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	_, err = r.db.Exec(ctx, `
		UPDATE orders SET updated_at = now() WHERE id = $1
	`, orderID)
	return err
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $1, updated_at = now()
		WHERE id = $2
	`, status, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// --------------------------------------------------
// CONFIRM BILL (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) ConfirmBill(ctx context.Context, orderID string, bill BillUpdate) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE orders
		SET discount_type = $1,
		    discount_value = $2,
		    tax_amount = $3,
		    total_amount = $4,
		    bill_note = $5,
		    payment_method = $6,
		    status = 'PAID',
		    updated_at = now()
		WHERE id = $7
	`, bill.DiscountType, bill.DiscountValue, bill.TaxAmount,
		bill.TotalAmount, bill.Note, bill.PaymentMethod, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}
