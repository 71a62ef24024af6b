package report

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Daily aggregates paid orders per calendar day inside [from, to).
// The discount total is derived per order: the non-cancelled item
// subtotal plus tax minus what was actually charged.
func (r *Repository) Daily(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]DailyRow, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			date_trunc('day', o.updated_at) AS day,
			COUNT(*) AS order_count,
			COALESCE(SUM(o.total_amount), 0) AS gross_total,
			COALESCE(SUM(li.subtotal + o.tax_amount - o.total_amount), 0) AS discount_total,
			COALESCE(SUM(o.tax_amount), 0) AS tax_total
		FROM orders o
		JOIN LATERAL (
			SELECT COALESCE(SUM(price * quantity), 0) AS subtotal
			FROM order_items
			WHERE order_id = o.id AND status <> 'CANCELLED'
		) li ON true
		WHERE o.status = 'PAID'
		  AND o.updated_at >= $1
		  AND o.updated_at < $2
		GROUP BY 1
		ORDER BY 1
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []DailyRow

	for rows.Next() {
		var row DailyRow
		if err := rows.Scan(
			&row.Day,
			&row.OrderCount,
			&row.GrossTotal,
			&row.DiscountTotal,
			&row.TaxTotal,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
