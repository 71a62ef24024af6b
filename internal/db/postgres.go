package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// STAFF
	// -------------------------------
	staffSQL := `
		CREATE TABLE IF NOT EXISTS staff (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'STAFF',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, staffSQL); err != nil {
		return err
	}

	// -------------------------------
	// DINING TABLES
	// -------------------------------
	tablesSQL := `
		CREATE TABLE IF NOT EXISTS dining_tables (
			id UUID PRIMARY KEY,
			table_number INTEGER UNIQUE NOT NULL,
			name VARCHAR(255),
			seats INTEGER NOT NULL DEFAULT 2,
			active BOOLEAN NOT NULL DEFAULT true,
			token_version INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, tablesSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU
	// -------------------------------
	menuSQL := `
		CREATE TABLE IF NOT EXISTS menu_categories (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT true
		);

		CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			category_id UUID NOT NULL REFERENCES menu_categories(id),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			price NUMERIC(12, 0) NOT NULL,
			image_url VARCHAR(500),
			available BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS modifier_groups (
			id UUID PRIMARY KEY,
			menu_item_id UUID NOT NULL REFERENCES menu_items(id),
			name VARCHAR(255) NOT NULL,
			is_required BOOLEAN NOT NULL DEFAULT false,
			min_selections INTEGER NOT NULL DEFAULT 0,
			max_selections INTEGER NOT NULL DEFAULT 0,
			selection_type VARCHAR(20) NOT NULL DEFAULT 'multiple'
		);

		CREATE TABLE IF NOT EXISTS modifier_options (
			id UUID PRIMARY KEY,
			group_id UUID NOT NULL REFERENCES modifier_groups(id),
			name VARCHAR(255) NOT NULL,
			price_adjustment NUMERIC(12, 0) NOT NULL DEFAULT 0
		)
	`
	if _, err := db.Exec(ctx, menuSQL); err != nil {
		return err
	}

	// -------------------------------
	// CARTS
	// -------------------------------
	cartsSQL := `
		CREATE TABLE IF NOT EXISTS carts (
			table_id UUID PRIMARY KEY,
			items JSONB NOT NULL DEFAULT '[]',
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, cartsSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			table_id UUID NOT NULL REFERENCES dining_tables(id),
			status VARCHAR(50) NOT NULL DEFAULT 'OPEN',
			discount_type VARCHAR(20),
			discount_value NUMERIC(12, 2) NOT NULL DEFAULT 0,
			tax_amount NUMERIC(12, 0) NOT NULL DEFAULT 0,
			total_amount NUMERIC(12, 0) NOT NULL DEFAULT 0,
			bill_note TEXT,
			payment_method VARCHAR(50),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id),
			menu_item_id UUID NOT NULL,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(12, 0) NOT NULL,
			quantity INTEGER NOT NULL,
			notes TEXT,
			modifiers JSONB NOT NULL DEFAULT '[]',
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING'
		)
	`
	if _, err := db.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	// -------------------------------
	// LOOKUP INDEXES
	// -------------------------------
	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_orders_table_status
			ON orders (table_id, status);

		CREATE INDEX IF NOT EXISTS idx_order_items_order
			ON order_items (order_id);

		CREATE INDEX IF NOT EXISTS idx_menu_items_category
			ON menu_items (category_id)
	`
	if _, err := db.Exec(ctx, indexSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
