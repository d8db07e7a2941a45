package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'work_order_status') THEN
			CREATE TYPE work_order_status AS ENUM ('available', 'taken', 'started', 'paused', 'completed', 'invoiced');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'quote_status') THEN
			CREATE TYPE quote_status AS ENUM ('draft', 'sent', 'accepted', 'rejected', 'revised');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		first_name VARCHAR(128) NOT NULL,
		last_name VARCHAR(128) NOT NULL,
		role VARCHAR(32) NOT NULL,
		phone VARCHAR(64),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_login TIMESTAMPTZ
	);`,
	`CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		position BIGSERIAL,
		type VARCHAR(16) NOT NULL,
		name VARCHAR(255) NOT NULL,
		org_number VARCHAR(64),
		person_number VARCHAR(64),
		street VARCHAR(255) NOT NULL DEFAULT '',
		postal_code VARCHAR(32) NOT NULL DEFAULT '',
		city VARCHAR(128) NOT NULL DEFAULT '',
		country VARCHAR(128) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(64) NOT NULL DEFAULT '',
		website VARCHAR(255),
		payment_terms INT,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		first_name VARCHAR(128) NOT NULL,
		last_name VARCHAR(128) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(64) NOT NULL DEFAULT '',
		mobile VARCHAR(64),
		title VARCHAR(128),
		is_primary BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_customer_id ON contacts (customer_id);`,
	`CREATE TABLE IF NOT EXISTS materials (
		id TEXT PRIMARY KEY,
		position BIGSERIAL,
		article_number VARCHAR(64) NOT NULL DEFAULT '',
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		unit VARCHAR(32) NOT NULL DEFAULT '',
		price NUMERIC(18,4) NOT NULL DEFAULT 0,
		purchase_price NUMERIC(18,4),
		supplier VARCHAR(32) NOT NULL,
		supplier_article_number VARCHAR(64),
		category VARCHAR(128) NOT NULL DEFAULT '',
		subcategory VARCHAR(128),
		stock_quantity NUMERIC(18,3),
		min_stock_level NUMERIC(18,3),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS work_orders (
		id TEXT PRIMARY KEY,
		position BIGSERIAL,
		order_number VARCHAR(32) NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status work_order_status NOT NULL DEFAULT 'available',
		priority VARCHAR(16) NOT NULL DEFAULT 'medium',
		customer_id TEXT NOT NULL,
		customer JSONB NOT NULL,
		contact_id TEXT,
		contact JSONB,
		assigned_to TEXT,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		scheduled_date TIMESTAMPTZ,
		started_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ,
		estimated_hours NUMERIC(10,2) NOT NULL DEFAULT 0,
		actual_hours NUMERIC(10,2) NOT NULL DEFAULT 0,
		material_cost NUMERIC(18,2) NOT NULL DEFAULT 0,
		labor_cost NUMERIC(18,2) NOT NULL DEFAULT 0,
		travel_cost NUMERIC(18,2) NOT NULL DEFAULT 0,
		total_amount NUMERIC(18,2) NOT NULL DEFAULT 0,
		quote_id TEXT,
		is_invoiced BOOLEAN NOT NULL DEFAULT FALSE,
		invoice_date TIMESTAMPTZ,
		notes TEXT NOT NULL DEFAULT '',
		internal_notes TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_work_orders_order_number ON work_orders (order_number);`,
	`CREATE INDEX IF NOT EXISTS idx_work_orders_status ON work_orders (status);`,
	`CREATE TABLE IF NOT EXISTS work_order_materials (
		id TEXT PRIMARY KEY,
		work_order_id TEXT NOT NULL REFERENCES work_orders(id) ON DELETE CASCADE,
		material_id TEXT NOT NULL,
		material JSONB NOT NULL,
		quantity NUMERIC(18,3) NOT NULL,
		unit_price NUMERIC(18,4) NOT NULL,
		total_price NUMERIC(18,2) NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		position BIGSERIAL
	);`,
	`CREATE TABLE IF NOT EXISTS work_order_travels (
		id TEXT PRIMARY KEY,
		work_order_id TEXT NOT NULL REFERENCES work_orders(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		start_time TIMESTAMPTZ,
		end_time TIMESTAMPTZ,
		distance_km NUMERIC(10,2) NOT NULL DEFAULT 0,
		travel_time_minutes INT NOT NULL DEFAULT 0,
		cost NUMERIC(18,2) NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		position BIGSERIAL
	);`,
	`CREATE TABLE IF NOT EXISTS work_order_time_entries (
		id TEXT PRIMARY KEY,
		work_order_id TEXT NOT NULL REFERENCES work_orders(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time TIMESTAMPTZ,
		break_minutes INT NOT NULL DEFAULT 0,
		total_minutes INT NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		is_billable BOOLEAN NOT NULL DEFAULT TRUE,
		hourly_rate NUMERIC(18,2) NOT NULL DEFAULT 0,
		total_cost NUMERIC(18,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		position BIGSERIAL
	);`,
	`CREATE TABLE IF NOT EXISTS work_order_images (
		id TEXT PRIMARY KEY,
		work_order_id TEXT NOT NULL REFERENCES work_orders(id) ON DELETE CASCADE,
		url TEXT NOT NULL,
		thumbnail_url TEXT NOT NULL DEFAULT '',
		caption TEXT NOT NULL DEFAULT '',
		uploaded_by TEXT NOT NULL DEFAULT '',
		uploaded_at TIMESTAMPTZ NOT NULL,
		file_size BIGINT NOT NULL DEFAULT 0,
		mime_type VARCHAR(128) NOT NULL DEFAULT '',
		position BIGSERIAL
	);`,
	`CREATE TABLE IF NOT EXISTS work_order_documents (
		id TEXT PRIMARY KEY,
		work_order_id TEXT NOT NULL REFERENCES work_orders(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		url TEXT NOT NULL,
		file_type VARCHAR(64) NOT NULL DEFAULT '',
		file_size BIGINT NOT NULL DEFAULT 0,
		uploaded_by TEXT NOT NULL DEFAULT '',
		uploaded_at TIMESTAMPTZ NOT NULL,
		position BIGSERIAL
	);`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id TEXT PRIMARY KEY,
		position BIGSERIAL,
		quote_number VARCHAR(32) NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status quote_status NOT NULL DEFAULT 'draft',
		customer_id TEXT NOT NULL,
		customer JSONB NOT NULL,
		contact_id TEXT,
		contact JSONB,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		valid_until TIMESTAMPTZ NOT NULL,
		sent_at TIMESTAMPTZ,
		accepted_at TIMESTAMPTZ,
		rejected_at TIMESTAMPTZ,
		rejection_reason TEXT,
		subtotal NUMERIC(18,2) NOT NULL DEFAULT 0,
		discount_percent NUMERIC(5,2) NOT NULL DEFAULT 0,
		discount_amount NUMERIC(18,2) NOT NULL DEFAULT 0,
		vat_percent NUMERIC(5,2) NOT NULL DEFAULT 0,
		vat_amount NUMERIC(18,2) NOT NULL DEFAULT 0,
		total_amount NUMERIC(18,2) NOT NULL DEFAULT 0,
		work_order_id TEXT,
		notes TEXT NOT NULL DEFAULT '',
		internal_notes TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_quotes_quote_number ON quotes (quote_number);`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_status ON quotes (status);`,
	`CREATE TABLE IF NOT EXISTS quote_items (
		id TEXT PRIMARY KEY,
		quote_id TEXT NOT NULL REFERENCES quotes(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		quantity NUMERIC(18,3) NOT NULL,
		unit VARCHAR(32) NOT NULL DEFAULT '',
		unit_price NUMERIC(18,4) NOT NULL,
		discount_percent NUMERIC(5,2) NOT NULL DEFAULT 0,
		total_price NUMERIC(18,2) NOT NULL,
		material_id TEXT,
		position BIGSERIAL
	);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
