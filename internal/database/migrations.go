package database

import (
	"database/sql"
	"fmt"
)

// Schema creates the cart tables. Statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS carts (
	id UUID PRIMARY KEY,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS cart_items (
	cart_id UUID NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
	product_id VARCHAR(64) NOT NULL,
	title VARCHAR(255) NOT NULL,
	vendor VARCHAR(255) NOT NULL,
	price_cents BIGINT NOT NULL,
	quantity INTEGER NOT NULL CHECK (quantity > 0),
	added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (cart_id, product_id)
);

CREATE INDEX IF NOT EXISTS idx_cart_items_cart_id ON cart_items(cart_id);
`

// RunMigrations creates the necessary database tables
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create cart tables: %w", err)
	}
	return nil
}
