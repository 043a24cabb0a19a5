package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/models"
)

// PostgresCartRepository handles database operations for carts
type PostgresCartRepository struct {
	db *sql.DB
}

// NewPostgresCartRepository creates a cart repository on the given connection
func NewPostgresCartRepository(db *sql.DB) *PostgresCartRepository {
	return &PostgresCartRepository{
		db: db,
	}
}

// CreateCart creates a new, empty cart
func (r *PostgresCartRepository) CreateCart(cart *models.Cart) error {
	query := `
		INSERT INTO carts (id, created_at, updated_at)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.Exec(query, cart.ID, cart.CreatedAt, cart.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// GetCart retrieves a cart and its lines in the order they were first added
func (r *PostgresCartRepository) GetCart(id string) (*models.Cart, error) {
	cart := &models.Cart{}
	err := r.db.QueryRow(
		`SELECT id, created_at, updated_at FROM carts WHERE id = $1`, id,
	).Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, models.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	rows, err := r.db.Query(`
		SELECT product_id, title, vendor, price_cents, quantity
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY added_at, product_id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ProductID, &item.Title, &item.Vendor, &item.PriceCents, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cart items: %w", err)
	}

	return cart, nil
}

// AddItem adds item.Quantity units to the cart line, inserting it when missing.
// The increment happens in the database so concurrent adds are not lost.
func (r *PostgresCartRepository) AddItem(cartID string, item models.CartItem) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	result, err := tx.Exec(`UPDATE carts SET updated_at = $1 WHERE id = $2`, now, cartID)
	if err != nil {
		return fmt.Errorf("failed to touch cart: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrCartNotFound
	}

	_, err = tx.Exec(`
		INSERT INTO cart_items (cart_id, product_id, title, vendor, price_cents, quantity, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`, cartID, item.ProductID, item.Title, item.Vendor, item.PriceCents, item.Quantity, now)
	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cart item: %w", err)
	}
	return nil
}
