package repository

import (
	"fmt"
	"sync"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/models"
)

// MemoryCartRepository keeps carts in process memory
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

// NewMemoryCartRepository creates an empty in-memory cart repository
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string]*models.Cart),
	}
}

// CreateCart stores a new cart
func (r *MemoryCartRepository) CreateCart(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.carts[cart.ID]; exists {
		return fmt.Errorf("cart %s already exists", cart.ID)
	}
	r.carts[cart.ID] = copyCart(cart)
	return nil
}

// GetCart returns a copy of the cart
func (r *MemoryCartRepository) GetCart(id string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, models.ErrCartNotFound
	}
	return copyCart(cart), nil
}

// AddItem adds item.Quantity units to the cart line, inserting it when missing
func (r *MemoryCartRepository) AddItem(cartID string, item models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[cartID]
	if !ok {
		return models.ErrCartNotFound
	}
	cart.AddItem(item)
	return nil
}

func copyCart(c *models.Cart) *models.Cart {
	out := *c
	out.Items = append([]models.CartItem(nil), c.Items...)
	return &out
}
