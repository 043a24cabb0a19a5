package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Domain errors
var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrCartNotFound   = errors.New("cart not found")
	ErrInvalidCartID  = errors.New("cart id must be a UUID")
)

// CartItem is one line of a cart: a product and how many times it was added
type CartItem struct {
	ProductID  string
	Title      string
	Vendor     string
	PriceCents int64
	Quantity   int
}

// Cart represents a shopper's cart
type Cart struct {
	ID        string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCart creates an empty cart with a generated id
func NewCart() *Cart {
	now := time.Now()
	return &Cart{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidateCartID reports whether id can identify a cart
func ValidateCartID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidCartID
	}
	return nil
}

// NewCartItem returns a one-unit cart line for the product
func NewCartItem(p Product) (CartItem, error) {
	if err := p.Validate(); err != nil {
		return CartItem{}, err
	}
	return CartItem{
		ProductID:  p.ID,
		Title:      p.Title,
		Vendor:     p.Vendor,
		PriceCents: p.PriceCents,
		Quantity:   1,
	}, nil
}

// Add puts one unit of the product in the cart and returns the updated line
func (c *Cart) Add(p Product) (CartItem, error) {
	item, err := NewCartItem(p)
	if err != nil {
		return CartItem{}, err
	}
	return c.AddItem(item), nil
}

// AddItem adds item.Quantity units of the item's product, merging with an
// existing line, and returns the updated line
func (c *Cart) AddItem(item CartItem) CartItem {
	c.UpdatedAt = time.Now()
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return c.Items[i]
		}
	}
	c.Items = append(c.Items, item)
	return item
}

// Quantity returns how many units of the product the cart holds
func (c *Cart) Quantity(productID string) int {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// TotalItems returns the number of units across all lines
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal returns the cart value in cents
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}

// FormattedSubtotal returns the subtotal formatted in dollars
func (c *Cart) FormattedSubtotal() string {
	return formatCents(c.Subtotal())
}

// IsEmpty returns true if nothing was added yet
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
