package services

import (
	"errors"
	"fmt"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/models"
)

// ErrUnknownProduct is returned when a product id is not in the catalog
var ErrUnknownProduct = errors.New("unknown product")

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	CreateCart(cart *models.Cart) error
	GetCart(id string) (*models.Cart, error)
	AddItem(cartID string, item models.CartItem) error
}

// CartService handles cart business logic
type CartService interface {
	Catalog() []models.Product
	GetCart(id string) (*models.Cart, error)
	GetOrCreateCart(id string) (*models.Cart, error)
	AddProduct(cartID, productID string) (*models.Cart, error)
}

// CartServiceImpl implements CartService
type CartServiceImpl struct {
	cartRepo CartRepository
	catalog  []models.Product
}

// NewCartService creates a new cart service selling the given catalog
func NewCartService(cartRepo CartRepository, catalog []models.Product) CartService {
	return &CartServiceImpl{
		cartRepo: cartRepo,
		catalog:  catalog,
	}
}

// Catalog returns the products on sale
func (s *CartServiceImpl) Catalog() []models.Product {
	return s.catalog
}

// GetCart retrieves a cart by id. Unknown or malformed ids yield models.ErrCartNotFound.
func (s *CartServiceImpl) GetCart(id string) (*models.Cart, error) {
	if err := models.ValidateCartID(id); err != nil {
		return nil, models.ErrCartNotFound
	}

	cart, err := s.cartRepo.GetCart(id)
	if err != nil {
		if errors.Is(err, models.ErrCartNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return cart, nil
}

// GetOrCreateCart returns the cart named by id, or a new empty cart when id
// does not name an existing one
func (s *CartServiceImpl) GetOrCreateCart(id string) (*models.Cart, error) {
	cart, err := s.GetCart(id)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, models.ErrCartNotFound) {
		return nil, err
	}

	cart = models.NewCart()
	if err := s.cartRepo.CreateCart(cart); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return cart, nil
}

// AddProduct adds one unit of the product to the cart, creating the cart when
// cartID does not name an existing one. The updated cart is returned.
func (s *CartServiceImpl) AddProduct(cartID, productID string) (*models.Cart, error) {
	product, ok := models.FindProduct(s.catalog, productID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}

	cart, err := s.GetOrCreateCart(cartID)
	if err != nil {
		return nil, err
	}

	item, err := models.NewCartItem(product)
	if err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	// The repository increments the stored line, never a stale copy
	if err := s.cartRepo.AddItem(cart.ID, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	updated, err := s.cartRepo.GetCart(cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload cart: %w", err)
	}
	return updated, nil
}
