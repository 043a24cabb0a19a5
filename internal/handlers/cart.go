package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/phuslu/log"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/models"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/services"
)

// AddToCartHandler handles "Add to cart" form posts
type AddToCartHandler struct {
	cartService services.CartService
	logger      *log.Logger
}

// NewAddToCartHandler creates a new add to cart handler
func NewAddToCartHandler(cartService services.CartService, logger *log.Logger) *AddToCartHandler {
	return &AddToCartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// ServeHTTP handles POST /cart/add and redirects to the home page with the cart open
func (h *AddToCartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	productID := r.FormValue("product")
	if productID == "" {
		http.Error(w, "Missing product", http.StatusBadRequest)
		return
	}

	cart, err := h.cartService.AddProduct(cartIDFromRequest(r), productID)
	if errors.Is(err, services.ErrUnknownProduct) {
		http.Error(w, "Unknown product", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("product", productID).Msg("Error adding product to cart")
		http.Error(w, "Failed to add product", http.StatusInternalServerError)
		return
	}

	h.logger.Info().Str("cart_id", cart.ID).Str("product", productID).Int("quantity", cart.Quantity(productID)).Msg("Product added to cart")

	setCartCookie(w, cart.ID)
	http.Redirect(w, r, "/?cart=open", http.StatusSeeOther)
}

// CartAPIHandler serves the current cart as JSON
type CartAPIHandler struct {
	cartService services.CartService
	logger      *log.Logger
}

// NewCartAPIHandler creates a new cart API handler
func NewCartAPIHandler(cartService services.CartService, logger *log.Logger) *CartAPIHandler {
	return &CartAPIHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// CartResponse represents the cart sent to the client
type CartResponse struct {
	ID         string             `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	Subtotal   string             `json:"subtotal"`
}

// CartItemResponse represents one cart line sent to the client
type CartItemResponse struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Vendor    string `json:"vendor"`
	Quantity  int    `json:"quantity"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ServeHTTP handles GET /api/cart
func (h *CartAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cart := &models.Cart{}
	if id := cartIDFromRequest(r); id != "" {
		found, err := h.cartService.GetCart(id)
		if err != nil && !errors.Is(err, models.ErrCartNotFound) {
			h.logger.Error().Err(err).Str("cart_id", id).Msg("Error loading cart")
			sendErrorResponse(w, "Failed to load cart", http.StatusInternalServerError)
			return
		}
		if found != nil {
			cart = found
		}
	}

	resp := CartResponse{
		ID:         cart.ID,
		Items:      []CartItemResponse{},
		TotalItems: cart.TotalItems(),
		Subtotal:   cart.FormattedSubtotal(),
	}
	for _, item := range cart.Items {
		resp.Items = append(resp.Items, CartItemResponse{
			ProductID: item.ProductID,
			Title:     item.Title,
			Vendor:    item.Vendor,
			Quantity:  item.Quantity,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error().Err(err).Msg("Error encoding response")
	}
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
