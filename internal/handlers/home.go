package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/phuslu/log"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/models"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/services"
)

// HomeHandler renders the product shelf and the float cart
type HomeHandler struct {
	template    *template.Template
	cartService services.CartService
	logger      *log.Logger
}

// HomeData represents the data passed to the home template
type HomeData struct {
	Products []models.Product
	Cart     *models.Cart
	CartOpen bool
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(templatePath string, cartService services.CartService, logger *log.Logger) (*HomeHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &HomeHandler{
		template:    tmpl,
		cartService: cartService,
		logger:      logger,
	}, nil
}

// ServeHTTP handles the GET / request. ?cart=open renders the cart expanded.
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cart := &models.Cart{}
	if id := cartIDFromRequest(r); id != "" {
		found, err := h.cartService.GetCart(id)
		switch {
		case err == nil:
			cart = found
		case errors.Is(err, models.ErrCartNotFound):
			// stale cookie, show an empty cart
		default:
			h.logger.Error().Err(err).Str("cart_id", id).Msg("Error loading cart")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	data := HomeData{
		Products: h.cartService.Catalog(),
		Cart:     cart,
		CartOpen: r.URL.Query().Get("cart") == "open",
	}

	if err := h.template.Execute(w, data); err != nil {
		h.logger.Error().Err(err).Msg("Error rendering template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}
