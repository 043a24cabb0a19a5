package handlers

import (
	"net/http"
	"time"
)

// CartCookieName identifies the shopper's cart across requests
const CartCookieName = "cart_id"

// cartIDFromRequest returns the cart id cookie value, or "" when absent
func cartIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CartCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setCartCookie remembers the cart for 30 days
func setCartCookie(w http.ResponseWriter, cartID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CartCookieName,
		Value:    cartID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}
