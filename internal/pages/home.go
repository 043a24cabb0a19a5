package pages

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Page object errors
var (
	ErrProductNotFound  = errors.New("product not found on shelf")
	ErrNegativeClicks   = errors.New("click count must not be negative")
	ErrQuantityNotFound = errors.New("cart row has no quantity")
)

// HomePage is the storefront home page as seen by the cart steps
type HomePage interface {
	AddToCartNTimes(ctx context.Context, deviceName string, clicks int) error
	VerifyCart(ctx context.Context, deviceName string, quantity int) (bool, error)
}

// Page is a HomePage bound to a browser tab that must be released
type Page interface {
	HomePage
	Close() error
}

// Driver performs element interactions for one browser tab. All selectors are XPath.
type Driver interface {
	Goto(ctx context.Context, url string) error
	Count(ctx context.Context, xpath string) (int, error)
	Click(ctx context.Context, xpath string) error
	WaitVisible(ctx context.Context, xpath string) error
	WaitGone(ctx context.Context, xpath string) error
	Text(ctx context.Context, xpath string) (string, error)
	Close() error
}

// Home is the page object of the demo store home page
type Home struct {
	driver  Driver
	baseURL string
	loaded  bool
}

// NewHome creates a home page object navigating to baseURL on first use
func NewHome(driver Driver, baseURL string) *Home {
	return &Home{
		driver:  driver,
		baseURL: baseURL,
	}
}

// Open navigates to the home page and waits for the shelf to render
func (h *Home) Open(ctx context.Context) error {
	if h.loaded {
		return nil
	}
	if err := h.driver.Goto(ctx, h.baseURL); err != nil {
		return fmt.Errorf("failed to open %s: %w", h.baseURL, err)
	}
	if err := h.driver.WaitVisible(ctx, shelfTitleXPath); err != nil {
		return fmt.Errorf("shelf did not render: %w", err)
	}
	h.loaded = true
	return nil
}

// AddToCartNTimes clicks the "Add to cart" button of the named device clicks times.
// The store opens the float cart after every add; it is closed again before the next click.
func (h *Home) AddToCartNTimes(ctx context.Context, deviceName string, clicks int) error {
	if clicks < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeClicks, clicks)
	}
	if err := h.Open(ctx); err != nil {
		return err
	}

	buy := buyButtonXPath(deviceName)
	n, err := h.driver.Count(ctx, buy)
	if err != nil {
		return fmt.Errorf("failed to look up %q: %w", deviceName, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrProductNotFound, deviceName)
	}

	for i := 0; i < clicks; i++ {
		if err := h.driver.Click(ctx, buy); err != nil {
			return fmt.Errorf("failed to add %q to cart (click %d of %d): %w", deviceName, i+1, clicks, err)
		}
		if err := h.driver.WaitVisible(ctx, floatCartOpenXPath); err != nil {
			return fmt.Errorf("cart did not open after adding %q: %w", deviceName, err)
		}
		if err := h.closeCart(ctx); err != nil {
			return err
		}
	}
	return nil
}

// VerifyCart opens the float cart and compares the quantity shown for the named
// device with quantity. A device missing from the cart has quantity 0.
func (h *Home) VerifyCart(ctx context.Context, deviceName string, quantity int) (bool, error) {
	if err := h.Open(ctx); err != nil {
		return false, err
	}
	if err := h.openCart(ctx); err != nil {
		return false, err
	}

	actual, err := h.cartQuantity(ctx, deviceName)
	if err != nil {
		return false, err
	}
	if err := h.closeCart(ctx); err != nil {
		return false, err
	}
	return actual == quantity, nil
}

// Close releases the browser tab
func (h *Home) Close() error {
	return h.driver.Close()
}

func (h *Home) openCart(ctx context.Context) error {
	open, err := h.driver.Count(ctx, floatCartOpenXPath)
	if err != nil {
		return fmt.Errorf("failed to inspect cart: %w", err)
	}
	if open > 0 {
		return nil
	}
	if err := h.driver.Click(ctx, bagXPath); err != nil {
		return fmt.Errorf("failed to open cart: %w", err)
	}
	if err := h.driver.WaitVisible(ctx, floatCartOpenXPath); err != nil {
		return fmt.Errorf("cart did not open: %w", err)
	}
	return nil
}

func (h *Home) closeCart(ctx context.Context) error {
	if err := h.driver.Click(ctx, closeCartXPath); err != nil {
		return fmt.Errorf("failed to close cart: %w", err)
	}
	if err := h.driver.WaitGone(ctx, floatCartOpenXPath); err != nil {
		return fmt.Errorf("cart did not close: %w", err)
	}
	return nil
}

func (h *Home) cartQuantity(ctx context.Context, deviceName string) (int, error) {
	desc := cartDescXPath(deviceName)
	n, err := h.driver.Count(ctx, desc)
	if err != nil {
		return 0, fmt.Errorf("failed to look up %q in cart: %w", deviceName, err)
	}
	if n == 0 {
		return 0, nil
	}

	text, err := h.driver.Text(ctx, desc)
	if err != nil {
		return 0, fmt.Errorf("failed to read cart row of %q: %w", deviceName, err)
	}
	return parseQuantity(text)
}

var quantityPattern = regexp.MustCompile(`Quantity:\s*(\d+)`)

// parseQuantity extracts N from a cart row description such as "Apple Quantity: N"
func parseQuantity(desc string) (int, error) {
	m := quantityPattern.FindStringSubmatch(desc)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrQuantityNotFound, desc)
	}
	return strconv.Atoi(m[1])
}
