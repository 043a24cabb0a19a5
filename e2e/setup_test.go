//go:build e2e

package e2e

import (
	"net/http/httptest"
	"os"
	"testing"

	"github.com/playwright-community/playwright-go"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/cli"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/config"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/handlers"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/logging"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/models"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/repository"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/services"
)

var (
	pw      *playwright.Playwright
	browser playwright.Browser
	baseURL string
)

// startStorefront serves the demo store in process with an in-memory cart store
func startStorefront() (*httptest.Server, error) {
	logger := logging.Discard()
	cartService := services.NewCartService(repository.NewMemoryCartRepository(), models.DefaultCatalog())

	homeHandler, err := handlers.NewHomeHandler("../templates/home.html", cartService, logger)
	if err != nil {
		return nil, err
	}

	router := cli.NewRouter(cli.ServerDependencies{
		ServerConfig:     config.ServerConfig{Store: config.StoreMemory},
		HomeHandler:      homeHandler,
		AddToCartHandler: handlers.NewAddToCartHandler(cartService, logger),
		CartAPIHandler:   handlers.NewCartAPIHandler(cartService, logger),
		Logger:           logger,
	})
	return httptest.NewServer(router), nil
}

// TestMain sets up the storefront and the Playwright browser for all tests.
// CART_BASE_URL points the suite at an external store instead.
func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	baseURL = os.Getenv("CART_BASE_URL")
	if baseURL == "" {
		server, err := startStorefront()
		if err != nil {
			panic(err)
		}
		defer server.Close()
		baseURL = server.URL + "/"
	}

	// Browsers must be installed via: go run github.com/playwright-community/playwright-go/cmd/playwright@latest install chromium
	var err error
	pw, err = playwright.Run()
	if err != nil {
		panic(err)
	}
	defer pw.Stop()

	browser, err = pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		panic(err)
	}
	defer browser.Close()

	return m.Run()
}
