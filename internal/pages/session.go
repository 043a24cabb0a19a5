package pages

import (
	"context"
	"fmt"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/config"
)

// Session owns a running browser for the duration of a feature run and hands out
// one home page object per scenario
type Session interface {
	NewHomePage(ctx context.Context) (Page, error)
	Close() error
}

// NewSession starts the browser engine selected by cfg
func NewSession(cfg *config.SuiteConfig) (Session, error) {
	switch cfg.Browser {
	case config.BrowserPlaywright:
		return NewPlaywrightSession(cfg.BaseURL, cfg.Headless, cfg.Timeout())
	case config.BrowserChromedp:
		return NewChromedpSession(cfg.BaseURL, cfg.Headless, cfg.Timeout())
	default:
		return nil, fmt.Errorf("unsupported browser %q", cfg.Browser)
	}
}
