package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightSession owns a Playwright driver and a Chromium browser
type PlaywrightSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	baseURL string
	timeout time.Duration
}

// NewPlaywrightSession starts Playwright and launches Chromium.
// Browsers must be installed beforehand (playwright install chromium).
func NewPlaywrightSession(baseURL string, headless bool, timeout time.Duration) (*PlaywrightSession, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch chromium: %w", err)
	}

	return NewPlaywrightSessionWithBrowser(pw, browser, baseURL, timeout), nil
}

// NewPlaywrightSessionWithBrowser wraps an already launched browser.
// pw may be nil when the caller manages the Playwright lifecycle.
func NewPlaywrightSessionWithBrowser(pw *playwright.Playwright, browser playwright.Browser, baseURL string, timeout time.Duration) *PlaywrightSession {
	return &PlaywrightSession{
		pw:      pw,
		browser: browser,
		baseURL: baseURL,
		timeout: timeout,
	}
}

// NewHomePage opens the home page object in a fresh, isolated browser context
func (s *PlaywrightSession) NewHomePage(ctx context.Context) (Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bctx, err := s.browser.NewContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	bctx.SetDefaultTimeout(float64(s.timeout.Milliseconds()))

	page, err := bctx.NewPage()
	if err != nil {
		bctx.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return NewHome(&playwrightDriver{context: bctx, page: page}, s.baseURL), nil
}

// Close shuts the browser and, when owned, the Playwright driver
func (s *PlaywrightSession) Close() error {
	if err := s.browser.Close(); err != nil {
		return fmt.Errorf("failed to close browser: %w", err)
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			return fmt.Errorf("failed to stop playwright: %w", err)
		}
	}
	return nil
}

// playwrightDriver implements Driver on a Playwright page.
// Playwright applies its own default timeout; ctx is checked before each call.
type playwrightDriver struct {
	context playwright.BrowserContext
	page    playwright.Page
}

func (d *playwrightDriver) locator(xpath string) playwright.Locator {
	return d.page.Locator("xpath=" + xpath)
}

func (d *playwrightDriver) Goto(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := d.page.Goto(url)
	return err
}

func (d *playwrightDriver) Count(ctx context.Context, xpath string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return d.locator(xpath).Count()
}

func (d *playwrightDriver) Click(ctx context.Context, xpath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.locator(xpath).First().Click()
}

func (d *playwrightDriver) WaitVisible(ctx context.Context, xpath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.locator(xpath).First().WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
}

func (d *playwrightDriver) WaitGone(ctx context.Context, xpath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.locator(xpath).First().WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateHidden,
	})
}

func (d *playwrightDriver) Text(ctx context.Context, xpath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return d.locator(xpath).First().TextContent()
}

func (d *playwrightDriver) Close() error {
	return d.context.Close()
}
