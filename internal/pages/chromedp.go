package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// ChromedpSession owns a Chrome process driven over the DevTools protocol
type ChromedpSession struct {
	allocCancel context.CancelFunc
	browserCtx  context.Context
	baseURL     string
	timeout     time.Duration
}

// NewChromedpSession starts a Chrome instance. Chrome must be installed locally.
func NewChromedpSession(baseURL string, headless bool, timeout time.Duration) (*ChromedpSession, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.WindowSize(1366, 900),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// An empty Run starts the browser
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start chrome: %w", err)
	}

	return &ChromedpSession{
		allocCancel: allocCancel,
		browserCtx:  browserCtx,
		baseURL:     baseURL,
		timeout:     timeout,
	}, nil
}

// NewHomePage opens the home page object in a new tab of a fresh browser context,
// so cookies and storage never leak between scenarios
func (s *ChromedpSession) NewHomePage(ctx context.Context) (Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tab, cancel := chromedp.NewContext(s.browserCtx, chromedp.WithNewBrowserContext())
	if err := chromedp.Run(tab); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open tab: %w", err)
	}

	return NewHome(&chromedpDriver{tab: tab, cancel: cancel, timeout: s.timeout}, s.baseURL), nil
}

// Close shuts the browser down
func (s *ChromedpSession) Close() error {
	defer s.allocCancel()
	if err := chromedp.Cancel(s.browserCtx); err != nil {
		return fmt.Errorf("failed to close chrome: %w", err)
	}
	return nil
}

// chromedpDriver implements Driver on one chromedp tab
type chromedpDriver struct {
	tab     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
}

// run executes actions on the tab, bounded by the driver timeout and by ctx
func (d *chromedpDriver) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(d.tab, d.timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := ctx.Err(); err != nil {
		return err
	}
	return chromedp.Run(runCtx, actions...)
}

func (d *chromedpDriver) Goto(ctx context.Context, url string) error {
	return d.run(ctx, chromedp.Navigate(url))
}

func (d *chromedpDriver) Count(ctx context.Context, xpath string) (int, error) {
	var nodes []*cdp.Node
	if err := d.run(ctx, chromedp.Nodes(xpath, &nodes, chromedp.BySearch, chromedp.AtLeast(0))); err != nil {
		return 0, err
	}
	return len(nodes), nil
}

func (d *chromedpDriver) Click(ctx context.Context, xpath string) error {
	return d.run(ctx, chromedp.Click(xpath, chromedp.BySearch, chromedp.NodeVisible))
}

func (d *chromedpDriver) WaitVisible(ctx context.Context, xpath string) error {
	return d.run(ctx, chromedp.WaitVisible(xpath, chromedp.BySearch))
}

func (d *chromedpDriver) WaitGone(ctx context.Context, xpath string) error {
	return d.run(ctx, chromedp.WaitNotPresent(xpath, chromedp.BySearch))
}

func (d *chromedpDriver) Text(ctx context.Context, xpath string) (string, error) {
	var text string
	if err := d.run(ctx, chromedp.Text(xpath, &text, chromedp.BySearch)); err != nil {
		return "", err
	}
	return text, nil
}

func (d *chromedpDriver) Close() error {
	d.cancel()
	return nil
}
