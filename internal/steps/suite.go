package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
	"github.com/phuslu/log"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/pages"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/scenario"
)

// PageSource hands out one home page object per scenario
type PageSource interface {
	NewHomePage(ctx context.Context) (pages.Page, error)
}

// Suite wires the cart steps into a godog run. Each scenario gets its own
// CartSteps and its own page, opened on first use and closed after the scenario.
type Suite struct {
	Pages     PageSource
	NewLogger LoggerFactory
	Logger    *log.Logger
}

// InitializeScenario is the godog scenario initializer
func (s *Suite) InitializeScenario(sc *godog.ScenarioContext) {
	page := &scenarioPage{source: s.Pages}
	steps := NewCartSteps(page, s.NewLogger)
	steps.Register(sc)

	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if h, ok := scenario.FromContext(ctx); ok && s.Logger != nil {
			event := s.Logger.Info()
			if err != nil {
				event = s.Logger.Error().Err(err)
			}
			event.Str("scenario", h.Name).Str("uri", h.URI).Strs("tags", h.Tags).Int("messages", len(h.Messages())).Msg("Scenario finished")
		}
		if closeErr := page.Close(); closeErr != nil {
			return ctx, fmt.Errorf("failed to close page: %w", closeErr)
		}
		return ctx, nil
	})
}

// scenarioPage opens the page lazily so scenarios without browser steps
// never start a tab
type scenarioPage struct {
	source PageSource
	page   pages.Page
}

func (p *scenarioPage) get(ctx context.Context) (pages.Page, error) {
	if p.page != nil {
		return p.page, nil
	}
	page, err := p.source.NewHomePage(ctx)
	if err != nil {
		return nil, err
	}
	p.page = page
	return page, nil
}

func (p *scenarioPage) AddToCartNTimes(ctx context.Context, deviceName string, clicks int) error {
	page, err := p.get(ctx)
	if err != nil {
		return err
	}
	return page.AddToCartNTimes(ctx, deviceName, clicks)
}

func (p *scenarioPage) VerifyCart(ctx context.Context, deviceName string, quantity int) (bool, error) {
	page, err := p.get(ctx)
	if err != nil {
		return false, err
	}
	return page.VerifyCart(ctx, deviceName, quantity)
}

func (p *scenarioPage) Close() error {
	if p.page == nil {
		return nil
	}
	err := p.page.Close()
	p.page = nil
	return err
}
