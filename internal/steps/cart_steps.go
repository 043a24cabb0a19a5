// Package steps binds the cart feature steps to the home page object.
package steps

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cucumber/godog"
	"github.com/phuslu/log"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/logging"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/pages"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/scenario"
)

// Step patterns
const (
	AddToCartPattern  = `^User clicks on "([^"]*)" Add To Cart button (-?\d+) times$`
	CartUpdatePattern = `^The cart gets updated with "([^"]*)" and (-?\d+)$`
)

// LoggerFactory builds the logger of one scenario. sink receives the scenario log.
type LoggerFactory func(sink io.Writer) *log.Logger

// ConsoleLoggerFactory logs to stdout and to the scenario sink
func ConsoleLoggerFactory(opts logging.Options) LoggerFactory {
	return func(sink io.Writer) *log.Logger {
		return logging.New(opts, sink)
	}
}

// CartSteps implements the cart steps for one scenario
type CartSteps struct {
	home      pages.HomePage
	newLogger LoggerFactory

	sc  *scenario.Handle
	log *log.Logger
}

// NewCartSteps creates the steps of one scenario. home is the page object collaborator.
func NewCartSteps(home pages.HomePage, newLogger LoggerFactory) *CartSteps {
	if newLogger == nil {
		newLogger = ConsoleLoggerFactory(logging.Options{})
	}
	return &CartSteps{
		home:      home,
		newLogger: newLogger,
	}
}

// Register adds the steps and scenario hooks to the scenario context
func (s *CartSteps) Register(sc *godog.ScenarioContext) {
	sc.Before(s.BindScenario)
	sc.StepContext().After(s.attachScenarioLog)

	sc.When(AddToCartPattern, s.AddToCart)
	sc.Then(CartUpdatePattern, s.cartGetsUpdated)
}

// BindScenario captures the scenario about to run. Every message logged by the
// steps until the end of the scenario goes to this handle.
func (s *CartSteps) BindScenario(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
	s.sc = scenario.New(sc)
	s.log = s.newLogger(s.sc)
	return scenario.NewContext(ctx, s.sc), nil
}

// Scenario returns the handle bound by BindScenario
func (s *CartSteps) Scenario() *scenario.Handle {
	return s.sc
}

// AddToCart clicks the device's "Add to cart" button clicks times
func (s *CartSteps) AddToCart(ctx context.Context, deviceName string, clicks int) error {
	if clicks < 0 {
		return fmt.Errorf("%w: %d", pages.ErrNegativeClicks, clicks)
	}
	return s.home.AddToCartNTimes(ctx, deviceName, clicks)
}

// VerifyCart checks that the cart holds quantity units of the device.
// Page errors are returned as is; a mismatch is a failed Result.
func (s *CartSteps) VerifyCart(ctx context.Context, deviceName string, quantity int) (Result, error) {
	if quantity < 0 {
		return Fail(fmt.Sprintf("quantity must not be negative, got %d", quantity)), nil
	}

	logger := s.logger()
	logger.Info().Str("device", deviceName).Int("quantity", quantity).Msg("Starting cart verification")

	updated, err := s.home.VerifyCart(ctx, deviceName, quantity)
	if err != nil {
		return Result{}, err
	}

	if !updated {
		logger.Warn().Str("device", deviceName).Int("quantity", quantity).Msg("Cart verification failed")
		return Fail(MsgCartNotUpdated), nil
	}

	logger.Info().Str("device", deviceName).Int("quantity", quantity).Msg("Cart updated with correct details")
	return Pass("Cart updated with correct details"), nil
}

func (s *CartSteps) cartGetsUpdated(ctx context.Context, deviceName string, quantity int) error {
	result, err := s.VerifyCart(ctx, deviceName, quantity)
	if err != nil {
		return err
	}
	return result.Err()
}

// attachScenarioLog attaches the messages logged during the step to its result
func (s *CartSteps) attachScenarioLog(ctx context.Context, st *godog.Step, status godog.StepResultStatus, err error) (context.Context, error) {
	if s.sc == nil {
		return ctx, nil
	}
	if status == godog.StepFailed && err != nil {
		s.sc.Log(fmt.Sprintf("Step %q failed: %v", st.Text, err))
	}
	msgs := s.sc.Drain()
	if len(msgs) == 0 {
		return ctx, nil
	}
	return godog.Attach(ctx, godog.Attachment{
		Body:      []byte(strings.Join(msgs, "\n")),
		FileName:  "scenario.log",
		MediaType: "text/plain",
	}), nil
}

// logger returns the scenario logger, or a console-only one outside a scenario
func (s *CartSteps) logger() *log.Logger {
	if s.log == nil {
		s.log = s.newLogger(nil)
	}
	return s.log
}
