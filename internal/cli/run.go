package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cucumber/godog"
	"github.com/phuslu/log"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/config"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/logging"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/steps"
)

// ErrSuiteFailed is returned when at least one scenario did not pass
var ErrSuiteFailed = errors.New("feature run failed")

// RunDependencies holds all dependencies needed for a feature run
type RunDependencies struct {
	Config  *config.SuiteConfig
	Session steps.PageSource
	Logger  *log.Logger
	// Output receives the godog formatter output, stdout when nil
	Output io.Writer
	// Console receives the step logs, stdout when nil
	Console io.Writer
	// FeatureContents replaces Config.Features when set
	FeatureContents []godog.Feature
}

// RunSuite runs the cart features against the session. The session is not closed.
func RunSuite(deps RunDependencies) error {
	if deps.Config == nil {
		return errors.New("missing suite configuration")
	}
	if deps.Session == nil {
		return errors.New("missing browser session")
	}

	logger := loggerOrDefault(deps.Logger)
	output := deps.Output
	if output == nil {
		output = os.Stdout
	}

	suite := &steps.Suite{
		Pages: deps.Session,
		NewLogger: steps.ConsoleLoggerFactory(logging.Options{
			Level:   deps.Config.LogLevel,
			Console: deps.Console,
			Color:   deps.Config.LogColor,
		}),
		Logger: logger,
	}

	opts := &godog.Options{
		Format:          deps.Config.Format,
		Output:          output,
		Tags:            deps.Config.Tags,
		Strict:          true,
		FeatureContents: deps.FeatureContents,
	}
	if len(deps.FeatureContents) == 0 {
		opts.Paths = deps.Config.Features
	}

	logger.Info().
		Str("base_url", deps.Config.BaseURL).
		Str("browser", deps.Config.Browser).
		Strs("features", opts.Paths).
		Str("tags", deps.Config.Tags).
		Msg("Running features")

	status := godog.TestSuite{
		Name:                "cart",
		ScenarioInitializer: suite.InitializeScenario,
		Options:             opts,
	}.Run()

	if status != 0 {
		logger.Error().Int("status", status).Msg("Feature run failed")
		return fmt.Errorf("%w: status %d", ErrSuiteFailed, status)
	}

	logger.Info().Msg("Feature run passed")
	return nil
}
