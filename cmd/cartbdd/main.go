package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/phuslu/log"
	"github.com/urfave/cli/v2"

	internalcli "github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/cli"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/config"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/database"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/handlers"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/logging"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/models"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/pages"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/repository"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/services"
)

var version = "0.1.0"

// loadSuiteConfig merges command line flags over the file and environment layers
func loadSuiteConfig(c *cli.Context) (*config.SuiteConfig, error) {
	cfg, err := config.LoadSuiteConfig(c.String("config"), os.Getenv)
	if err != nil {
		return nil, err
	}

	if c.IsSet("base-url") {
		cfg.BaseURL = c.String("base-url")
	}
	if c.IsSet("browser") {
		cfg.Browser = c.String("browser")
	}
	if c.IsSet("headless") {
		cfg.Headless = c.Bool("headless")
	}
	if c.IsSet("tags") {
		cfg.Tags = c.String("tags")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.Args().Len() > 0 {
		cfg.Features = c.Args().Slice()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run the cart features in a browser",
		ArgsUsage: "[feature paths...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "TOML suite configuration file", EnvVars: []string{"CART_CONFIG"}},
			&cli.StringFlag{Name: "base-url", Usage: "store under test"},
			&cli.StringFlag{Name: "browser", Usage: "browser engine: playwright or chromedp"},
			&cli.BoolFlag{Name: "headless", Usage: "run the browser without a window"},
			&cli.StringFlag{Name: "tags", Aliases: []string{"t"}, Usage: "tag expression filtering scenarios"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "godog formatter"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadSuiteConfig(c)
			if err != nil {
				return err
			}

			logger := logging.New(logging.Options{Level: cfg.LogLevel, Color: cfg.LogColor})

			session, err := pages.NewSession(cfg)
			if err != nil {
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer func() {
				if err := session.Close(); err != nil {
					logger.Warn().Err(err).Msg("Failed to close browser")
				}
			}()

			return internalcli.RunSuite(internalcli.RunDependencies{
				Config:  cfg,
				Session: session,
				Logger:  logger,
			})
		},
	}
}

// buildServerDependencies creates all dependencies needed for the storefront
func buildServerDependencies(serverConfig config.ServerConfig, repo services.CartRepository, logger *log.Logger) (internalcli.ServerDependencies, error) {
	deps := internalcli.ServerDependencies{
		ServerConfig: serverConfig,
		Logger:       logger,
	}

	cartService := services.NewCartService(repo, models.DefaultCatalog())

	homeHandler, err := handlers.NewHomeHandler(serverConfig.TemplatePath, cartService, logger)
	if err != nil {
		return deps, fmt.Errorf("failed to create home handler: %w", err)
	}
	deps.HomeHandler = homeHandler
	deps.AddToCartHandler = handlers.NewAddToCartHandler(cartService, logger)
	deps.CartAPIHandler = handlers.NewCartAPIHandler(cartService, logger)

	return deps, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the demo storefront",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info", EnvVars: []string{"CART_LOG_LEVEL"}},
		},
		Action: func(c *cli.Context) error {
			logger := logging.New(logging.Options{Level: c.String("log-level")})

			serverConfig, err := config.LoadServerConfig()
			if err != nil {
				return err
			}

			var repo services.CartRepository = repository.NewMemoryCartRepository()
			if serverConfig.Store == config.StorePostgres {
				var db *sql.DB
				db, err = database.Connect(os.Getenv)
				if err != nil {
					return fmt.Errorf("failed to connect to database: %w", err)
				}
				defer db.Close()
				logger.Info().Msg("Connected to database successfully")

				if err := database.RunMigrations(db); err != nil {
					return fmt.Errorf("failed to run database migrations: %w", err)
				}
				repo = repository.NewPostgresCartRepository(db)
			}

			deps, err := buildServerDependencies(serverConfig, repo, logger)
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "cartbdd",
		Usage:   "Shopping cart acceptance suite and demo storefront",
		Version: version,
		Commands: []*cli.Command{
			RunCommand(),
			ServeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("cartbdd failed")
	}
}
