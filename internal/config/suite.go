package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Browser engines able to drive the home page object
const (
	BrowserPlaywright = "playwright"
	BrowserChromedp   = "chromedp"
)

// DefaultBaseURL is the public BrowserStack demo store
const DefaultBaseURL = "https://bstackdemo.com/"

// SuiteConfig holds configuration for a feature run
type SuiteConfig struct {
	BaseURL   string   `toml:"base_url" validate:"required,url"`
	Browser   string   `toml:"browser" validate:"required,oneof=playwright chromedp"`
	Headless  bool     `toml:"headless"`
	TimeoutMS int      `toml:"timeout_ms" validate:"gt=0"`
	Features  []string `toml:"features" validate:"min=1,dive,required"`
	Tags      string   `toml:"tags"`
	Format    string   `toml:"format" validate:"required"`
	LogLevel  string   `toml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogColor  bool     `toml:"log_color"`
}

// NewDefaultSuiteConfig returns the configuration used when nothing is overridden
func NewDefaultSuiteConfig() *SuiteConfig {
	return &SuiteConfig{
		BaseURL:   DefaultBaseURL,
		Browser:   BrowserPlaywright,
		Headless:  true,
		TimeoutMS: 10000,
		Features:  []string{"features"},
		Format:    "pretty",
		LogLevel:  "info",
	}
}

// LoadSuiteConfig loads configuration with priority: defaults -> TOML file -> environment.
// path may be empty to skip the file layer.
func LoadSuiteConfig(path string, getenv func(string) string) (*SuiteConfig, error) {
	cfg := NewDefaultSuiteConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applySuiteEnv(cfg, getenv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applySuiteEnv applies CART_* environment overrides
func applySuiteEnv(cfg *SuiteConfig, getenv func(string) string) error {
	if v := getenv("CART_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := getenv("CART_BROWSER"); v != "" {
		cfg.Browser = strings.ToLower(v)
	}
	if v := getenv("CART_HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CART_HEADLESS must be a boolean: %w", err)
		}
		cfg.Headless = headless
	}
	if v := getenv("CART_TIMEOUT_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CART_TIMEOUT_MS must be an integer: %w", err)
		}
		cfg.TimeoutMS = ms
	}
	if v := getenv("CART_FEATURES"); v != "" {
		cfg.Features = splitList(v)
	}
	if v := getenv("CART_TAGS"); v != "" {
		cfg.Tags = v
	}
	if v := getenv("CART_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := getenv("CART_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return nil
}

// Validate checks the configuration
func (c *SuiteConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid suite configuration: %w", err)
	}
	return nil
}

// Timeout returns the per-action browser timeout
func (c *SuiteConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
