package config

import (
	"fmt"
	"os"
)

// Cart store backends for the demo storefront
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// ServerConfig holds demo storefront configuration
type ServerConfig struct {
	Port         string
	Store        string
	TemplatePath string
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig() (ServerConfig, error) {
	cfg := ServerConfig{
		Port:         os.Getenv("PORT"),
		Store:        os.Getenv("CART_STORE"),
		TemplatePath: os.Getenv("CART_TEMPLATE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Store == "" {
		cfg.Store = StoreMemory
	}
	if cfg.TemplatePath == "" {
		cfg.TemplatePath = "templates/home.html"
	}

	if cfg.Store != StoreMemory && cfg.Store != StorePostgres {
		return cfg, fmt.Errorf("CART_STORE must be %q or %q, got %q", StoreMemory, StorePostgres, cfg.Store)
	}
	return cfg, nil
}
