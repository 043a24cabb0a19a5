package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/config"
	_ "github.com/lib/pq"
)

// Connect opens and verifies a PostgreSQL connection for the cart store
func Connect(getenv func(string) string) (*sql.DB, error) {
	pgConfig, err := config.LoadPostgresConfig(getenv)
	if err != nil {
		return nil, fmt.Errorf("failed to load postgres config: %w", err)
	}

	db, err := sql.Open("postgres", pgConfig.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
