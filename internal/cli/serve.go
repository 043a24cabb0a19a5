package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phuslu/log"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/config"
)

// ServerDependencies holds all dependencies needed for the demo storefront
type ServerDependencies struct {
	ServerConfig     config.ServerConfig
	HomeHandler      http.Handler
	AddToCartHandler http.Handler
	CartAPIHandler   http.Handler
	Logger           *log.Logger
}

// RunServe starts the demo storefront
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil, deps.Logger)
}

// NewRouter maps the storefront routes onto their handlers
func NewRouter(deps ServerDependencies) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", deps.HomeHandler)
	mux.Handle("/cart/add", deps.AddToCartHandler)
	mux.Handle("/api/cart", deps.CartAPIHandler)
	return mux
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	logger := loggerOrDefault(deps.Logger)

	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	server := &http.Server{
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", listener.Addr().String()).Msg("Server listening")
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("Server error")
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server.
// If shutdown is nil, a new channel is registered with signal.Notify.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal, logger *log.Logger) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second, logger)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration, logger *log.Logger) error {
	logger = loggerOrDefault(logger)

	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	sig := <-shutdown
	logger.Info().Str("signal", sig.String()).Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		// Force close once the grace period is over
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	logger.Info().Msg("Server stopped")
	return nil
}

func loggerOrDefault(logger *log.Logger) *log.Logger {
	if logger == nil {
		return &log.DefaultLogger
	}
	return logger
}
