package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/handleui/winnow/dialects/matcher"
)

const (
	// SECURITY: ReadHeaderTimeout prevents slow loris attacks by limiting how long
	// the server waits for request headers. 10s is generous for legitimate clients.
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 120 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Config configures the HTTP service.
type Config struct {
	Addr     string
	Version  string
	Matchers []matcher.Config
	Logger   *slog.Logger
}

// Run starts the service and blocks until the listener fails or ctx is
// canceled, then drains in-flight requests before returning.
func Run(ctx context.Context, cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		// Structured JSON logging for production
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	handler := NewHandler(cfg.Version, cfg.Matchers, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handler.HandleHealth)
	mux.HandleFunc("/parse", handler.HandleParse)

	// SECURITY: Chain security headers middleware before logging middleware.
	// Order: SecurityHeaders -> Logging -> Handler
	wrappedHandler := SecurityHeadersMiddleware(handler.LoggingMiddleware(mux))

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: wrappedHandler,
		// SECURITY: ReadHeaderTimeout prevents slow loris attacks.
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		// SECURITY: MaxHeaderBytes limits header size to prevent memory exhaustion.
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("service starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return <-errCh
}
