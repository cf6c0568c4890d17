package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run owns every deferred cleanup so main can exit with a status code
func run() int {
	configPath := flag.String("config", "", "Path to a config file (default: search ./configs and .)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}

	logger, err := newLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Printf("Failed to build logger: %v", err)
		return 1
	}
	defer logger.Sync()

	gin.SetMode(cfg.Server.Mode)
	r := newRouter(cfg, logger)

	srv := &http.Server{
		Addr:         cfg.addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Server starting",
		zap.String("service", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("addr", srv.Addr),
	)
	if err := serve(ctx, srv, logger, cfg.Server.ShutdownTimeout); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return 1
	}
	logger.Info("Server stopped gracefully")
	return 0
}

// serve runs srv until ctx is cancelled or the listener fails, then shuts
// it down within timeout. Listener errors are returned to the caller.
func serve(ctx context.Context, srv *http.Server, logger *zap.Logger, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutdown signal received, stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
