package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/showroom-scheduler/internal/config"
	"github.com/BruksfildServices01/showroom-scheduler/internal/logger"
	"github.com/BruksfildServices01/showroom-scheduler/internal/routes"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "showroom-scheduler: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	stores, err := routes.NewStores(cfg, log)
	if err != nil {
		return err
	}
	defer closeWithLog(log, "store", stores.Close)

	channel, closeChannel, err := routes.NewChannel(cfg, log)
	if err != nil {
		return err
	}
	defer closeWithLog(log, "notification channel", closeChannel)

	counter, closeCounter := routes.NewRateCounter(cfg, log)
	defer closeWithLog(log, "redis", closeCounter)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	drain := routes.RegisterRoutes(r, cfg, log, routes.Deps{
		Stores:      stores,
		Channel:     channel,
		RateCounter: counter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("store", cfg.StoreDriver),
			zap.String("notify_channel", channel.Name()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		drain()
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	drain()
	return nil
}

func closeWithLog(log *zap.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Warn("close failed", zap.String("resource", name), zap.Error(err))
	}
}
