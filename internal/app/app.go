package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sqlcoach/sqlcoach-backend/internal/adapter/postgres"
	activityrepo "github.com/sqlcoach/sqlcoach-backend/internal/adapter/postgres/activity"
	"github.com/sqlcoach/sqlcoach-backend/internal/adapter/postgres/catalog"
	"github.com/sqlcoach/sqlcoach-backend/internal/adapter/postgres/proxy"
	userrepo "github.com/sqlcoach/sqlcoach-backend/internal/adapter/postgres/user"
	"github.com/sqlcoach/sqlcoach-backend/internal/config"
	"github.com/sqlcoach/sqlcoach-backend/internal/service/account"
	"github.com/sqlcoach/sqlcoach-backend/internal/service/activity"
	"github.com/sqlcoach/sqlcoach-backend/internal/service/queryproxy"
	"github.com/sqlcoach/sqlcoach-backend/internal/service/schemainfo"
	"github.com/sqlcoach/sqlcoach-backend/internal/transport/middleware"
	"github.com/sqlcoach/sqlcoach-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the warehouse and learner stores, wires services and handlers, and serves
// HTTP until interrupted.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	warehousePool, err := postgres.NewPool(ctx, cfg.Warehouse)
	if err != nil {
		return fmt.Errorf("create warehouse pool: %w", err)
	}
	defer warehousePool.Close()

	learnerPool, err := postgres.NewPool(ctx, cfg.Learner)
	if err != nil {
		return fmt.Errorf("create learner pool: %w", err)
	}
	defer learnerPool.Close()

	// A failed probe is logged but not fatal: the process stays up and
	// individual requests surface the store error instead.
	probeCtx, cancelProbe := context.WithTimeout(ctx, 5*time.Second)
	if err := warehousePool.Ping(probeCtx); err != nil {
		logger.Warn("warehouse store unreachable", slog.String("error", err.Error()))
	}
	learnerUp := true
	if err := learnerPool.Ping(probeCtx); err != nil {
		learnerUp = false
		logger.Warn("learner store unreachable", slog.String("error", err.Error()))
	}
	cancelProbe()

	if learnerUp {
		if err := postgres.RunMigrations(ctx, cfg.Learner); err != nil {
			logger.Error("learner store migrations failed", slog.String("error", err.Error()))
		}
	} else {
		logger.Warn("skipping learner store migrations, store unreachable")
	}

	querySvc := queryproxy.NewService(logger, proxy.New(warehousePool), nil)
	schemaSvc := schemainfo.NewService(logger, catalog.New(warehousePool, cfg.Warehouse.Schema))
	accountSvc := account.NewService(logger, userrepo.New(learnerPool))
	activitySvc := activity.NewService(logger, activityrepo.New(learnerPool))

	mux := rest.NewRouter(rest.Handlers{
		Status:   rest.NewStatusHandler(learnerPool, logger),
		Query:    rest.NewQueryHandler(querySvc, logger),
		Schema:   rest.NewSchemaHandler(schemaSvc, logger),
		Account:  rest.NewAccountHandler(accountSvc, logger),
		Activity: rest.NewActivityHandler(activitySvc, logger),
		Health:   rest.NewHealthHandler(warehousePool, learnerPool, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
