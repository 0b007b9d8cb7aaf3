// Package server wires the RainyDay backend together: it opens the database,
// applies migrations, builds the services and runs the gRPC and metrics
// endpoints until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/rainyday/internal/logging"
	"github.com/dmitrijs2005/rainyday/internal/server/config"
	"github.com/dmitrijs2005/rainyday/internal/server/metrics"
	"github.com/dmitrijs2005/rainyday/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/rainyday/internal/server/services"

	gs "github.com/dmitrijs2005/rainyday/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	metrics *metrics.Metrics
	grpc    *gs.GRPCServer
}

// NewApp connects to PostgreSQL, migrates the schema and assembles the
// services. The caller owns the returned App and must call Close.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	us := services.NewUserService(db, rm, c, logger)
	rs := services.NewRainCheckService(db, rm, logger)
	is := services.NewImageService(c, logger)
	m := metrics.New()

	srv := gs.NewGRPCServer(c.GRPCAddr, logger, us, rs, is, us.Signer(), m.UnaryInterceptor)

	return &App{config: c, logger: logger, db: db, metrics: m, grpc: srv}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case sig := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", sig.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.grpc.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if app.config.MetricsAddr == "" {
		return
	}
	if err := app.metrics.Serve(ctx, app.config.MetricsAddr, app.logger); err != nil {
		app.logger.Error(ctx, "metrics server failed", "error", err)
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or one
// of the endpoints fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startMetricsServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.logger.Info(ctx, "App stopped")
}

func (app *App) Close() error {
	return app.db.Close()
}
