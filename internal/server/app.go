// Package server initializes and runs the authentication API server.
// It wires configuration, the storage backend, the auth service, and
// the HTTP endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/goalboard/authserver/internal/logging"
	"github.com/goalboard/authserver/internal/server/config"
	"github.com/goalboard/authserver/internal/server/httpapi"
	"github.com/goalboard/authserver/internal/server/repositories/repomanager"
	"github.com/goalboard/authserver/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *services.AuthService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	rm, err := newRepositoryManager(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	as := services.NewAuthService(rm, cfg)

	return &App{config: cfg, logger: logger, authService: as}, nil
}

func newRepositoryManager(ctx context.Context, cfg *config.Config) (repomanager.RepositoryManager, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		return repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	case config.StorageMemory:
		return repomanager.NewInMemoryRepositoryManager(), nil
	default:
		return repomanager.NewDynamoRepositoryManager(ctx, cfg)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.Addr, app.logger, app.authService, app.config.AllowedOrigins)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
