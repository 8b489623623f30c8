// Package server wires the application together: configuration, logging,
// the credential store, the signup/login service and the HTTP endpoint. It
// also handles graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmaslov/passport/internal/logging"
	"github.com/dmaslov/passport/internal/server/config"
	"github.com/dmaslov/passport/internal/server/httpapi"
	"github.com/dmaslov/passport/internal/server/password"
	"github.com/dmaslov/passport/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       *PostgresStore
	userService *users.Service
}

func NewApp(c *config.Config) (*App, error) {

	// A missing signing key must stop the process here, not surface as a
	// per-request failure later.
	if c.SecretKey == "" {
		return nil, errors.New("config error: empty secret key")
	}

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	store, err := NewPostgresStore(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := password.NewHasher(c.BcryptCost)

	us, err := users.NewService(store.Users(), hasher, c)
	if err != nil {
		return nil, fmt.Errorf("user service init error: %w", err)
	}

	return &App{config: c, logger: logger, store: store, userService: us}, nil
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

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.config.SecretKey)

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

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "closing store", "error", err.Error())
	}
}
