// Package app wires configuration, storage, the stores, the board service
// and the REPL, and runs them until the user leaves or a signal arrives.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/collabboard/internal/accounts"
	"github.com/dmitrijs2005/collabboard/internal/announcements"
	"github.com/dmitrijs2005/collabboard/internal/board"
	"github.com/dmitrijs2005/collabboard/internal/cli"
	"github.com/dmitrijs2005/collabboard/internal/config"
	"github.com/dmitrijs2005/collabboard/internal/kvstore"
	"github.com/dmitrijs2005/collabboard/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  kvstore.Store
	repl   *cli.App
}

// NewApp opens the configured storage backend and builds the stores on top
// of it. Logs go to logOut; the REPL talks over in and out.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out, logOut io.Writer) (*App, error) {
	logger := logging.NewJSONLogger(logOut, c.LogLevel)

	store, err := kvstore.Open(ctx, kvstore.Options{
		Backend:     c.StorageBackend,
		DSN:         c.StorageDSN,
		RedisPrefix: c.RedisPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	acc, err := accounts.NewStore(ctx, store,
		accounts.WithLogger(logger),
		accounts.WithSecret(c.CredentialSecret),
	)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("accounts init error: %w", err)
	}
	ann, err := announcements.NewStore(ctx, store, announcements.WithLogger(logger))
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("announcements init error: %w", err)
	}

	svc := board.NewService(acc, ann,
		board.WithLanguage(c.Language),
		board.WithLogger(logger),
	)

	return &App{
		config: c,
		logger: logger,
		store:  store,
		repl:   cli.NewApp(svc, in, out),
	}, nil
}

// Run blocks until the REPL returns, ctx is done or SIGINT/SIGTERM arrives.
// The storage backend is closed on the way out.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.logger.Debug(ctx, "starting", "backend", app.config.StorageBackend, "language", app.config.Language)

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.repl.Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		app.logger.Info(ctx, "interrupted")
	}

	if err := app.store.Close(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}
