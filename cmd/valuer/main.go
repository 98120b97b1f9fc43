package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/proval-lk/valuer-client/internal/api"
	"github.com/proval-lk/valuer-client/internal/cli"
	"github.com/proval-lk/valuer-client/internal/config"
	"github.com/proval-lk/valuer-client/internal/credential"
	"github.com/proval-lk/valuer-client/internal/lib/sl"
	"github.com/proval-lk/valuer-client/internal/notify"
	"github.com/proval-lk/valuer-client/internal/session"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	creds := credential.NewStore(cfg.CredentialFile)
	notifier := notify.NewWriter(os.Stderr, logger)

	apiClient, err := api.New(cfg.BaseURL, cfg.Timeout, cfg.Env, creds, notifier, logger)
	if err != nil {
		logger.Error("failed to initialize api client", sl.Err(err))
		os.Exit(1)
	}

	sessionStore := session.New(apiClient, creds, logger)
	apiClient.OnUnauthorized(sessionStore.Expire)

	app := cli.NewApp(sessionStore, apiClient, logger)
	app.Run(ctx)
}
