// Package devstub собирает локальный стаб бэкенда: in-memory хранилище,
// сервисы и HTTP-сервер с REST-поверхностью, которую ожидает клиент.
package devstub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/proval-lk/valuer-client/internal/config"
	"github.com/proval-lk/valuer-client/internal/lib/jwt"
	authservice "github.com/proval-lk/valuer-client/internal/services/auth"
	dashboardservice "github.com/proval-lk/valuer-client/internal/services/dashboard"
	locationservice "github.com/proval-lk/valuer-client/internal/services/location"
	"github.com/proval-lk/valuer-client/internal/storage"
)

// App локальный стаб бэкенда.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New собирает стаб по конфигурации.
func New(cfg *config.Config, logger *slog.Logger) *App {
	store := storage.NewMemoryStore()
	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authSvc := authservice.New(store, jwtMaker, logger)
	dashboardSvc := dashboardservice.New()
	locationSvc := locationservice.New()

	router := chi.NewRouter()
	RegisterRoutes(router, cfg, logger, jwtMaker, authSvc, store, dashboardSvc, locationSvc)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{server: srv, logger: logger}
}

// Run запускает сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("devstub starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down devstub gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
