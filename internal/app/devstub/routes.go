// Package devstub предоставляет маршруты стаба бэкенда.
package devstub

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/proval-lk/valuer-client/internal/config"
	authhandlers "github.com/proval-lk/valuer-client/internal/http/handlers/auth"
	locationhandlers "github.com/proval-lk/valuer-client/internal/http/handlers/location"
	userhandlers "github.com/proval-lk/valuer-client/internal/http/handlers/users"
	"github.com/proval-lk/valuer-client/internal/http/middlewarectx"
	"github.com/proval-lk/valuer-client/internal/lib/jwt"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "devstub_requests_total",
	Help: "Количество HTTP-запросов к стабу по методу и пути.",
}, []string{"method", "path"})

// RegisterRoutes регистрирует все маршруты стаба.
func RegisterRoutes(
	r chi.Router,
	cfg *config.Config,
	logger *slog.Logger,
	jwtMaker jwt.Maker,
	authSvc authhandlers.Service,
	profiles userhandlers.ProfileRepository,
	dashboard userhandlers.DashboardBuilder,
	locationSvc locationhandlers.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		countRequests,
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, rate.Limit(cfg.RateLimit), cfg.RateBurst))

		// Открытые конечные точки
		r.Post("/auth/register", authhandlers.NewRegisterHandler(logger, authSvc).ServeHTTP)
		r.Post("/auth/login", authhandlers.NewLoginHandler(logger, authSvc).ServeHTTP)
		r.Post("/auth/verify-email", authhandlers.NewVerifyEmailHandler(logger, authSvc).ServeHTTP)

		// Группа с проверкой bearer-токена
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Get("/auth/me", authhandlers.NewMeHandler(logger, authSvc).ServeHTTP)
			r.Post("/auth/resend-verification", authhandlers.NewResendVerificationHandler(logger, authSvc).ServeHTTP)
			r.Put("/users/profile", userhandlers.NewUpdateProfileHandler(logger, profiles).ServeHTTP)
			r.Get("/users/dashboard", userhandlers.NewDashboardHandler(logger, dashboard).ServeHTTP)
			r.Post("/users/qualifications", userhandlers.NewAddQualificationHandler(logger, profiles).ServeHTTP)
			r.Delete("/users/qualifications/{index}", userhandlers.NewRemoveQualificationHandler(logger, profiles).ServeHTTP)

			locationHandler := locationhandlers.New(logger, locationSvc)
			r.Post("/location/geocode", locationHandler.Geocode)
			r.Post("/location/reverse-geocode", locationHandler.ReverseGeocode)
			r.Post("/location/amenities", locationHandler.Amenities)
			r.Post("/location/generate-map", locationHandler.GenerateMap)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestsTotal.WithLabelValues(r.Method, r.URL.Path).Inc()
		next.ServeHTTP(w, r)
	})
}
