package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/proval-lk/valuer-client/internal/http/response"
)

// RateLimitMiddleware ограничивает частоту запросов ко всему стабу.
// Превышение лимита отвечает 429 в стандартном конверте ошибки.
func RateLimitMiddleware(log *slog.Logger, limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Error("too many requests", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Message("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
