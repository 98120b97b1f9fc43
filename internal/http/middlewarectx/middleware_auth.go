// Package middlewarectx содержит HTTP middleware стаба бэкенда: проверку
// bearer-токена и ограничение частоты запросов.
//
// JWTMiddleware проверяет наличие и валидность токена в заголовке
// Authorization и добавляет в контекст email учётной записи.
// В случае ошибки возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/proval-lk/valuer-client/internal/http/response"
	"github.com/proval-lk/valuer-client/internal/lib/jwt"
	"github.com/proval-lk/valuer-client/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// AccountEmail — ключ email учётной записи в контексте.
const AccountEmail Key = "account_email"

// JWTMiddleware возвращает middleware, проверяющий bearer-токен.
//
// Если токен валиден, email учётной записи добавляется в контекст запроса,
// иначе возвращается 401 Unauthorized.
func JWTMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Message("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Message("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), AccountEmail, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext возвращает email учётной записи, добавленный JWTMiddleware.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AccountEmail).(string)
	return email, ok
}
