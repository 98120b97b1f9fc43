package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/proval-lk/valuer-client/internal/http/middlewarectx"
	"github.com/proval-lk/valuer-client/internal/http/response"
	"github.com/proval-lk/valuer-client/internal/lib/sl"
	"github.com/proval-lk/valuer-client/internal/models"
)

// MeHandler обрабатывает GET /auth/me.
type MeHandler struct {
	log     *slog.Logger
	service Service
}

// NewMeHandler создаёт обработчик текущего профиля.
func NewMeHandler(log *slog.Logger, service Service) *MeHandler {
	return &MeHandler{log: log, service: service}
}

func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email, ok := middlewarectx.EmailFromContext(r.Context())
	if !ok {
		log.Error("account email missing in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Message("invalid or expired token"))
		return
	}

	user, err := h.service.Me(email)
	if err != nil {
		log.Error("failed to load profile", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Message("Account not found"))
		return
	}
	render.JSON(w, r, models.UserResponse{User: user})
}
