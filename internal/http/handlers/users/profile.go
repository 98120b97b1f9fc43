package users

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/proval-lk/valuer-client/internal/http/middlewarectx"
	"github.com/proval-lk/valuer-client/internal/http/response"
	"github.com/proval-lk/valuer-client/internal/lib/sl"
	"github.com/proval-lk/valuer-client/internal/models"
)

// UpdateProfileHandler обрабатывает PUT /users/profile.
// Возвращает профиль целиком: клиент обязан заменить локальную копию
// представлением сервера, а не сливать поля.
type UpdateProfileHandler struct {
	log      *slog.Logger
	profiles ProfileRepository
	validate *validator.Validate
}

// NewUpdateProfileHandler создаёт обработчик обновления профиля.
func NewUpdateProfileHandler(log *slog.Logger, profiles ProfileRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{
		log:      log,
		profiles: profiles,
		validate: validator.New(),
	}
}

func (h *UpdateProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.profile"

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

	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Message("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.profiles.UpdateProfile(email, req)
	if err != nil {
		log.Error("profile update failed", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Message("Account not found"))
		return
	}

	log.Info("profile updated", slog.String("email", email))
	render.JSON(w, r, models.UserResponse{User: user})
}

// DashboardHandler обрабатывает GET /users/dashboard.
type DashboardHandler struct {
	log       *slog.Logger
	dashboard DashboardBuilder
}

// NewDashboardHandler создаёт обработчик сводки кабинета.
func NewDashboardHandler(log *slog.Logger, dashboard DashboardBuilder) *DashboardHandler {
	return &DashboardHandler{log: log, dashboard: dashboard}
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.dashboard"

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

	render.JSON(w, r, h.dashboard.Build(email))
}
