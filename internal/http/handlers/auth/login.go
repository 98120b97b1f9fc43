package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/proval-lk/valuer-client/internal/http/response"
	"github.com/proval-lk/valuer-client/internal/lib/sl"
	"github.com/proval-lk/valuer-client/internal/models"
)

// LoginHandler обрабатывает POST /auth/login.
type LoginHandler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// NewLoginHandler создаёт обработчик входа.
func NewLoginHandler(log *slog.Logger, service Service) *LoginHandler {
	return &LoginHandler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LoginRequest
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

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Message("Invalid email or password"))
		return
	}

	log.Info("login success", slog.String("email", req.Email))
	render.JSON(w, r, resp)
}
