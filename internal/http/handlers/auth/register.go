package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/proval-lk/valuer-client/internal/http/response"
	"github.com/proval-lk/valuer-client/internal/lib/sl"
	"github.com/proval-lk/valuer-client/internal/models"
	"github.com/proval-lk/valuer-client/internal/storage"
)

// RegisterHandler обрабатывает POST /auth/register.
type RegisterHandler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// NewRegisterHandler создаёт обработчик регистрации.
func NewRegisterHandler(log *slog.Logger, service Service) *RegisterHandler {
	return &RegisterHandler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RegisterRequest
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

	resp, err := h.service.Register(req)
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			log.Error("email already registered", slog.String("email", req.Email))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Message("Email is already registered"))
			return
		}
		log.Error("registration failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Message("internal error"))
		return
	}

	log.Info("registration success", slog.String("email", req.Email))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}
