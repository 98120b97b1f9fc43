package auth

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

// VerifyEmailHandler обрабатывает POST /auth/verify-email.
type VerifyEmailHandler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// NewVerifyEmailHandler создаёт обработчик подтверждения почты.
func NewVerifyEmailHandler(log *slog.Logger, service Service) *VerifyEmailHandler {
	return &VerifyEmailHandler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *VerifyEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verify"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.VerifyEmailRequest
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

	message, err := h.service.VerifyEmail(req.Token)
	if err != nil {
		log.Error("email verification failed", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Message("Invalid or expired verification token"))
		return
	}
	render.JSON(w, r, models.MessageResponse{Message: message})
}

// ResendVerificationHandler обрабатывает POST /auth/resend-verification.
type ResendVerificationHandler struct {
	log     *slog.Logger
	service Service
}

// NewResendVerificationHandler создаёт обработчик повторной отправки письма.
func NewResendVerificationHandler(log *slog.Logger, service Service) *ResendVerificationHandler {
	return &ResendVerificationHandler{log: log, service: service}
}

func (h *ResendVerificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.resend"

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

	message, err := h.service.ResendVerification(email)
	if err != nil {
		log.Error("resend verification failed", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Message("Account not found"))
		return
	}
	render.JSON(w, r, models.MessageResponse{Message: message})
}
