package users

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/proval-lk/valuer-client/internal/http/middlewarectx"
	"github.com/proval-lk/valuer-client/internal/http/response"
	"github.com/proval-lk/valuer-client/internal/lib/sl"
	"github.com/proval-lk/valuer-client/internal/models"
	"github.com/proval-lk/valuer-client/internal/storage"
)

// AddQualificationHandler обрабатывает POST /users/qualifications.
type AddQualificationHandler struct {
	log      *slog.Logger
	profiles ProfileRepository
	validate *validator.Validate
}

// NewAddQualificationHandler создаёт обработчик добавления квалификации.
func NewAddQualificationHandler(log *slog.Logger, profiles ProfileRepository) *AddQualificationHandler {
	return &AddQualificationHandler{
		log:      log,
		profiles: profiles,
		validate: validator.New(),
	}
}

func (h *AddQualificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.qualification_add"

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

	var req models.QualificationRequest
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

	qualifications, err := h.profiles.AddQualification(email, req.Qualification)
	if err != nil {
		log.Error("failed to add qualification", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Message("Account not found"))
		return
	}
	render.JSON(w, r, models.QualificationsResponse{Qualifications: qualifications})
}

// RemoveQualificationHandler обрабатывает DELETE /users/qualifications/{index}.
type RemoveQualificationHandler struct {
	log      *slog.Logger
	profiles ProfileRepository
}

// NewRemoveQualificationHandler создаёт обработчик удаления квалификации.
func NewRemoveQualificationHandler(log *slog.Logger, profiles ProfileRepository) *RemoveQualificationHandler {
	return &RemoveQualificationHandler{log: log, profiles: profiles}
}

func (h *RemoveQualificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.qualification_remove"

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

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		log.Error("invalid qualification index", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Message("invalid qualification index"))
		return
	}

	qualifications, err := h.profiles.RemoveQualification(email, index)
	if err != nil {
		if errors.Is(err, storage.ErrIndexOutOfRange) {
			log.Error("qualification index out of range", slog.Int("index", index))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Message("Qualification not found"))
			return
		}
		log.Error("failed to remove qualification", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Message("Account not found"))
		return
	}
	render.JSON(w, r, models.QualificationsResponse{Qualifications: qualifications})
}
