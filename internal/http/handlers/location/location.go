// Package location реализует HTTP-обработчики геосервисов стаба бэкенда:
// /location/geocode, /location/reverse-geocode, /location/amenities и
// /location/generate-map.
package location

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

// Service описывает контракт геосервиса.
type Service interface {
	Geocode(req models.GeocodeRequest) *models.GeocodeResult
	ReverseGeocode(req models.ReverseGeocodeRequest) *models.ReverseGeocodeResult
	Amenities(req models.AmenitiesRequest) *models.AmenitiesResult
	GenerateMap(req models.GenerateMapRequest) *models.GenerateMapResult
}

// Handler обрабатывает все гео-запросы: форма у них одинаковая,
// различается только тип запроса и вызываемый метод сервиса.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создаёт обработчик геосервисов.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// Geocode обрабатывает POST /location/geocode.
func (h *Handler) Geocode(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.location.geocode"

	var req models.GeocodeRequest
	if !h.decode(w, r, op, &req) {
		return
	}
	render.JSON(w, r, h.service.Geocode(req))
}

// ReverseGeocode обрабатывает POST /location/reverse-geocode.
func (h *Handler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.location.reverse_geocode"

	var req models.ReverseGeocodeRequest
	if !h.decode(w, r, op, &req) {
		return
	}
	render.JSON(w, r, h.service.ReverseGeocode(req))
}

// Amenities обрабатывает POST /location/amenities.
func (h *Handler) Amenities(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.location.amenities"

	var req models.AmenitiesRequest
	if !h.decode(w, r, op, &req) {
		return
	}
	render.JSON(w, r, h.service.Amenities(req))
}

// GenerateMap обрабатывает POST /location/generate-map.
func (h *Handler) GenerateMap(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.location.generate_map"

	var req models.GenerateMapRequest
	if !h.decode(w, r, op, &req) {
		return
	}
	render.JSON(w, r, h.service.GenerateMap(req))
}

// decode разбирает и валидирует тело запроса; при ошибке сам пишет ответ
// и возвращает false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, op string, req any) bool {
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Message("invalid request body"))
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return false
	}
	return true
}
