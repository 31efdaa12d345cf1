package adaptor

import (
	"net/http"

	"airline-ticketing/internal/dto/request"
	"airline-ticketing/internal/usecase"
	"airline-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// GetFlights handles GET /api/flights (public)
func (h *FlightHandler) GetFlights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	flights, err := h.service.GetFlights(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// GetFlightByID handles GET /api/flights/{id} (public)
func (h *FlightHandler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	flight, err := h.service.GetFlightByID(r.Context(), flightID)
	if err != nil {
		handleServiceError(w, h.log, err, "get flight by ID")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// GetSeatMap handles GET /api/flights/{id}/seats (public)
func (h *FlightHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	seatMap, err := h.service.GetSeatMap(r.Context(), flightID)
	if err != nil {
		handleServiceError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}

// GetClasses handles GET /api/classes (public)
func (h *FlightHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.GetClasses(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get classes")
		return
	}

	utils.ResponseSuccess(w, "success", classes)
}

// GetBaggageTypes handles GET /api/baggage-types (public)
func (h *FlightHandler) GetBaggageTypes(w http.ResponseWriter, r *http.Request) {
	baggageTypes, err := h.service.GetBaggageTypes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get baggage types")
		return
	}

	utils.ResponseSuccess(w, "success", baggageTypes)
}
