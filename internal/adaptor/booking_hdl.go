package adaptor

import (
	"encoding/json"
	"net/http"

	"airline-ticketing/internal/dto/request"
	"airline-ticketing/internal/usecase"
	"airline-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetPurchaseState handles GET /api/flights/{id}/purchase (protected)
func (h *BookingHandler) GetPurchaseState(w http.ResponseWriter, r *http.Request) {
	accountID, flightID, ok := h.purchaseParams(w, r)
	if !ok {
		return
	}

	draft, err := h.service.GetPurchaseState(r.Context(), accountID.String(), flightID)
	if err != nil {
		handleServiceError(w, h.log, err, "get purchase state")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// SelectClass handles POST /api/flights/{id}/purchase/class (protected)
func (h *BookingHandler) SelectClass(w http.ResponseWriter, r *http.Request) {
	accountID, flightID, ok := h.purchaseParams(w, r)
	if !ok {
		return
	}

	var req request.SelectClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.SelectClass(r.Context(), accountID.String(), flightID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select class")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// SelectSeat handles POST /api/flights/{id}/purchase/seat (protected)
func (h *BookingHandler) SelectSeat(w http.ResponseWriter, r *http.Request) {
	accountID, flightID, ok := h.purchaseParams(w, r)
	if !ok {
		return
	}

	var req request.SelectSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	draft, err := h.service.SelectSeat(r.Context(), accountID.String(), flightID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select seat")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// Confirm handles POST /api/flights/{id}/purchase/confirm (protected)
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	accountID, flightID, ok := h.purchaseParams(w, r)
	if !ok {
		return
	}

	purchase, err := h.service.Confirm(r.Context(), accountID.String(), flightID)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm purchase")
		return
	}

	utils.ResponseCreated(w, "success", purchase)
}

func (h *BookingHandler) purchaseParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, bool) {
	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, "", false
	}

	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return uuid.Nil, "", false
	}

	return accountID, flightID, true
}
