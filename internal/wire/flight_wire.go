package wire

import (
	"airline-ticketing/internal/adaptor"
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFlight(
	r chi.Router,
	flightHandler *adaptor.FlightHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/flights", flightHandler.GetFlights)
	r.Get("/api/flights/{id}", flightHandler.GetFlightByID)
	r.Get("/api/flights/{id}/seats", flightHandler.GetSeatMap)
	r.Get("/api/classes", flightHandler.GetClasses)
	r.Get("/api/baggage-types", flightHandler.GetBaggageTypes)
}
