package wire

import (
	"airline-ticketing/internal/adaptor"
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/pkg/middleware"
	"airline-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/flights/{id}/purchase", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Account, log))

		r.Get("/", bookingHandler.GetPurchaseState)
		r.Post("/class", bookingHandler.SelectClass)
		r.Post("/seat", bookingHandler.SelectSeat)
		r.Post("/confirm", bookingHandler.Confirm)
	})
}
