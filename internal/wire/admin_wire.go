package wire

import (
	"airline-ticketing/internal/adaptor"
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/pkg/middleware"
	"airline-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/tables", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, repo.Account, log))
		r.Use(middleware.Admin(repo.Account, log))

		r.Get("/", adminHandler.GetTables)
		r.Get("/{table}", adminHandler.GetRecords)
		r.Post("/{table}", adminHandler.CreateRecord)
		r.Get("/{table}/options", adminHandler.GetOptions)
		r.Get("/{table}/{id}", adminHandler.GetRecord)
		r.Put("/{table}/{id}", adminHandler.UpdateRecord)
		r.Delete("/{table}/{id}", adminHandler.DeleteRecord)
	})
}
