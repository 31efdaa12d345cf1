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

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// GetTables handles GET /api/admin/tables (admin only)
func (h *AdminHandler) GetTables(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetTables(r.Context()))
}

// GetRecords handles GET /api/admin/tables/{table} (admin only)
func (h *AdminHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	tableName := chi.URLParam(r, "table")

	records, err := h.service.GetRecords(r.Context(), tableName)
	if err != nil {
		handleServiceError(w, h.log, err, "list records")
		return
	}

	utils.ResponseSuccess(w, "success", records)
}

// GetRecord handles GET /api/admin/tables/{table}/{id} (admin only)
func (h *AdminHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	tableName := chi.URLParam(r, "table")
	recordID := chi.URLParam(r, "id")

	record, err := h.service.GetRecord(r.Context(), tableName, recordID)
	if err != nil {
		handleServiceError(w, h.log, err, "get record")
		return
	}

	utils.ResponseSuccess(w, "success", record)
}

// CreateRecord handles POST /api/admin/tables/{table} (admin only)
func (h *AdminHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	adminID, ok := h.adminID(w, r)
	if !ok {
		return
	}
	tableName := chi.URLParam(r, "table")

	var req request.AdminRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	record, err := h.service.CreateRecord(r.Context(), adminID.String(), tableName, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create record")
		return
	}

	utils.ResponseCreated(w, "success", record)
}

// UpdateRecord handles PUT /api/admin/tables/{table}/{id} (admin only)
func (h *AdminHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	adminID, ok := h.adminID(w, r)
	if !ok {
		return
	}
	tableName := chi.URLParam(r, "table")
	recordID := chi.URLParam(r, "id")

	var req request.AdminRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	record, err := h.service.UpdateRecord(r.Context(), adminID.String(), tableName, recordID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update record")
		return
	}

	utils.ResponseSuccess(w, "success", record)
}

// DeleteRecord handles DELETE /api/admin/tables/{table}/{id} (admin only)
func (h *AdminHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	adminID, ok := h.adminID(w, r)
	if !ok {
		return
	}
	tableName := chi.URLParam(r, "table")
	recordID := chi.URLParam(r, "id")

	if err := h.service.DeleteRecord(r.Context(), adminID.String(), tableName, recordID); err != nil {
		handleServiceError(w, h.log, err, "delete record")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetOptions handles GET /api/admin/tables/{table}/options (admin only)
func (h *AdminHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	tableName := chi.URLParam(r, "table")

	options, err := h.service.GetOptions(r.Context(), tableName)
	if err != nil {
		handleServiceError(w, h.log, err, "get options")
		return
	}

	utils.ResponseSuccess(w, "success", options)
}

func (h *AdminHandler) adminID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	adminID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false
	}
	return adminID, true
}
