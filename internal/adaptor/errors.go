package adaptor

import (
	"errors"
	"net/http"

	"airline-ticketing/internal/usecase"
	"airline-ticketing/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps usecase sentinel errors to HTTP responses. Purchase
// flow errors carry a redirect_to hint so the client knows which step to
// return to.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" target missing", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrSeatTaken):
		log.Warn(operation+" seat conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), map[string]string{"redirect_to": "seat"})

	case errors.Is(err, usecase.ErrStepOutOfOrder):
		log.Warn(operation+" out of order", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), map[string]string{"redirect_to": usecase.StepFromError(err)})

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
