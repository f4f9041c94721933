package http

import (
	"net/http"

	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/internal/service"
	"github.com/martancouto/juriskanban/internal/utils"
	"github.com/martancouto/juriskanban/models"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeError sends a JSON error body with the given status code.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, statusCode)
}

// writeValidationError sends a 400 with the per-field details of a failed
// validation.
func writeValidationError(w http.ResponseWriter, message string, validationErr *service.ValidationError) {
	utils.WriteJSON(w, models.ErrorResponse{
		Message: message,
		Errs:    validationErr.Fields,
	}, http.StatusBadRequest)
}
