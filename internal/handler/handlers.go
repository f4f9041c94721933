package handler

import (
	httphandler "github.com/martancouto/juriskanban/internal/handler/http"
	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/internal/service"
)

// Handlers bundles every transport handler of the application.
// The kanban API speaks only HTTP.
type Handlers struct {
	HTTP *httphandler.Handler
}

// NewHandlers constructs all transport handlers on top of the service layer.
func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: httphandler.NewHandler(services, logger),
	}
}
