package service

import (
	"github.com/martancouto/juriskanban/internal/config"
	"github.com/martancouto/juriskanban/internal/crypto"
	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/internal/store"
)

// Services bundles all service implementations for injection into the
// transport layer.
type Services struct {
	AuthService     AuthService
	ProcessoService ProcessoService
	EventoService   EventoService
}

// NewServices wires every service to its repositories and configuration.
func NewServices(repos *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	hasher := crypto.NewHasher(cfg.BcryptCost)

	return &Services{
		AuthService:     NewAuthService(repos.UserRepository, hasher, cfg, logger),
		ProcessoService: NewProcessoService(repos.ProcessoRepository, logger),
		EventoService:   NewEventoService(repos.EventoRepository, repos.ProcessoRepository, logger),
	}
}
