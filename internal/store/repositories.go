package store

import "github.com/martancouto/juriskanban/internal/logger"

// Repositories bundles all repository implementations behind their
// interfaces for injection into the service layer.
type Repositories struct {
	UserRepository     UserRepository
	ProcessoRepository ProcessoRepository
	EventoRepository   EventoRepository
}

// NewRepositories constructs every repository on top of the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		ProcessoRepository: NewProcessoRepository(db, logger),
		EventoRepository:   NewEventoRepository(db, logger),
	}
}
