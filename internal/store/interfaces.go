package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/martancouto/juriskanban/models"
)

// UserRepository owns the persistence of user identity records.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// ProcessoRepository owns the persistence of case records, including the
// nested historico and pagamento documents.
type ProcessoRepository interface {
	GetAll(ctx context.Context) ([]models.Processo, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Processo, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Processo, error)
	Create(ctx context.Context, processo models.Processo) (models.Processo, error)
	Update(ctx context.Context, id uuid.UUID, update models.ProcessoUpdate) (models.Processo, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AppendHistorico(ctx context.Context, id uuid.UUID, descricao string) (models.Processo, error)
}

// EventoRepository owns the persistence of calendar events. The processo
// reference is stored as a plain id; read-side expansion happens at the
// service layer.
type EventoRepository interface {
	GetAll(ctx context.Context) ([]models.Evento, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Evento, error)
	GetByProcesso(ctx context.Context, processoID uuid.UUID) ([]models.Evento, error)
	GetByPeriodo(ctx context.Context, dataInicio, dataFim time.Time) ([]models.Evento, error)
	Create(ctx context.Context, evento models.Evento) (models.Evento, error)
	Update(ctx context.Context, id uuid.UUID, update models.EventoUpdate) (models.Evento, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
