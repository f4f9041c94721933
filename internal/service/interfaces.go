package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/martancouto/juriskanban/models"
)

// AuthService implements the two-user bootstrap authentication scheme:
// capacity-limited registration, login with token issuance, password
// rotation, and token verification.
type AuthService interface {
	// Register creates one of the bootstrap accounts. It fails with
	// ErrRegistrationClosed unless the username is allow-listed AND the
	// account capacity has not been reached.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies the credentials and returns the matching user record.
	// Any failure surfaces as ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// ChangePassword re-authenticates with the old password and persists the
	// hash of the new one. Previously issued tokens stay valid until their
	// natural expiry.
	ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and resolves it to the current
	// user record, re-fetched from the store so a deleted account is
	// rejected even while its tokens are formally still valid.
	ParseToken(ctx context.Context, tokenString string) (models.User, error)
}

// ProcessoService owns the case-record workflows of the kanban board.
type ProcessoService interface {
	// ListGroupedByFase returns every case partitioned by kanban column.
	// Cases are sorted by client name; phases with no cases are absent from
	// the map.
	ListGroupedByFase(ctx context.Context) (map[string][]models.Processo, error)

	Create(ctx context.Context, processo models.Processo) (models.Processo, error)
	Update(ctx context.Context, id uuid.UUID, update models.ProcessoUpdate) (models.Processo, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// AppendHistorico inserts a new history entry at the head of the
	// historico array and overwrites the observacao summary with its text.
	AppendHistorico(ctx context.Context, id uuid.UUID, descricao string) (models.Processo, error)
}

// EventoService owns the calendar workflows. Every read expands the processo
// reference when the referenced case still exists.
type EventoService interface {
	List(ctx context.Context) ([]models.Evento, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Evento, error)
	ListByProcesso(ctx context.Context, processoID uuid.UUID) ([]models.Evento, error)
	ListByPeriodo(ctx context.Context, dataInicio, dataFim time.Time) ([]models.Evento, error)
	Create(ctx context.Context, evento models.Evento) (models.Evento, error)
	Update(ctx context.Context, id uuid.UUID, update models.EventoUpdate) (models.Evento, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
