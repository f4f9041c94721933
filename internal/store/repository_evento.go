package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/models"
)

// eventoRepository is the PostgreSQL-backed implementation of
// [EventoRepository]. The processo reference is a plain uuid column without
// a foreign key: deleting a case must not cascade into its events.
type eventoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEventoRepository constructs an [EventoRepository] backed by the
// provided database connection and logger.
func NewEventoRepository(db *DB, logger *logger.Logger) EventoRepository {
	logger.Debug().Msg("creating evento repository")
	return &eventoRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll returns every calendar event ordered by start date.
func (r *eventoRepository) GetAll(ctx context.Context) ([]models.Evento, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllEventos)
	if err != nil {
		log.Err(err).Str("func", "*eventoRepository.GetAll").Msg("error querying eventos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectEventos(rows)
}

// GetByID returns the event with the given id.
// Returns [ErrEventoNotFound] when the id does not resolve.
func (r *eventoRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Evento, error) {
	log := logger.FromContext(ctx)

	evento, err := scanEvento(r.db.QueryRowContext(ctx, getEventoByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Evento{}, ErrEventoNotFound
		}

		log.Err(err).Str("func", "*eventoRepository.GetByID").Str("id", id.String()).Msg("error querying evento")
		return models.Evento{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return evento, nil
}

// GetByProcesso returns every event referencing the given case, ordered by
// start date.
func (r *eventoRepository) GetByProcesso(ctx context.Context, processoID uuid.UUID) ([]models.Evento, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getEventosByProcesso, processoID)
	if err != nil {
		log.Err(err).Str("func", "*eventoRepository.GetByProcesso").Msg("error querying eventos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectEventos(rows)
}

// GetByPeriodo returns the events whose data_inicio falls within
// [dataInicio, dataFim], bounds included.
func (r *eventoRepository) GetByPeriodo(ctx context.Context, dataInicio, dataFim time.Time) ([]models.Evento, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(eventoColumns).
		From("eventos").
		Where(sq.GtOrEq{"data_inicio": dataInicio}).
		Where(sq.LtOrEq{"data_inicio": dataFim}).
		OrderBy("data_inicio ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventoRepository.GetByPeriodo").Msg("error querying eventos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectEventos(rows)
}

// Create inserts a new event and returns the stored representation with the
// server-assigned timestamps.
func (r *eventoRepository) Create(ctx context.Context, evento models.Evento) (models.Evento, error) {
	log := logger.FromContext(ctx)

	var processoID uuid.NullUUID
	if evento.ProcessoID != nil {
		processoID = uuid.NullUUID{UUID: *evento.ProcessoID, Valid: true}
	}

	created, err := scanEvento(r.db.QueryRowContext(ctx, createEvento,
		evento.ID, evento.Titulo, evento.Descricao, evento.Tipo, evento.DataInicio, evento.DataFim,
		processoID, evento.Local, evento.Notas, evento.Concluido,
	))
	if err != nil {
		log.Err(err).Str("func", "*eventoRepository.Create").Msg("error inserting evento")
		return models.Evento{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// Update overwrites only the supplied fields of the event and refreshes
// atualizado_em, returning the updated row.
// Returns [ErrEventoNotFound] when the id does not resolve.
func (r *eventoRepository) Update(ctx context.Context, id uuid.UUID, update models.EventoUpdate) (models.Evento, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("eventos").PlaceholderFormat(sq.Dollar).
		Set("atualizado_em", sq.Expr("now()"))

	if update.Titulo != nil {
		builder = builder.Set("titulo", *update.Titulo)
	}
	if update.Descricao != nil {
		builder = builder.Set("descricao", *update.Descricao)
	}
	if update.Tipo != nil {
		builder = builder.Set("tipo", *update.Tipo)
	}
	if update.DataInicio != nil {
		builder = builder.Set("data_inicio", *update.DataInicio)
	}
	if update.DataFim != nil {
		builder = builder.Set("data_fim", *update.DataFim)
	}
	if update.ProcessoID != nil {
		builder = builder.Set("processo_id", *update.ProcessoID)
	}
	if update.Local != nil {
		builder = builder.Set("local", *update.Local)
	}
	if update.Notas != nil {
		builder = builder.Set("notas", *update.Notas)
	}
	if update.Concluido != nil {
		builder = builder.Set("concluido", *update.Concluido)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + eventoColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*eventoRepository.Update").Msg("error building update query")
		return models.Evento{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanEvento(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Evento{}, ErrEventoNotFound
		}

		log.Err(err).Str("func", "*eventoRepository.Update").Str("id", id.String()).Msg("error updating evento")
		return models.Evento{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// Delete removes the event with the given id.
// Returns [ErrEventoNotFound] when the id does not resolve.
func (r *eventoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteEvento, id)
	if err != nil {
		log.Err(err).Str("func", "*eventoRepository.Delete").Str("id", id.String()).Msg("error deleting evento")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEventoNotFound
	}

	return nil
}

// collectEventos drains a multi-row result set through [scanEvento].
func collectEventos(rows *sql.Rows) ([]models.Evento, error) {
	var eventos []models.Evento
	for rows.Next() {
		evento, err := scanEvento(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		eventos = append(eventos, evento)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return eventos, nil
}
