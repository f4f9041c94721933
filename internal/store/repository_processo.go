package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/models"
)

// processoRepository is the PostgreSQL-backed implementation of
// [ProcessoRepository]. Case rows keep their scalar fields in regular
// columns; the pagamento and historico sub-documents live in jsonb columns
// so the head-insert of a history entry stays a single atomic statement.
type processoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProcessoRepository constructs a [ProcessoRepository] backed by the
// provided database connection and logger.
func NewProcessoRepository(db *DB, logger *logger.Logger) ProcessoRepository {
	logger.Debug().Msg("creating processo repository")
	return &processoRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll returns every case record ordered by client name ascending, the
// order the kanban grouping relies on.
func (r *processoRepository) GetAll(ctx context.Context) ([]models.Processo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllProcessos)
	if err != nil {
		log.Err(err).Str("func", "*processoRepository.GetAll").Msg("error querying processos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectProcessos(rows)
}

// GetByID returns the case record with the given id.
// Returns [ErrProcessoNotFound] when the id does not resolve.
func (r *processoRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Processo, error) {
	log := logger.FromContext(ctx)

	processo, err := scanProcesso(r.db.QueryRowContext(ctx, getProcessoByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Processo{}, ErrProcessoNotFound
		}

		log.Err(err).Str("func", "*processoRepository.GetByID").Str("id", id.String()).Msg("error querying processo")
		return models.Processo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return processo, nil
}

// GetByIDs returns the case records matching any of the given ids. Missing
// ids are simply absent from the result; callers treat that as a dangling
// reference.
func (r *processoRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Processo, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, getProcessosByIDs, uuidArrayLiteral(ids))
	if err != nil {
		log.Err(err).Str("func", "*processoRepository.GetByIDs").Msg("error querying processos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectProcessos(rows)
}

// Create inserts a new case record and returns the stored representation.
func (r *processoRepository) Create(ctx context.Context, processo models.Processo) (models.Processo, error) {
	log := logger.FromContext(ctx)

	args, err := processoInsertArgs(processo)
	if err != nil {
		return models.Processo{}, err
	}

	created, err := scanProcesso(r.db.QueryRowContext(ctx, createProcesso, args...))
	if err != nil {
		log.Err(err).Str("func", "*processoRepository.Create").Msg("error inserting processo")
		return models.Processo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// Update overwrites only the supplied fields of the case record and returns
// the updated row. Fields absent from the update are left untouched.
// Returns [ErrProcessoNotFound] when the id does not resolve.
func (r *processoRepository) Update(ctx context.Context, id uuid.UUID, update models.ProcessoUpdate) (models.Processo, error) {
	log := logger.FromContext(ctx)

	builder, hasChanges, err := buildProcessoUpdateQuery(id, update)
	if err != nil {
		return models.Processo{}, err
	}

	// An empty update is a no-op that still reports whether the row exists.
	if !hasChanges {
		return r.GetByID(ctx, id)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*processoRepository.Update").Msg("error building update query")
		return models.Processo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanProcesso(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Processo{}, ErrProcessoNotFound
		}

		log.Err(err).Str("func", "*processoRepository.Update").Str("id", id.String()).Msg("error updating processo")
		return models.Processo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// Delete removes the case record with the given id. Referencing eventos are
// deliberately left alone.
// Returns [ErrProcessoNotFound] when the id does not resolve.
func (r *processoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProcesso, id)
	if err != nil {
		log.Err(err).Str("func", "*processoRepository.Delete").Str("id", id.String()).Msg("error deleting processo")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProcessoNotFound
	}

	return nil
}

// AppendHistorico prepends a {now, descricao} entry to the historico array
// and overwrites the observacao summary with the same text, all in one
// statement. Returns the updated record, or [ErrProcessoNotFound] when the
// id does not resolve.
func (r *processoRepository) AppendHistorico(ctx context.Context, id uuid.UUID, descricao string) (models.Processo, error) {
	log := logger.FromContext(ctx)

	updated, err := scanProcesso(r.db.QueryRowContext(ctx, appendHistorico, id, descricao))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Processo{}, ErrProcessoNotFound
		}

		log.Err(err).Str("func", "*processoRepository.AppendHistorico").Str("id", id.String()).Msg("error appending historico")
		return models.Processo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// buildProcessoUpdateQuery translates a partial update into a squirrel
// UPDATE builder. The second return value reports whether any SET clause was
// added at all.
func buildProcessoUpdateQuery(id uuid.UUID, update models.ProcessoUpdate) (sq.UpdateBuilder, bool, error) {
	builder := sq.Update("processos").PlaceholderFormat(sq.Dollar)
	hasChanges := false

	set := func(column string, value any) {
		builder = builder.Set(column, value)
		hasChanges = true
	}

	if update.NomeCliente != nil {
		set("nome_cliente", *update.NomeCliente)
	}
	if update.Contato != nil {
		set("contato", *update.Contato)
	}
	if update.Indicacao != nil {
		set("indicacao", *update.Indicacao)
	}
	if update.PrimeiroContato != nil {
		set("primeiro_contato", *update.PrimeiroContato)
	}
	if update.Parceria != nil {
		set("parceria", *update.Parceria)
	}
	if update.Porcentagem != nil {
		set("porcentagem", *update.Porcentagem)
	}
	if update.ValorCausa != nil {
		set("valor_causa", *update.ValorCausa)
	}
	if update.Fase != nil {
		set("fase", *update.Fase)
	}
	if update.NumProcesso != nil {
		set("num_processo", *update.NumProcesso)
	}
	if update.Vara != nil {
		set("vara", *update.Vara)
	}
	if update.Tipo != nil {
		set("tipo", *update.Tipo)
	}
	if update.Prazo != nil {
		set("prazo", *update.Prazo)
	}
	if update.Audiencia != nil {
		set("audiencia", *update.Audiencia)
	}
	if update.UltimoContato != nil {
		set("ultimo_contato", *update.UltimoContato)
	}
	if update.StatusPrioridade != nil {
		set("status_prioridade", *update.StatusPrioridade)
	}
	if update.ProximoPasso != nil {
		set("proximo_passo", *update.ProximoPasso)
	}
	if update.Observacao != nil {
		set("observacao", *update.Observacao)
	}
	if update.Pagamento != nil {
		pagamento, err := json.Marshal(update.Pagamento)
		if err != nil {
			return builder, false, fmt.Errorf("%w: marshalling pagamento", ErrBuildingSQLQuery)
		}
		set("pagamento", pagamento)
	}
	if update.Historico != nil {
		historico, err := json.Marshal(*update.Historico)
		if err != nil {
			return builder, false, fmt.Errorf("%w: marshalling historico", ErrBuildingSQLQuery)
		}
		set("historico", historico)
	}

	builder = builder.Where(sq.Eq{"id": id}).Suffix("RETURNING " + processoColumns)

	return builder, hasChanges, nil
}

// collectProcessos drains a multi-row result set through [scanProcesso].
func collectProcessos(rows *sql.Rows) ([]models.Processo, error) {
	var processos []models.Processo
	for rows.Next() {
		processo, err := scanProcesso(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		processos = append(processos, processo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return processos, nil
}
