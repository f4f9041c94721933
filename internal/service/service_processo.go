package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/internal/store"
	"github.com/martancouto/juriskanban/models"
)

// processoService is the concrete implementation of ProcessoService.
type processoService struct {
	processoRepository store.ProcessoRepository
	logger             *logger.Logger
}

// NewProcessoService constructs a new ProcessoService wired to the given
// repository.
func NewProcessoService(processoRepository store.ProcessoRepository, logger *logger.Logger) ProcessoService {
	return &processoService{
		processoRepository: processoRepository,
		logger:             logger,
	}
}

// ListGroupedByFase fetches every case sorted by client name and partitions
// the result by kanban column. Per-column order follows the sort; columns
// with no cases do not appear in the map.
func (s *processoService) ListGroupedByFase(ctx context.Context) (map[string][]models.Processo, error) {
	log := logger.FromContext(ctx)

	processos, err := s.processoRepository.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("fetching processos failed")
		return nil, fmt.Errorf("fetching processos failed: %w", err)
	}

	grouped := make(map[string][]models.Processo)
	for _, processo := range processos {
		grouped[processo.Fase] = append(grouped[processo.Fase], processo)
	}

	return grouped, nil
}

// Create validates and persists a new case record.
//
// A record created without history is seeded with a single synthetic entry
// so every case carries at least one status note. History entries without a
// timestamp get the current time, and a pagamento document without a status
// defaults to "Não Pago".
func (s *processoService) Create(ctx context.Context, processo models.Processo) (models.Processo, error) {
	log := logger.FromContext(ctx)

	if err := newValidationError(processo.Validate()); err != nil {
		log.Warn().Err(err).Msg("processo validation failed")
		return models.Processo{}, err
	}

	if processo.ID == uuid.Nil {
		processo.ID = uuid.New()
	}

	now := time.Now()
	if len(processo.Historico) == 0 {
		processo.Historico = []models.HistoricoEntry{{Data: now, Descricao: models.DefaultHistoricoEntry}}
	} else {
		for i := range processo.Historico {
			if processo.Historico[i].Data.IsZero() {
				processo.Historico[i].Data = now
			}
		}
	}

	if processo.Pagamento != nil && processo.Pagamento.Status == "" {
		processo.Pagamento.Status = models.PagamentoNaoPago
	}

	created, err := s.processoRepository.Create(ctx, processo)
	if err != nil {
		log.Err(err).Msg("processo creation ended with error")
		return models.Processo{}, fmt.Errorf("processo creation ended with error: %w", err)
	}

	return created, nil
}

// Update validates and applies a partial update. Only the supplied fields
// overwrite stored values.
func (s *processoService) Update(ctx context.Context, id uuid.UUID, update models.ProcessoUpdate) (models.Processo, error) {
	log := logger.FromContext(ctx)

	if err := newValidationError(update.Validate()); err != nil {
		log.Warn().Err(err).Str("id", id.String()).Msg("processo update validation failed")
		return models.Processo{}, err
	}

	updated, err := s.processoRepository.Update(ctx, id, update)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("processo update ended with error")
		return models.Processo{}, fmt.Errorf("processo update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes a case record. Eventos referencing it are left in place;
// their reference simply stops expanding.
func (s *processoService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.processoRepository.Delete(ctx, id); err != nil {
		log.Err(err).Str("id", id.String()).Msg("processo deletion ended with error")
		return fmt.Errorf("processo deletion ended with error: %w", err)
	}

	return nil
}

// AppendHistorico inserts a new entry at the head of the historico array and
// overwrites observacao with the same text.
//
// The observacao dual-write keeps the board's "current observation" field in
// sync with the newest history note. The coupling is intentional and the
// frontend depends on it, even though it means a history append silently
// replaces a field the user may have edited separately.
func (s *processoService) AppendHistorico(ctx context.Context, id uuid.UUID, descricao string) (models.Processo, error) {
	log := logger.FromContext(ctx)

	descricao = strings.TrimSpace(descricao)
	if descricao == "" {
		return models.Processo{}, newValidationError([]models.FieldError{
			{Field: "descricao", Message: "descrição é obrigatória"},
		})
	}

	updated, err := s.processoRepository.AppendHistorico(ctx, id, descricao)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("historico append ended with error")
		return models.Processo{}, fmt.Errorf("historico append ended with error: %w", err)
	}

	return updated, nil
}
