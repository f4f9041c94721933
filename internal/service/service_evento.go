package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/internal/store"
	"github.com/martancouto/juriskanban/models"
)

// eventoService is the concrete implementation of EventoService.
// It composes the evento repository with a read-side expansion of the
// processo reference: every returned event carries the current fields of the
// case it points to, when that case still exists.
type eventoService struct {
	eventoRepository   store.EventoRepository
	processoRepository store.ProcessoRepository
	logger             *logger.Logger
}

// NewEventoService constructs a new EventoService wired to the given
// repositories.
func NewEventoService(eventoRepository store.EventoRepository, processoRepository store.ProcessoRepository, logger *logger.Logger) EventoService {
	return &eventoService{
		eventoRepository:   eventoRepository,
		processoRepository: processoRepository,
		logger:             logger,
	}
}

// List returns every event, expanded.
func (s *eventoService) List(ctx context.Context) ([]models.Evento, error) {
	eventos, err := s.eventoRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching eventos failed: %w", err)
	}

	return s.expandProcessos(ctx, eventos)
}

// GetByID returns one event, expanded.
func (s *eventoService) GetByID(ctx context.Context, id uuid.UUID) (models.Evento, error) {
	evento, err := s.eventoRepository.GetByID(ctx, id)
	if err != nil {
		return models.Evento{}, fmt.Errorf("fetching evento failed: %w", err)
	}

	return s.expandProcesso(ctx, evento)
}

// ListByProcesso returns every event referencing the given case, expanded.
func (s *eventoService) ListByProcesso(ctx context.Context, processoID uuid.UUID) ([]models.Evento, error) {
	eventos, err := s.eventoRepository.GetByProcesso(ctx, processoID)
	if err != nil {
		return nil, fmt.Errorf("fetching eventos failed: %w", err)
	}

	return s.expandProcessos(ctx, eventos)
}

// ListByPeriodo returns the events starting within [dataInicio, dataFim],
// bounds included, expanded.
func (s *eventoService) ListByPeriodo(ctx context.Context, dataInicio, dataFim time.Time) ([]models.Evento, error) {
	eventos, err := s.eventoRepository.GetByPeriodo(ctx, dataInicio, dataFim)
	if err != nil {
		return nil, fmt.Errorf("fetching eventos failed: %w", err)
	}

	return s.expandProcessos(ctx, eventos)
}

// Create validates and persists a new event, defaulting tipo to "Outro".
func (s *eventoService) Create(ctx context.Context, evento models.Evento) (models.Evento, error) {
	log := logger.FromContext(ctx)

	if err := newValidationError(evento.Validate()); err != nil {
		log.Warn().Err(err).Msg("evento validation failed")
		return models.Evento{}, err
	}

	if evento.ID == uuid.Nil {
		evento.ID = uuid.New()
	}
	if evento.Tipo == "" {
		evento.Tipo = models.EventoOutro
	}

	created, err := s.eventoRepository.Create(ctx, evento)
	if err != nil {
		log.Err(err).Msg("evento creation ended with error")
		return models.Evento{}, fmt.Errorf("evento creation ended with error: %w", err)
	}

	return s.expandProcesso(ctx, created)
}

// Update validates and applies a partial update; the store refreshes
// atualizadoEm on every mutation.
func (s *eventoService) Update(ctx context.Context, id uuid.UUID, update models.EventoUpdate) (models.Evento, error) {
	log := logger.FromContext(ctx)

	if err := newValidationError(update.Validate()); err != nil {
		log.Warn().Err(err).Str("id", id.String()).Msg("evento update validation failed")
		return models.Evento{}, err
	}

	updated, err := s.eventoRepository.Update(ctx, id, update)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("evento update ended with error")
		return models.Evento{}, fmt.Errorf("evento update ended with error: %w", err)
	}

	return s.expandProcesso(ctx, updated)
}

// Delete removes an event.
func (s *eventoService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.eventoRepository.Delete(ctx, id); err != nil {
		log.Err(err).Str("id", id.String()).Msg("evento deletion ended with error")
		return fmt.Errorf("evento deletion ended with error: %w", err)
	}

	return nil
}

// expandProcessos attaches the referenced case to every event in one batch
// lookup. A reference whose case no longer exists is silently left
// unexpanded; only a store failure aborts the read.
func (s *eventoService) expandProcessos(ctx context.Context, eventos []models.Evento) ([]models.Evento, error) {
	log := logger.FromContext(ctx)

	ids := make([]uuid.UUID, 0, len(eventos))
	seen := make(map[uuid.UUID]struct{}, len(eventos))
	for _, evento := range eventos {
		if evento.ProcessoID == nil {
			continue
		}
		if _, ok := seen[*evento.ProcessoID]; ok {
			continue
		}
		seen[*evento.ProcessoID] = struct{}{}
		ids = append(ids, *evento.ProcessoID)
	}

	if len(ids) == 0 {
		return eventos, nil
	}

	processos, err := s.processoRepository.GetByIDs(ctx, ids)
	if err != nil {
		log.Err(err).Msg("expanding processo references failed")
		return nil, fmt.Errorf("expanding processo references failed: %w", err)
	}

	byID := make(map[uuid.UUID]models.Processo, len(processos))
	for _, processo := range processos {
		byID[processo.ID] = processo
	}

	for i := range eventos {
		if eventos[i].ProcessoID == nil {
			continue
		}
		if processo, ok := byID[*eventos[i].ProcessoID]; ok {
			p := processo
			eventos[i].Processo = &p
		}
	}

	return eventos, nil
}

// expandProcesso is the single-event variant of [expandProcessos].
func (s *eventoService) expandProcesso(ctx context.Context, evento models.Evento) (models.Evento, error) {
	expanded, err := s.expandProcessos(ctx, []models.Evento{evento})
	if err != nil {
		return models.Evento{}, err
	}

	return expanded[0], nil
}
