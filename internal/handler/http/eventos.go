package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/internal/service"
	"github.com/martancouto/juriskanban/internal/store"
	"github.com/martancouto/juriskanban/internal/utils"
	"github.com/martancouto/juriskanban/models"
)

const dateOnlyLayout = "2006-01-02"

// parseEventoDate accepts RFC 3339 timestamps and plain dates.
func parseEventoDate(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed, nil
	}

	return time.Parse(dateOnlyLayout, value)
}

func (h *Handler) listEventos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	eventos, err := h.services.EventoService.List(ctx)
	if err != nil {
		log.Err(err).Msg("listing eventos failed")
		writeError(w, "Erro ao buscar eventos", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, eventos, http.StatusOK)
}

func (h *Handler) listEventosByPeriodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	inicioParam := r.URL.Query().Get("dataInicio")
	fimParam := r.URL.Query().Get("dataFim")
	if inicioParam == "" || fimParam == "" {
		log.Error().Msg("missing dataInicio or dataFim query parameter")
		writeError(w, "Os parâmetros dataInicio e dataFim são obrigatórios.", http.StatusBadRequest)
		return
	}

	inicio, err := parseEventoDate(inicioParam)
	if err != nil {
		log.Err(err).Str("dataInicio", inicioParam).Msg("invalid dataInicio parameter")
		writeError(w, "Data inicial inválida.", http.StatusBadRequest)
		return
	}

	fim, err := parseEventoDate(fimParam)
	if err != nil {
		log.Err(err).Str("dataFim", fimParam).Msg("invalid dataFim parameter")
		writeError(w, "Data final inválida.", http.StatusBadRequest)
		return
	}

	eventos, err := h.services.EventoService.ListByPeriodo(ctx, inicio, fim)
	if err != nil {
		log.Err(err).Msg("listing eventos by period failed")
		writeError(w, "Erro ao buscar eventos", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, eventos, http.StatusOK)
}

func (h *Handler) listEventosByProcesso(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	processoID, err := uuid.Parse(chi.URLParam(r, "processoId"))
	if err != nil {
		log.Err(err).Msg("invalid processo id")
		writeError(w, "Processo não encontrado", http.StatusNotFound)
		return
	}

	eventos, err := h.services.EventoService.ListByProcesso(ctx, processoID)
	if err != nil {
		log.Err(err).Msg("listing eventos by processo failed")
		writeError(w, "Erro ao buscar eventos", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, eventos, http.StatusOK)
}

func (h *Handler) getEvento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid evento id")
		writeError(w, "Evento não encontrado", http.StatusNotFound)
		return
	}

	evento, err := h.services.EventoService.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEventoNotFound):
			log.Err(err).Str("id", id.String()).Msg("evento not found")
			writeError(w, "Evento não encontrado", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred while fetching evento")
			writeError(w, "Erro ao buscar eventos", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, evento, http.StatusOK)
}

func (h *Handler) createEvento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var evento models.Evento
	if err := json.NewDecoder(r.Body).Decode(&evento); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "JSON inválido.", http.StatusBadRequest)
		return
	}

	created, err := h.services.EventoService.Create(ctx, evento)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Err(err).Msg("evento validation failed")
			writeValidationError(w, "Dados do evento inválidos.", validationErr)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during evento creation")
			writeError(w, "Erro ao criar evento", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateEvento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid evento id")
		writeError(w, "Evento não encontrado", http.StatusNotFound)
		return
	}

	var update models.EventoUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "JSON inválido.", http.StatusBadRequest)
		return
	}

	updated, err := h.services.EventoService.Update(ctx, id, update)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Err(err).Msg("evento validation failed")
			writeValidationError(w, "Dados do evento inválidos.", validationErr)
			return
		case errors.Is(err, store.ErrEventoNotFound):
			log.Err(err).Str("id", id.String()).Msg("evento not found")
			writeError(w, "Evento não encontrado", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during evento update")
			writeError(w, "Erro ao atualizar evento", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteEvento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid evento id")
		writeError(w, "Evento não encontrado", http.StatusNotFound)
		return
	}

	if err = h.services.EventoService.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrEventoNotFound):
			log.Err(err).Str("id", id.String()).Msg("evento not found")
			writeError(w, "Evento não encontrado", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during evento deletion")
			writeError(w, "Erro ao deletar evento", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.DeleteResponse{
		Message: "Evento deletado com sucesso",
		ID:      id.String(),
	}, http.StatusOK)
}
