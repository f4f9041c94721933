package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/internal/service"
	"github.com/martancouto/juriskanban/internal/store"
	"github.com/martancouto/juriskanban/internal/utils"
	"github.com/martancouto/juriskanban/models"
)

func (h *Handler) listProcessos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	grouped, err := h.services.ProcessoService.ListGroupedByFase(ctx)
	if err != nil {
		log.Err(err).Msg("listing processos failed")
		writeError(w, "Erro ao buscar processos", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, grouped, http.StatusOK)
}

func (h *Handler) createProcesso(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var processo models.Processo
	if err := json.NewDecoder(r.Body).Decode(&processo); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "JSON inválido.", http.StatusBadRequest)
		return
	}

	created, err := h.services.ProcessoService.Create(ctx, processo)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Err(err).Msg("processo validation failed")
			writeValidationError(w, "Dados do processo inválidos.", validationErr)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during processo creation")
			writeError(w, "Erro ao criar processo", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateProcesso(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid processo id")
		writeError(w, "Processo não encontrado", http.StatusNotFound)
		return
	}

	var update models.ProcessoUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "JSON inválido.", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProcessoService.Update(ctx, id, update)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Err(err).Msg("processo validation failed")
			writeValidationError(w, "Dados do processo inválidos.", validationErr)
			return
		case errors.Is(err, store.ErrProcessoNotFound):
			log.Err(err).Str("id", id.String()).Msg("processo not found")
			writeError(w, "Processo não encontrado", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during processo update")
			writeError(w, "Erro ao atualizar processo", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) appendHistorico(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid processo id")
		writeError(w, "Processo não encontrado", http.StatusNotFound)
		return
	}

	var body struct {
		Descricao string `json:"descricao"`
	}
	if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "JSON inválido.", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProcessoService.AppendHistorico(ctx, id, body.Descricao)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Err(err).Msg("historico validation failed")
			writeValidationError(w, "A descrição da atualização é obrigatória.", validationErr)
			return
		case errors.Is(err, store.ErrProcessoNotFound):
			log.Err(err).Str("id", id.String()).Msg("processo not found")
			writeError(w, "Processo não encontrado", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred while appending historico")
			writeError(w, "Erro ao adicionar atualização", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProcesso(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid processo id")
		writeError(w, "Processo não encontrado para exclusão", http.StatusNotFound)
		return
	}

	if err = h.services.ProcessoService.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrProcessoNotFound):
			log.Err(err).Str("id", id.String()).Msg("processo not found")
			writeError(w, "Processo não encontrado para exclusão", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during processo deletion")
			writeError(w, "Erro ao excluir processo", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.DeleteResponse{
		Message: "Processo excluído com sucesso",
		ID:      id.String(),
	}, http.StatusOK)
}
