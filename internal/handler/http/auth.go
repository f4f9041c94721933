package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/internal/service"
	"github.com/martancouto/juriskanban/internal/store"
	"github.com/martancouto/juriskanban/internal/utils"
	"github.com/martancouto/juriskanban/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "JSON inválido.", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "Dados inválidos.", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrRegistrationClosed):
			log.Err(err).Msg("registration closed")
			writeError(w, "O cadastro está limitado a dois usuários. Use a rota de login ou alteração de senha.", http.StatusForbidden)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			writeError(w, "Usuário já existe.", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, "Erro ao cadastrar usuário.", http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, "Erro ao cadastrar usuário.", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Token:    token.SignedString,
		Username: registeredUser.Username,
		Message:  "Usuário cadastrado com sucesso!",
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "JSON inválido.", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			writeError(w, "Credenciais inválidas.", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, "Erro interno do servidor.", http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, "Erro interno do servidor.", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Token:    token.SignedString,
		Username: foundUser.Username,
	}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var change models.PasswordChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "JSON inválido.", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, userID, change); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			log.Err(err).Msg("new password too short")
			writeError(w, "A nova senha deve ter pelo menos 6 caracteres.", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("user not found")
			writeError(w, "Usuário não encontrado.", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("old password incorrect")
			writeError(w, "Senha antiga incorreta.", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password change")
			writeError(w, "Erro ao alterar a senha.", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Senha alterada com sucesso."}, http.StatusOK)
}
