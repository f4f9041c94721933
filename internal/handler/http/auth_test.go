package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/internal/service"
	"github.com/martancouto/juriskanban/internal/store"
	"github.com/martancouto/juriskanban/internal/utils"
	"github.com/martancouto/juriskanban/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn       func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn          func(ctx context.Context, creds models.Credentials) (models.User, error)
	changePasswordFn func(ctx context.Context, userID int64, change models.PasswordChange) error
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error {
	return m.changePasswordFn(ctx, userID, change)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.User, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises any value to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// decodeError reads an ErrorResponse body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var validCreds = models.Credentials{
	Username: "martancouto",
	Password: "senha-forte",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			return models.User{UserID: 1, Username: creds.Username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, signedToken, body.Token)
	assert.Equal(t, "martancouto", body.Username)
	assert.Equal(t, "Usuário cadastrado com sucesso!", body.Message)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_RegistrationClosed(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrRegistrationClosed
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "O cadastro está limitado a dois usuários. Use a rota de login ou alteração de senha.", body.Message)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Usuário já existe.", body.Message)
}

func TestRegister_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			return models.User{UserID: 1, Username: creds.Username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing failed")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			return models.User{UserID: 1, Username: creds.Username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, signedToken, body.Token)
	assert.Equal(t, "martancouto", body.Username)
	assert.Empty(t, body.Message)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Credenciais inválidas.", body.Message)
}

func TestLogin_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// changePassword
// ─────────────────────────────────────────────

// withUserID stores a user id in the request context the way the auth
// middleware does.
func withUserID(req *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

func TestChangePassword_Success(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, userID int64, change models.PasswordChange) error {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, "senha-antiga", change.OldPassword)
			assert.Equal(t, "senha-nova", change.NewPassword)
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.PasswordChange{OldPassword: "senha-antiga", NewPassword: "senha-nova"})
	req := withUserID(httptest.NewRequest(http.MethodPut, "/api/auth/change-password", strings.NewReader(body)), 1)
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Senha alterada com sucesso.", resp.Message)
}

func TestChangePassword_MissingUserInContext(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	body := jsonBody(t, models.PasswordChange{OldPassword: "a", NewPassword: "senha-nova"})
	req := httptest.NewRequest(http.MethodPut, "/api/auth/change-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword_TooShort(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, _ int64, _ models.PasswordChange) error {
			return service.ErrPasswordTooShort
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.PasswordChange{OldPassword: "senha-antiga", NewPassword: "cinco"})
	req := withUserID(httptest.NewRequest(http.MethodPut, "/api/auth/change-password", strings.NewReader(body)), 1)
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "A nova senha deve ter pelo menos 6 caracteres.", resp.Message)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, _ int64, _ models.PasswordChange) error {
			return service.ErrWrongPassword
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.PasswordChange{OldPassword: "senha-errada", NewPassword: "senha-nova"})
	req := withUserID(httptest.NewRequest(http.MethodPut, "/api/auth/change-password", strings.NewReader(body)), 1)
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Senha antiga incorreta.", resp.Message)
}

func TestChangePassword_UserNotFound(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, _ int64, _ models.PasswordChange) error {
			return store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.PasswordChange{OldPassword: "senha-antiga", NewPassword: "senha-nova"})
	req := withUserID(httptest.NewRequest(http.MethodPut, "/api/auth/change-password", strings.NewReader(body)), 99)
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Usuário não encontrado.", resp.Message)
}
