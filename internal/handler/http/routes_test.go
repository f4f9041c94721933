package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/internal/service"
	"github.com/martancouto/juriskanban/models"
)

// newRouter builds the full chi router with every service mocked out.
func newRouter(t *testing.T) http.Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService: &mockAuthService{
			registerFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
				return models.User{UserID: 1, Username: creds.Username}, nil
			},
			loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
				return models.User{UserID: 1, Username: creds.Username}, nil
			},
			createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
				return models.Token{SignedString: "signed.jwt.token"}, nil
			},
			parseTokenFn: func(_ context.Context, tokenString string) (models.User, error) {
				if tokenString != "valid.jwt.token" {
					return models.User{}, service.ErrTokenIsExpiredOrInvalid
				}
				return models.User{UserID: 1, Username: "martancouto"}, nil
			},
		},
		ProcessoService: &mockProcessoService{
			listGroupedByFaseFn: func(_ context.Context) (map[string][]models.Processo, error) {
				return map[string][]models.Processo{}, nil
			},
		},
		EventoService: &mockEventoService{
			listFn: func(_ context.Context) ([]models.Evento, error) {
				return []models.Evento{}, nil
			},
		},
	}

	return NewHandler(svcs, logger.Nop()).Init()
}

func TestRoutes_RegisterIsOpen(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"martancouto","password":"senha-forte"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRoutes_ProcessosRequireToken(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/processos", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "Acesso negado. Token não fornecido.", body.Message)
}

func TestRoutes_ProcessosWithValidToken(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/processos", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_EventosAreOpen(t *testing.T) {
	router := newRouter(t)

	// the calendar routes are served without a token
	req := httptest.NewRequest(http.MethodGet, "/api/eventos", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/eventos", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
