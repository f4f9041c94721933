package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/martancouto/juriskanban/internal/config"
	"github.com/martancouto/juriskanban/internal/crypto"
	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/internal/mock"
	"github.com/martancouto/juriskanban/internal/store"
	"github.com/martancouto/juriskanban/models"
)

// newTestAuthSvc builds an authService wired to a mocked user repository.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)

	cfg := config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "juriskanban",
		TokenDuration:    time.Hour,
		BcryptCost:       bcrypt.MinCost,
		AllowedUsernames: []string{"martancouto", "richardtotolo"},
		MaxUsers:         2,
	}

	svc := NewAuthService(mockRepo, crypto.NewHasher(bcrypt.MinCost), cfg, logger.Nop()).(*authService)

	return svc, mockRepo
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CountUsers(ctx).Return(int64(0), nil)
	mockRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "martancouto", user.Username)
			assert.NotEmpty(t, user.PasswordHash)
			assert.NotEqual(t, "senha-forte", user.PasswordHash)
			user.UserID = 1
			return user, nil
		})

	registered, err := svc.Register(ctx, models.Credentials{Username: "martancouto", Password: "senha-forte"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "martancouto", registered.Username)
}

func TestAuthRegister_TrimsUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CountUsers(ctx).Return(int64(0), nil)
	mockRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "richardtotolo", user.Username)
			return user, nil
		})

	_, err := svc.Register(ctx, models.Credentials{Username: "  richardtotolo  ", Password: "senha-forte"})
	require.NoError(t, err)
}

func TestAuthRegister_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.Credentials{Username: "", Password: "senha-forte"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(ctx, models.Credentials{Username: "martancouto", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthRegister_UsernameNotAllowListed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CountUsers(ctx).Return(int64(0), nil)

	_, err := svc.Register(ctx, models.Credentials{Username: "intruso", Password: "senha-forte"})
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestAuthRegister_CapacityReached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// even an allow-listed username is rejected once two accounts exist
	mockRepo.EXPECT().CountUsers(ctx).Return(int64(2), nil)

	_, err := svc.Register(ctx, models.Credentials{Username: "martancouto", Password: "senha-forte"})
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestAuthRegister_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CountUsers(ctx).Return(int64(1), nil)
	mockRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.Register(ctx, models.Credentials{Username: "martancouto", Password: "senha-forte"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       1,
		Username:     "martancouto",
		PasswordHash: hashFor(t, "senha-forte"),
	}

	mockRepo.EXPECT().FindUserByUsername(ctx, "martancouto").Return(stored, nil)

	found, err := svc.Login(ctx, models.Credentials{Username: "martancouto", Password: "senha-forte"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.UserID)
}

func TestAuthLogin_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.Credentials{Username: "ghost", Password: "tanto-faz"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       1,
		Username:     "martancouto",
		PasswordHash: hashFor(t, "senha-forte"),
	}

	mockRepo.EXPECT().FindUserByUsername(ctx, "martancouto").Return(stored, nil)

	// wrong password and unknown user are indistinguishable to the caller
	_, err := svc.Login(ctx, models.Credentials{Username: "martancouto", Password: "senha-errada"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestAuthChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       1,
		Username:     "martancouto",
		PasswordHash: hashFor(t, "senha-antiga"),
	}

	mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(stored, nil)
	mockRepo.EXPECT().
		UpdatePassword(ctx, int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("senha-nova")))
			return nil
		})

	err := svc.ChangePassword(ctx, 1, models.PasswordChange{
		OldPassword: "senha-antiga",
		NewPassword: "senha-nova",
	})
	require.NoError(t, err)
}

func TestAuthChangePassword_TooShort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// five characters fail before any repository access
	err := svc.ChangePassword(ctx, 1, models.PasswordChange{
		OldPassword: "senha-antiga",
		NewPassword: "cinco",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthChangePassword_WrongOldPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       1,
		PasswordHash: hashFor(t, "senha-antiga"),
	}

	mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(stored, nil)

	err := svc.ChangePassword(ctx, 1, models.PasswordChange{
		OldPassword: "senha-errada",
		NewPassword: "senha-nova",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthChangePassword_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindUserByID(ctx, int64(99)).
		Return(models.User{}, store.ErrNoUserWasFound)

	err := svc.ChangePassword(ctx, 99, models.PasswordChange{
		OldPassword: "senha-antiga",
		NewPassword: "senha-nova",
	})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthCreateAndParseToken_Roundtrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 1, Username: "martancouto"}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(user, nil)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, parsed.UserID)
	assert.Equal(t, user.Username, parsed.Username)
}

func TestAuthParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthParseToken_WrongSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 1, Username: "martancouto"}
	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)

	svc.tokenSignKey = "another-sign-key"

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	svc.tokenDuration = -time.Minute
	user := models.User{UserID: 1, Username: "martancouto"}
	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthParseToken_UserNoLongerExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 1, Username: "martancouto"}
	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)

	mockRepo.EXPECT().
		FindUserByID(ctx, int64(1)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
