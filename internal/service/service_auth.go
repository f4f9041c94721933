package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/martancouto/juriskanban/internal/config"
	"github.com/martancouto/juriskanban/internal/crypto"
	"github.com/martancouto/juriskanban/internal/logger"
	"github.com/martancouto/juriskanban/internal/store"
	"github.com/martancouto/juriskanban/internal/utils"
	"github.com/martancouto/juriskanban/models"
)

// MinPasswordLength is the minimum accepted length for a new password.
const MinPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles the bootstrap registration gate, credential verification with
// bcrypt, and the JWT token lifecycle using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher performs bcrypt hashing and verification of passwords.
	hasher *crypto.Hasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Always injected from configuration, never compiled in.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// allowedUsernames is the bootstrap allow-list: the only usernames that
	// may ever be registered.
	allowedUsernames map[string]struct{}

	// maxUsers caps how many accounts may exist before registration closes.
	maxUsers int64

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher *crypto.Hasher, cfg config.App, logger *logger.Logger) AuthService {
	allowed := make(map[string]struct{}, len(cfg.AllowedUsernames))
	for _, username := range cfg.AllowedUsernames {
		allowed[username] = struct{}{}
	}

	return &authService{
		userRepository:   userRepository,
		hasher:           hasher,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		allowedUsernames: allowed,
		maxUsers:         int64(cfg.MaxUsers),
		logger:           logger,
	}
}

// Register creates a new bootstrap account.
//
// The gate is one combined condition, deliberately mirroring the board's
// bootstrap policy: the username must be on the allow-list AND the current
// account count must be below capacity. Once capacity is reached, allow-list
// membership no longer matters.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrRegistrationClosed if the gate rejects the attempt.
//   - A wrapped store.ErrUsernameAlreadyExists on a duplicate username.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	count, err := a.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Msg("counting users failed")
		return models.User{}, fmt.Errorf("counting users failed: %w", err)
	}

	if _, allowed := a.allowedUsernames[username]; !allowed || count >= a.maxUsers {
		log.Warn().Str("username", username).Int64("count", count).Msg("registration rejected by bootstrap gate")
		return models.User{}, ErrRegistrationClosed
	}

	passwordHash, err := a.hasher.HashPassword(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The lookup is by exact username. Both a missing user and a wrong password
// surface as ErrInvalidCredentials so the response cannot reveal which one
// failed.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(creds.Username)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", username).Msg("login attempt for unknown user")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.VerifyPassword(creds.Password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// ChangePassword rotates the password of the authenticated user.
//
// Returns:
//   - ErrPasswordTooShort if the new password has fewer than 6 characters,
//     checked before the old password so length failures never leak whether
//     the old password was correct.
//   - A wrapped store.ErrNoUserWasFound if the user id does not resolve.
//   - ErrWrongPassword if the old password does not match the stored hash.
//
// Tokens issued before the change remain valid until their natural expiry;
// there is no revocation list.
func (a *authService) ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	if len(change.NewPassword) < MinPasswordLength {
		log.Warn().Int64("id", userID).Msg("new password is too short")
		return ErrPasswordTooShort
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !a.hasher.VerifyPassword(change.OldPassword, user.PasswordHash) {
		log.Warn().Int64("id", userID).Msg("old password does not match")
		return ErrWrongPassword
	}

	passwordHash, err := a.hasher.HashPassword(change.NewPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, userID, passwordHash); err != nil {
		log.Err(err).Int64("id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("token creation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and resolves it to the current user
// record.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors. The user is re-fetched from the store rather
// than trusted from the decoded claims, so an account deleted mid-session is
// rejected even while its tokens are formally still valid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Int64("id", token.UserID).Msg("token presented for a user that no longer exists")
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}

		log.Err(err).Int64("id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
