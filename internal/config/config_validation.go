package config

import "time"

// Defaults applied after all sources are merged and before validation.
const (
	DefaultHTTPAddress   = ":3001"
	DefaultTokenIssuer   = "juriskanban"
	DefaultTokenDuration = 24 * time.Hour
	DefaultBcryptCost    = 12
	DefaultMaxUsers      = 2

	// MinBcryptCost is the lowest work factor accepted for password hashing.
	MinBcryptCost = 10
)

// DefaultAllowedUsernames is the bootstrap allow-list used when no explicit
// list is configured: the two initial operators of the board.
var DefaultAllowedUsernames = []string{"martancouto", "richardtotolo"}

// applyDefaults fills every optional field that remained zero after all
// sources were merged.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.MaxUsers == 0 {
		cfg.App.MaxUsers = DefaultMaxUsers
	}
	if len(cfg.App.AllowedUsernames) == 0 {
		cfg.App.AllowedUsernames = DefaultAllowedUsernames
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing key has no default on purpose: it must always arrive
// from the environment, a flag, or the JSON file.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.BcryptCost < MinBcryptCost {
		return ErrBcryptCostTooLow
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
