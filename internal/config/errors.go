package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was supplied
	// by any configuration source. The key is never compiled in.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrBcryptCostTooLow indicates a bcrypt work factor below the accepted
	// minimum (see MinBcryptCost).
	ErrBcryptCostTooLow = errors.New("bcrypt cost is below the accepted minimum")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
