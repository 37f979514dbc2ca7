package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")

	// ErrMissingTokenSignKey indicates that no token signing key was provided
	// and the legacy default-key fallback was not enabled.
	ErrMissingTokenSignKey = errors.New("token sign key is required (set APP_TOKEN_SIGN_KEY or enable -allow-default-sign-key)")
)
