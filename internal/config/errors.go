package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrMissingTokenSignKey indicates that no session signing secret was
	// configured. Sessions cannot be issued or verified without it.
	ErrMissingTokenSignKey = errors.New("session token sign key is not configured")
	// ErrInvalidAppConfigs indicates an empty token issuer or a non-positive
	// token duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidOracleConfigs indicates a missing generative model API key
	// or model name.
	ErrInvalidOracleConfigs = errors.New("invalid oracle configuration")
	// ErrInvalidOAuthConfigs indicates a partially configured OAuth client.
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
)
