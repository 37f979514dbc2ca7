package config

import "time"

// applyDefaults fills in the fields that have sensible fixed defaults when no
// configuration source supplied a value. Defaults are applied before
// validation so that only genuinely required fields can fail startup.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "campus-market"
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = time.Hour
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":5000"
	}
	if cfg.Client.ServerAddress == "" {
		cfg.Client.ServerAddress = "localhost:5000"
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = 15 * time.Second
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants.
//
// The database DSN is always required. The token signing key is required
// unless AllowDefaultSignKey explicitly opts into the legacy built-in key;
// in that case the key is substituted here and the caller is expected to log
// a warning via [StructuredConfig.UsesDefaultSignKey].
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.App.TokenSignKey == "" {
		if !cfg.App.AllowDefaultSignKey {
			return ErrMissingTokenSignKey
		}
		cfg.App.TokenSignKey = DefaultSignKey
	}

	return nil
}

// UsesDefaultSignKey reports whether the configuration ended up on the
// built-in signing key, so that startup code can log the weakness loudly.
func (cfg *StructuredConfig) UsesDefaultSignKey() bool {
	return cfg.App.TokenSignKey == DefaultSignKey
}
