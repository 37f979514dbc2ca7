package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: "secret",
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost/market"},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	cfg.applyDefaults()
	require.NoError(t, cfg.validate())
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrMissingDatabaseDSN)
}

func TestValidate_MissingSignKey_FailsLoudly(t *testing.T) {
	cfg := validConfig()
	cfg.App.TokenSignKey = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrMissingTokenSignKey)
}

func TestValidate_MissingSignKey_DefaultAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.App.TokenSignKey = ""
	cfg.App.AllowDefaultSignKey = true

	err := cfg.validate()
	require.NoError(t, err)
	assert.Equal(t, DefaultSignKey, cfg.App.TokenSignKey)
	assert.True(t, cfg.UsesDefaultSignKey())
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, "campus-market", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, ":5000", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:5000", cfg.Client.ServerAddress)
	assert.Equal(t, 15*time.Second, cfg.Client.RequestTimeout)
}

func TestApplyDefaults_DoesNotOverride(t *testing.T) {
	cfg := validConfig()
	cfg.App.TokenIssuer = "custom-issuer"
	cfg.App.TokenDuration = 30 * time.Minute
	cfg.Server.HTTPAddress = "localhost:8081"

	cfg.applyDefaults()

	assert.Equal(t, "custom-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
}
