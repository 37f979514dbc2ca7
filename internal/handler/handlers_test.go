package handler

import (
	"testing"

	"github.com/campusmarket/campus-market/internal/config"
	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTPAddressSet(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":5000"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	_, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
}
