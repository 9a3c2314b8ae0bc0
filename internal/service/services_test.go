package service

import (
	"testing"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	storages := &store.Storages{UserRepository: &memoryRepo{}}

	svcs, err := NewServices(storages, testAppConfig(), logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, svcs.AuthService)
	assert.NotNil(t, svcs.TokenService)
	assert.NotNil(t, svcs.AppInfoService)
}

func TestNewServices_InvalidConfig(t *testing.T) {
	storages := &store.Storages{UserRepository: &memoryRepo{}}

	cfg := testAppConfig()
	cfg.PasswordHashCost = 99
	_, err := NewServices(storages, cfg, logger.Nop())
	assert.Error(t, err)

	cfg = testAppConfig()
	cfg.Version = ""
	_, err = NewServices(storages, cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
