package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:     strings.Repeat("k", MinTokenSignKeyLength),
			TokenIssuer:      "go-pass-auth",
			TokenAudience:    "go-pass-auth-clients",
			TokenDuration:    time.Hour,
			PasswordHashCost: 10,
		},
		Storage: Storage{DB: DB{DSN: "sqlite:///tmp/users.db"}},
		Server:  Server{HTTPAddress: ":8080", RequestTimeout: 5 * time.Second},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "short sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "short" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing issuer",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenIssuer = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing audience",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenAudience = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "cost too low",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 3 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 32 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unsupported dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "mysql://localhost/db" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "scheme without location",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "sqlite://" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative pool",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.MaxOpenConns = -1 },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStructuredConfig_Validate_PostgresDSN(t *testing.T) {
	for _, dsn := range []string{"postgres://localhost/auth", "postgresql://localhost/auth"} {
		cfg := validServerConfig()
		cfg.Storage.DB.DSN = dsn
		assert.NoError(t, cfg.validate(), dsn)
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := &ClientConfig{Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}}
	assert.NoError(t, valid.validate())

	noAddress := &ClientConfig{Adapter: Adapter{RequestTimeout: time.Second}}
	assert.ErrorIs(t, noAddress.validate(), ErrInvalidAdapterConfigs)

	noTimeout := &ClientConfig{Adapter: Adapter{HTTPAddress: "localhost:8080"}}
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidAdapterConfigs)
}
