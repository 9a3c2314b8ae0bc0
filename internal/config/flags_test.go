package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ipv4", input: "127.0.0.1:9000", wantHost: "127.0.0.1", wantPort: 9000},
		{name: "all interfaces", input: ":8080", wantHost: "", wantPort: 8080},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
		{name: "port zero", input: "localhost:0", wantErr: true},
		{name: "port too big", input: "localhost:70000", wantErr: true},
		{name: "hostname not allowed", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":8080", (&NetAddress{Port: 8080}).String())
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "localhost:8080",
		"-d", "sqlite:///tmp/users.db",
		"-config", "/etc/go-pass-auth.json",
		"-token-sign-key", "0123456789abcdef0123456789abcdef",
		"-token-issuer", "go-pass-auth",
		"-token-audience", "go-pass-auth-clients",
		"-token-duration", "1h",
		"-hash-cost", "12",
		"-request-timeout", "5s",
		"-shutdown-timeout", "10s",
		"-db-max-open-conns", "8",
	}

	cfg, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite:///tmp/users.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/go-pass-auth.json", cfg.JSONFilePath)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", cfg.App.TokenSignKey)
	assert.Equal(t, "go-pass-auth", cfg.App.TokenIssuer)
	assert.Equal(t, "go-pass-auth-clients", cfg.App.TokenAudience)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 8, cfg.Storage.DB.MaxOpenConns)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-x"}},
		{name: "bad address", args: []string{"-a", "nohost"}},
		{name: "bad duration", args: []string{"-token-duration", "soon"}},
		{name: "bad cost", args: []string{"-hash-cost", "high"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrInvalidFlags)
		})
	}
}

func TestParseClientFlags(t *testing.T) {
	cfg, rest, err := parseClientFlags([]string{
		"-a", "http://localhost:8080", "-timeout", "3s",
		"register", "-u", "jz", "-p", "heslo123",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"register", "-u", "jz", "-p", "heslo123"}, rest)
}

func TestParseClientFlags_OnlyCommand(t *testing.T) {
	cfg, rest, err := parseClientFlags([]string{"version"})
	require.NoError(t, err)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Equal(t, []string{"version"}, rest)
}

func TestParseClientFlags_UnknownFlag(t *testing.T) {
	_, _, err := parseClientFlags([]string{"-u", "jz"})
	assert.ErrorIs(t, err, ErrInvalidFlags)
}
