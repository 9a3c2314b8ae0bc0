package http

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/service"
	"github.com/MKhiriev/go-pass-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. A nil function field
// fails the test when called.
type mockAuthService struct {
	t              *testing.T
	registerUserFn func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, creds models.Credentials) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.registerUserFn == nil {
		m.t.Fatalf("unexpected RegisterUser call")
	}
	return m.registerUserFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.loginFn == nil {
		m.t.Fatalf("unexpected Login call")
	}
	return m.loginFn(ctx, creds)
}

type mockTokenService struct {
	t             *testing.T
	issueTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	verifyTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockTokenService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.issueTokenFn == nil {
		m.t.Fatalf("unexpected IssueToken call")
	}
	return m.issueTokenFn(ctx, user)
}

func (m *mockTokenService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.verifyTokenFn == nil {
		m.t.Fatalf("unexpected VerifyToken call")
	}
	return m.verifyTokenFn(ctx, tokenString)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given mocks. Nil mocks are
// replaced by ones that fail on any call.
func newTestHandler(t *testing.T, auth *mockAuthService, tokens *mockTokenService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if tokens == nil {
		tokens = &mockTokenService{}
	}
	auth.t, tokens.t = t, t

	svcs := &service.Services{
		AuthService:    auth,
		TokenService:   tokens,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
	return NewHandler(svcs, config.Server{HTTPAddress: ":0", RequestTimeout: time.Second}, logger.Nop())
}

// tokenFor returns a verified-token stub with the given subject.
func tokenFor(username string) models.Token {
	var token models.Token
	token.Claims.Subject = username
	token.SignedString = "signed.jwt.token"
	return token
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, config.Server{RequestTimeout: 3 * time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
	assert.NotNil(t, h.traceIDs)
}
