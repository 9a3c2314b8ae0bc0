package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtected_EchoesUsername(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req = req.WithContext(context.WithValue(req.Context(), utils.UsernameCtxKey, "jz"))
	rec := httptest.NewRecorder()
	h.protected(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProtectedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "jz", resp.Username)
}

func TestProtected_NoUsernameInContext(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	h.protected(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
