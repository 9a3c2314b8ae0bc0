package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/utils"
	"github.com/MKhiriev/go-pass-auth/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a REST [ServerAdapter] for the server at
// cfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs creds to /users and decodes
// the {"id": n} answer.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (int64, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&registered).
		Post("/users")
	if err != nil {
		return 0, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}
	if registered.UserID == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnexpectedReply, resp.String())
	}

	h.logger.Debug().Int64("id", registered.UserID).Object("credentials", creds).Msg("registered")
	return registered.UserID, nil
}

// Login implements [ServerAdapter]. The token is read from the
// Authorization header and, if that is absent, from the text body.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/users/auth")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := tokenFromResponse(resp)
	if err != nil {
		return "", err
	}

	h.SetToken(token)
	return token, nil
}

// Protected implements [ServerAdapter]. It fails with ErrNoToken before any
// request is sent when no token is stored.
func (h *httpServerAdapter) Protected(ctx context.Context) (string, error) {
	if h.Token() == "" {
		return "", ErrNoToken
	}

	var protected models.ProtectedResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&protected).
		Get("/protected")
	if err != nil {
		return "", fmt.Errorf("protected request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return protected.Username, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func tokenFromResponse(resp *resty.Response) (string, error) {
	if header := resp.Header().Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", fmt.Errorf("login parse bearer token: %w", err)
		}
		return token, nil
	}

	token := strings.TrimSpace(resp.String())
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
