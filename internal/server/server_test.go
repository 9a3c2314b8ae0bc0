package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/handler"
	handlerhttp "github.com/MKhiriev/go-pass-auth/internal/handler/http"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string { return "9.9.9" }

func newTestHandlers(cfg config.Server) *handler.Handlers {
	svcs := &service.Services{AppInfoService: stubAppInfo{}}
	return &handler.Handlers{HTTP: handlerhttp.NewHandler(svcs, cfg, logger.Nop())}
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}

	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, defaultShutdownTimeout, srv.(*server).shutdownTimeout)

	cfg.ShutdownTimeout = time.Second
	srv, err = NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, time.Second, srv.(*server).shutdownTimeout)
}

func TestNewServer_NothingToServe(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(newTestHandlers(config.Server{}), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second, ShutdownTimeout: time.Second}
	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).runOn(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/version")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get("http://" + ln.Addr().String() + "/version")
	assert.Error(t, err, "listener is closed after shutdown")
}

func TestRun_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	err = srv.Run(context.Background())
	assert.Error(t, err)
}
