package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/handler"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.ServerHTTP{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers, err := handler.NewHandlers(nil, models.NewAppBuildInfo("", "", ""), config.ServerHTTP{HTTPAddress: ":8080"}, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, config.ServerHTTP{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_AppliesTimeouts(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.ServerHTTP{HTTPAddress: ":9999", RequestTimeout: 5 * time.Second}, logger.Nop())

	assert.Equal(t, ":9999", h.server.Addr)
	assert.Equal(t, 5*time.Second, h.server.ReadTimeout)
	assert.Equal(t, 5*time.Second, h.server.WriteTimeout)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.ServerHTTP{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.run(ctx)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
