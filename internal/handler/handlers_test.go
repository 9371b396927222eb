package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/handler/http"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/service"
	"github.com/MKhiriev/go-pod-sync/models"
)

var testBuildInfo = models.NewAppBuildInfo("1.0.0", "", "")

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.ServerHTTP{HTTPAddress: ":8080"}

	h, err := NewHandlers(newTestServices(), testBuildInfo, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_WithOptions(t *testing.T) {
	cfg := config.ServerHTTP{HTTPAddress: ":8080"}

	h, err := NewHandlers(newTestServices(), testBuildInfo, cfg, logger.Nop(), http.WithResponseSigning())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that without an HTTP address
// NewHandlers returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), testBuildInfo, config.ServerHTTP{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.ServerHTTP{HTTPAddress: ":8080"}

	h1, err1 := NewHandlers(newTestServices(), testBuildInfo, cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), testBuildInfo, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
