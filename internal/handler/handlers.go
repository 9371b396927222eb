package handler

import (
	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/handler/http"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/service"
	"github.com/MKhiriev/go-pod-sync/models"
)

// Handlers groups the transport handlers of the sync server.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates a handler for every configured transport. Options are
// passed to the HTTP handler.
func NewHandlers(services *service.Services, buildInfo models.AppBuildInfo, cfg config.ServerHTTP, logger *logger.Logger, opts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, buildInfo, logger, opts...)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
