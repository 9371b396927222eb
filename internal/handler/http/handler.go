package http

import (
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/service"
	"github.com/MKhiriev/go-pod-sync/models"
)

// Handler serves the sync protocol over HTTP.
type Handler struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	// signResponses enables the HashSHA256 header. The hasher pool must be
	// initialized when it is set.
	signResponses bool

	logger *logger.Logger
}

// Option configures a [Handler].
type Option func(*Handler)

// WithResponseSigning makes the handler sign response bodies and verify
// signed request bodies with the pooled HMAC hasher.
func WithResponseSigning() Option {
	return func(h *Handler) {
		h.signResponses = true
	}
}

func NewHandler(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...Option) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
