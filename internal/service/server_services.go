package service

import (
	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
)

// Services groups the services of the reference sync server.
type Services struct {
	AuthService    AuthService
	AccountService AccountService
}

// NewServices wires the server services on top of state.
func NewServices(state ServerState, cfg config.ServerAuth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(state, cfg, logger),
		AccountService: state,
	}
}
