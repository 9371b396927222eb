package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pod-sync/internal/serverstate"
	"github.com/MKhiriev/go-pod-sync/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidData:             http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	serverstate.ErrInvalidData:     http.StatusBadRequest,
	serverstate.ErrAccountExists:   http.StatusConflict,
	serverstate.ErrAccountNotFound: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
