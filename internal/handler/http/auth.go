package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pod-sync/internal/app"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/serverstate"
	"github.com/MKhiriev/go-pod-sync/internal/service"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
	"github.com/MKhiriev/go-pod-sync/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidData):
			log.Err(err).Str("func", "*Handler.register").Msg("invalid data provided")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		case errors.Is(err, serverstate.ErrAccountExists):
			log.Err(err).Str("func", "*Handler.register").Msg("login already exists")
			utils.WriteError(w, app.MsgLoginAlreadyExists, http.StatusConflict)
		default:
			log.Err(err).Str("func", "*Handler.register").Msg("unexpected error occurred during registration")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}
		return
	}

	writeToken(w, token)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidData):
			log.Err(err).Str("func", "*Handler.login").Msg("invalid data provided")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("func", "*Handler.login").Msg("no account was found/wrong password")
			utils.WriteError(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
		default:
			log.Err(err).Str("func", "*Handler.login").Msg("unexpected error occurred during login")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}
		return
	}

	writeToken(w, token)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.refreshToken").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.RefreshToken(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.refreshToken").Msg("token refresh failed")
		status := statusFromError(err)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	writeToken(w, token)
}

func writeToken(w http.ResponseWriter, token models.TokenResponse) {
	w.Header().Set("Authorization", "Bearer "+token.AccessToken)
	utils.WriteJSON(w, token, http.StatusOK)
}
