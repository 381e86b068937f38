package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-career-guide/internal/app"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/service"
	"github.com/MKhiriev/go-career-guide/internal/store"
	"github.com/MKhiriev/go-career-guide/internal/utils"
	"github.com/MKhiriev/go-career-guide/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgMissingFields}, http.StatusBadRequest)
		return
	}

	identity, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgMissingFields}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrPasswordTooLong):
			log.Err(err).Msg("password too long")
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPasswordTooLong}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserExists}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgServerError}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user_id", identity.UserID).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgRegistered}, http.StatusOK)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var attempt models.PasswordAttempt
	if err := json.NewDecoder(r.Body).Decode(&attempt); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), app.MsgServerError)
		return
	}

	identity, err := h.services.AuthService.Resolve(ctx, attempt)
	if err != nil {
		h.writeError(w, r, err, app.MsgServerError)
		return
	}

	log.Debug().Str("user_id", identity.UserID).Msg("user successfully signed in")
	h.startSession(w, r, identity)
}

// startSession issues a token for identity and writes it both to the
// Authorization header and to the JSON body.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	token, err := h.services.SessionService.Issue(r.Context(), identity.UserID)
	if err != nil {
		h.writeError(w, r, err, app.MsgServerError)
		return
	}

	resp := models.SessionResponse{
		Token: token.SignedString,
		User:  identity,
	}
	if token.ExpiresAt != nil {
		resp.ExpiresAt = token.ExpiresAt.Time
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, resp, http.StatusOK)
}
