package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-career-guide/internal/app"
	"github.com/MKhiriev/go-career-guide/internal/utils"
	"github.com/MKhiriev/go-career-guide/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		utils.WriteError(w, app.MsgUserIDRequired, http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, app.MsgServerError)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), app.MsgProfileNotSaved)
		return
	}
	if strings.TrimSpace(update.UserID) == "" {
		utils.WriteError(w, app.MsgUserIDRequired, http.StatusBadRequest)
		return
	}

	user, err := h.services.ProfileService.ApplyProfileUpdate(r.Context(), update)
	if err != nil {
		h.writeError(w, r, err, app.MsgProfileNotSaved)
		return
	}

	utils.WriteJSON(w, models.ProfileUpdateResponse{Success: true, User: user}, http.StatusOK)
}
