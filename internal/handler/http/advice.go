package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-career-guide/internal/app"
	"github.com/MKhiriev/go-career-guide/internal/utils"
)

func (h *Handler) recommendJobs(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.sessionUserID(w, r)
	if !ok {
		return
	}

	result, err := h.services.AdvisorService.RecommendJobs(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) recommendResources(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.sessionUserID(w, r)
	if !ok {
		return
	}

	result, err := h.services.AdvisorService.RecommendResources(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) analyzeSkills(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.sessionUserID(w, r)
	if !ok {
		return
	}

	result, err := h.services.AdvisorService.AnalyzeSkills(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// buildResume answers with the rendered PDF as an attachment, or with
// {"status": "incomplete"} when the stored resume is not ready.
func (h *Handler) buildResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.sessionUserID(w, r)
	if !ok {
		return
	}

	result, err := h.services.AdvisorService.BuildResume(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, app.MsgResumeFailed)
		return
	}

	if result.Status != "" {
		utils.WriteJSON(w, result, http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", contentDisposition(result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Document)))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Document)
}

// sessionUserID returns the user id stored by the auth middleware and
// answers 401 when it is missing.
func (h *Handler) sessionUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, utils.ErrTokenInvalid, app.MsgInternalServerError)
		return "", false
	}
	return userID, true
}

func contentDisposition(fileName string) string {
	fileName = strings.NewReplacer(`"`, "'", "\r", "", "\n", "").Replace(fileName)
	return `attachment; filename="` + fileName + `"`
}
