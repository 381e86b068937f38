package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-career-guide/internal/adapter"
	"github.com/MKhiriev/go-career-guide/internal/app"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/oracle"
	"github.com/MKhiriev/go-career-guide/internal/service"
	"github.com/MKhiriev/go-career-guide/internal/store"
	"github.com/MKhiriev/go-career-guide/internal/utils"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is matched in order, first match wins. A rejected oracle
// answer also wraps the validation failure behind it, so oracle entries stay
// on top.
var errorStatuses = []errorStatus{
	{oracle.ErrOracleUnavailable, http.StatusBadGateway, app.MsgOracleUnavailable},
	{oracle.ErrOracleOutputInvalid, http.StatusInternalServerError, app.MsgInternalServerError},
	{adapter.ErrProviderRejected, http.StatusBadGateway, app.MsgProviderUnavailable},

	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{utils.ErrTokenExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{utils.ErrTokenInvalid, http.StatusUnauthorized, app.MsgUnauthorized},
	{adapter.ErrEmailNotVerified, http.StatusUnauthorized, app.MsgEmailNotVerified},
	{adapter.ErrExchangeFailed, http.StatusUnauthorized, app.MsgFederatedSignInFailed},
	{ErrStateMismatch, http.StatusUnauthorized, app.MsgFederatedSignInFailed},

	{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden, app.MsgForbidden},

	{ErrFederatedSignInDisabled, http.StatusNotFound, app.MsgNotFound},
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{service.ErrNoSkillsFound, http.StatusNotFound, app.MsgNoSkillsFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgUserExists},

	{store.ErrStorageTransient, http.StatusServiceUnavailable, app.MsgStorageBusy},
}

// statusFromError returns the status code and public message for err.
// Unknown errors map to 500 with fallback as the message. Storage failures
// that are expected to clear on their own map to 503.
func statusFromError(err error, fallback string) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, fallback
}

// writeError logs err and answers with its mapped status and a JSON
// {"error": ...} body. Error details never reach the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, message := statusFromError(err, fallback)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	utils.WriteError(w, message, status)
}
