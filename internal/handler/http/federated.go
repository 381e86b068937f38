package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-career-guide/internal/adapter"
	"github.com/MKhiriev/go-career-guide/internal/app"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/google/uuid"
)

const (
	stateCookieName = "career_oauth_state"
	stateCookiePath = "/session/federated"
	stateCookieTTL  = 10 * time.Minute
)

// startFederatedSession redirects to the identity provider consent page.
// A random state value is kept in a short-lived cookie and checked by the
// callback.
func (h *Handler) startFederatedSession(w http.ResponseWriter, r *http.Request) {
	if h.identityProvider == nil {
		h.writeError(w, r, ErrFederatedSignInDisabled, app.MsgServerError)
		return
	}

	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     stateCookiePath,
		MaxAge:   int(stateCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.identityProvider.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// finishFederatedSession handles the provider redirect: it checks the state,
// exchanges the code for a verified identity, resolves it to an account
// (creating one on first sign-in) and issues a session.
func (h *Handler) finishFederatedSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.identityProvider == nil {
		h.writeError(w, r, ErrFederatedSignInDisabled, app.MsgServerError)
		return
	}

	query := r.URL.Query()
	cookie, err := r.Cookie(stateCookieName)
	http.SetCookie(w, &http.Cookie{Name: stateCookieName, Path: stateCookiePath, MaxAge: -1, HttpOnly: true})
	if err != nil || cookie.Value == "" || cookie.Value != query.Get("state") {
		h.writeError(w, r, ErrStateMismatch, app.MsgServerError)
		return
	}

	if providerErr := query.Get("error"); providerErr != "" {
		h.writeError(w, r, fmt.Errorf("%w: %s", adapter.ErrExchangeFailed, providerErr), app.MsgServerError)
		return
	}

	identity, err := h.identityProvider.Exchange(ctx, query.Get("code"))
	if err != nil {
		h.writeError(w, r, err, app.MsgServerError)
		return
	}

	resolved, err := h.services.AuthService.Resolve(ctx, identity.Attempt())
	if err != nil {
		h.writeError(w, r, err, app.MsgServerError)
		return
	}

	log.Debug().Str("user_id", resolved.UserID).Msg("federated sign-in succeeded")
	h.startSession(w, r, resolved)
}
