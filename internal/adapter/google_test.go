// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-career-guide/internal/config"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

var testGoogleConfig = config.Google{
	ClientID:     "client-id",
	ClientSecret: "client-secret",
	RedirectURL:  "http://localhost:8080/session/federated/callback",
}

// fakeGoogle serves the token and userinfo endpoints used by the code flow.
type fakeGoogle struct {
	tokenStatus    int
	userInfoStatus int
	userInfo       models.FederatedIdentity

	gotCode          string
	gotAuthorization string
}

func (f *fakeGoogle) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		f.gotCode = r.PostForm.Get("code")

		if f.tokenStatus != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.tokenStatus)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-123","token_type":"Bearer","expires_in":3600}`))
	})

	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		f.gotAuthorization = r.Header.Get("Authorization")

		if f.userInfoStatus != 0 {
			w.WriteHeader(f.userInfoStatus)
			_, _ = w.Write([]byte("upstream says no"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.userInfo)
	})

	return mux
}

func newTestProvider(t *testing.T, fake *fakeGoogle) *googleProvider {
	t.Helper()
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)

	endpoint := oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	return newGoogleProvider(testGoogleConfig, endpoint, srv.URL+"/userinfo", logger.Nop())
}

func verifiedIdentity() models.FederatedIdentity {
	return models.FederatedIdentity{
		Subject:       "1098",
		Email:         "alice@example.com",
		EmailVerified: true,
		Name:          "Alice",
	}
}

// ── AuthCodeURL ─────────────────────────────────────────────────────────────

func TestAuthCodeURL_ContainsClientStateAndScopes(t *testing.T) {
	p := newGoogleProvider(testGoogleConfig, oauth2.Endpoint{AuthURL: "https://accounts.example.com/auth"}, "", logger.Nop())

	raw := p.AuthCodeURL("state-42")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "accounts.example.com", u.Host)

	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "state-42", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
	assert.Equal(t, testGoogleConfig.RedirectURL, q.Get("redirect_uri"))
}

func TestNewGoogleProvider_UsesGoogleEndpoint(t *testing.T) {
	p := NewGoogleProvider(testGoogleConfig, logger.Nop())

	u, err := url.Parse(p.AuthCodeURL("s"))
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)
}

// ── Exchange ────────────────────────────────────────────────────────────────

func TestExchange_Success(t *testing.T) {
	fake := &fakeGoogle{userInfo: verifiedIdentity()}
	p := newTestProvider(t, fake)

	got, err := p.Exchange(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, verifiedIdentity(), got)
	assert.Equal(t, "auth-code", fake.gotCode)
	assert.Equal(t, "Bearer access-123", fake.gotAuthorization)
}

func TestExchange_TrimsEmail(t *testing.T) {
	identity := verifiedIdentity()
	identity.Email = "  alice@example.com "
	p := newTestProvider(t, &fakeGoogle{userInfo: identity})

	got, err := p.Exchange(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestExchange_EmptyCode(t *testing.T) {
	fake := &fakeGoogle{userInfo: verifiedIdentity()}
	p := newTestProvider(t, fake)

	_, err := p.Exchange(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrExchangeFailed)
	assert.Empty(t, fake.gotCode, "token endpoint must not be called")
}

func TestExchange_TokenEndpointRejects(t *testing.T) {
	p := newTestProvider(t, &fakeGoogle{tokenStatus: http.StatusBadRequest})

	_, err := p.Exchange(context.Background(), "stale-code")

	assert.ErrorIs(t, err, ErrExchangeFailed)
}

func TestExchange_UserInfoErrors(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			p := newTestProvider(t, &fakeGoogle{userInfoStatus: status})

			_, err := p.Exchange(context.Background(), "auth-code")

			require.ErrorIs(t, err, ErrProviderRejected)
			assert.NotContains(t, err.Error(), "upstream says no")
		})
	}
}

func TestExchange_UnverifiedEmail(t *testing.T) {
	tests := []struct {
		name     string
		identity models.FederatedIdentity
	}{
		{"not verified", models.FederatedIdentity{Subject: "1", Email: "bob@example.com"}},
		{"no email", models.FederatedIdentity{Subject: "1", EmailVerified: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, &fakeGoogle{userInfo: tt.identity})

			_, err := p.Exchange(context.Background(), "auth-code")

			assert.ErrorIs(t, err, ErrEmailNotVerified)
		})
	}
}

func TestExchange_UserInfoUnreachable(t *testing.T) {
	fake := &fakeGoogle{userInfo: verifiedIdentity()}
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)

	endpoint := oauth2.Endpoint{TokenURL: srv.URL + "/token", AuthStyle: oauth2.AuthStyleInParams}
	p := newGoogleProvider(testGoogleConfig, endpoint, "http://127.0.0.1:1/userinfo", logger.Nop())

	_, err := p.Exchange(context.Background(), "auth-code")

	assert.ErrorIs(t, err, ErrProviderRejected)
}
