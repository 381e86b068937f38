package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-career-guide/internal/config"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/utils"
	"github.com/MKhiriev/go-career-guide/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
	userInfoTimeout   = 10 * time.Second
)

var googleScopes = []string{"openid", "email", "profile"}

type googleProvider struct {
	oauth       *oauth2.Config
	userInfoURL string

	logger *logger.Logger
}

// NewGoogleProvider constructs the Google implementation of
// [IdentityProvider] for the registered OAuth2 client in cfg.
func NewGoogleProvider(cfg config.Google, log *logger.Logger) IdentityProvider {
	log.Info().Str("redirect_url", cfg.RedirectURL).Msg("google sign-in enabled")
	return newGoogleProvider(cfg, google.Endpoint, googleUserInfoURL, log)
}

func newGoogleProvider(cfg config.Google, endpoint oauth2.Endpoint, userInfoURL string, log *logger.Logger) *googleProvider {
	return &googleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       googleScopes,
		},
		userInfoURL: userInfoURL,
		logger:      log,
	}
}

// AuthCodeURL implements [IdentityProvider].
func (g *googleProvider) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange implements [IdentityProvider]. The code is redeemed at the token
// endpoint and the resulting access token is used to read the OpenID
// userinfo document.
//
// A refused or failed code exchange yields [ErrExchangeFailed]. A non-2xx
// userinfo response or a transport failure yields [ErrProviderRejected]. An
// empty or unverified email yields [ErrEmailNotVerified].
func (g *googleProvider) Exchange(ctx context.Context, code string) (models.FederatedIdentity, error) {
	log := logger.FromContext(ctx)

	code = strings.TrimSpace(code)
	if code == "" {
		return models.FederatedIdentity{}, fmt.Errorf("%w: empty code", ErrExchangeFailed)
	}

	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "googleProvider.Exchange").Msg("token exchange failed")
		return models.FederatedIdentity{}, fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}

	var identity models.FederatedIdentity
	client := utils.NewHTTPClient(g.oauth.Client(ctx, token), userInfoTimeout)
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&identity).
		Get(g.userInfoURL)
	if err != nil {
		log.Err(err).Str("func", "googleProvider.Exchange").Msg("userinfo request failed")
		return models.FederatedIdentity{}, fmt.Errorf("%w: userinfo request: %w", ErrProviderRejected, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "googleProvider.Exchange").Msg("userinfo request rejected")
		return models.FederatedIdentity{}, err
	}

	identity.Email = strings.TrimSpace(identity.Email)
	if identity.Email == "" || !identity.EmailVerified {
		log.Warn().Str("func", "googleProvider.Exchange").Str("sub", identity.Subject).Msg("identity has no verified email")
		return models.FederatedIdentity{}, ErrEmailNotVerified
	}

	log.Debug().Str("func", "googleProvider.Exchange").Str("sub", identity.Subject).Msg("federated identity resolved")
	return identity, nil
}
