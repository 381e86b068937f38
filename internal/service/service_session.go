package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-career-guide/internal/config"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/utils"
	"github.com/MKhiriev/go-career-guide/models"
)

type sessionService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now utils.Clock

	logger *logger.Logger
}

// NewSessionService constructs the SessionService from the signing
// parameters in cfg. now may be nil, in which case time.Now is used.
//
// Returns ErrSessionSecretMissing when cfg has no signing key.
func NewSessionService(cfg config.App, now utils.Clock, logger *logger.Logger) (SessionService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrSessionSecretMissing
	}
	if now == nil {
		now = time.Now
	}

	return &sessionService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           now,
		logger:        logger,
	}, nil
}

// Issue signs a session token for userID that expires after the configured
// duration.
func (s *sessionService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, userID, s.tokenDuration, s.tokenSignKey, s.now)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Validate checks the signature, issuer, expiry and subject of tokenString.
//
// Returns utils.ErrTokenExpired for an authentic token past its expiry and
// utils.ErrTokenInvalid for every other rejection.
func (s *sessionService) Validate(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer, s.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Token{}, err
	}

	return token, nil
}
