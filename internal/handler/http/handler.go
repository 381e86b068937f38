package http

import (
	"github.com/MKhiriev/go-career-guide/internal/adapter"
	"github.com/MKhiriev/go-career-guide/internal/config"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/service"
)

type Handler struct {
	services *service.Services

	// identityProvider is nil when federated sign-in is disabled.
	identityProvider adapter.IdentityProvider

	cfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, identityProvider adapter.IdentityProvider, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("federated_sign_in", identityProvider != nil).
		Bool("profile_ownership_check", cfg.ProfileOwnershipCheck).
		Msg("http handler created")
	return &Handler{
		services:         services,
		identityProvider: identityProvider,
		cfg:              cfg,
		logger:           logger,
	}
}
