package handler

import (
	"github.com/MKhiriev/go-career-guide/internal/adapter"
	"github.com/MKhiriev/go-career-guide/internal/config"
	"github.com/MKhiriev/go-career-guide/internal/handler/http"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. identityProvider
// may be nil, in which case federated sign-in answers 404.
func NewHandlers(services *service.Services, identityProvider adapter.IdentityProvider, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, identityProvider, cfg, logger),
	}, nil
}
