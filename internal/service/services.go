package service

import (
	"fmt"

	"github.com/MKhiriev/go-career-guide/internal/config"
	"github.com/MKhiriev/go-career-guide/internal/document"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/oracle"
	"github.com/MKhiriev/go-career-guide/internal/store"
	"github.com/MKhiriev/go-career-guide/internal/validators"
	"github.com/MKhiriev/go-career-guide/models"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	ProfileService ProfileService
	AdvisorService AdvisorService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	oracleClient oracle.Oracle,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	sessionService, err := NewSessionService(cfg.App, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating session service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewStructValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		SessionService: sessionService,
		ProfileService: NewProfileService(storages.ProfileRepository, validator, logger),
		AdvisorService: NewAdvisorService(
			storages.ProfileRepository,
			oracleClient,
			oracle.NewDecoder(validator),
			document.NewPDFRenderer(),
			logger,
		),
		AppInfoService: appInfoService,
	}, nil
}
