package service

import (
	"context"

	"github.com/MKhiriev/go-career-guide/models"
)

// AuthService creates accounts and resolves sign-in attempts into identities.
type AuthService interface {
	Register(ctx context.Context, req models.RegistrationRequest) (models.Identity, error)
	Resolve(ctx context.Context, attempt models.CredentialAttempt) (models.Identity, error)
}

// SessionService issues and validates stateless session tokens.
type SessionService interface {
	Issue(ctx context.Context, userID string) (models.Token, error)
	Validate(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	ApplyProfileUpdate(ctx context.Context, update models.ProfileUpdate) (models.User, error)
}

// AdvisorService produces AI-generated career guidance for a user.
type AdvisorService interface {
	RecommendJobs(ctx context.Context, userID string) (models.JobsResult, error)
	RecommendResources(ctx context.Context, userID string) (models.ResourcesResult, error)
	AnalyzeSkills(ctx context.Context, userID string) (models.SkillAnalysis, error)
	BuildResume(ctx context.Context, userID string) (models.ResumeResult, error)
}

// AppInfoService exposes the running server's version and build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
