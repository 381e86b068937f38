package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/store"
	"github.com/MKhiriev/go-career-guide/internal/utils"
	"github.com/MKhiriev/go-career-guide/internal/validators"
	"github.com/MKhiriev/go-career-guide/models"
)

type profileService struct {
	profileRepository store.ProfileRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		validator:         validator,
		logger:            logger,
	}
}

// GetProfile returns the user with skills, career paths and resume.
//
// When the context carries an authenticated user, only that user's profile
// may be read (ErrUnauthorizedAccessToDifferentUserData otherwise).
func (p *profileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		log.Error().Msg("no user id provided")
		return models.Profile{}, ErrInvalidDataProvided
	}
	if err := checkOwnership(ctx, userID); err != nil {
		log.Warn().Str("requested_user_id", userID).Msg("profile read for a different user")
		return models.Profile{}, err
	}

	profile, err := p.profileRepository.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Str("requested_user_id", userID).Msg("profile read failed")
		return models.Profile{}, fmt.Errorf("profile read failed: %w", err)
	}

	return profile, nil
}

// ApplyProfileUpdate validates update and applies it atomically.
//
// The session user (taken from the context) must own the profile.
// Returns the refreshed user row; associations are not re-read.
func (p *profileService) ApplyProfileUpdate(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	update.UserID = strings.TrimSpace(update.UserID)
	if err := p.validator.Validate(ctx, update); err != nil {
		log.Err(err).Msg("invalid profile update")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	sessionUserID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || sessionUserID != update.UserID {
		log.Warn().Str("requested_user_id", update.UserID).Msg("profile update for a different user")
		return models.User{}, ErrUnauthorizedAccessToDifferentUserData
	}

	user, err := p.profileRepository.ApplyProfileUpdate(ctx, update)
	if err != nil {
		log.Err(err).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	log.Info().
		Int("skills", len(update.Skills)).
		Int("career_paths", len(update.CareerPaths)).
		Bool("resume", update.Resume != nil).
		Msg("profile updated")
	return user, nil
}

// checkOwnership rejects a request whose session user differs from userID.
// Requests without a session user pass.
func checkOwnership(ctx context.Context, userID string) error {
	sessionUserID, ok := utils.GetUserIDFromContext(ctx)
	if ok && sessionUserID != userID {
		return ErrUnauthorizedAccessToDifferentUserData
	}
	return nil
}
