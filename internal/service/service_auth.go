package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/metrics"
	"github.com/MKhiriev/go-career-guide/internal/store"
	"github.com/MKhiriev/go-career-guide/internal/utils"
	"github.com/MKhiriev/go-career-guide/models"
	"golang.org/x/crypto/bcrypt"
)

// Sign-in methods reported to metrics.
const (
	signInMethodPassword  = "password"
	signInMethodFederated = "federated"
)

// authService is the concrete implementation of AuthService.
// It unifies credential and federated sign-in into one account per email,
// using a UserRepository for persistence and bcrypt for password hashes.
type authService struct {
	// userRepository is the credential store.
	userRepository store.UserRepository

	// hashPassword and verifyPassword are the password hasher. They are
	// fields so tests can avoid bcrypt's cost.
	hashPassword   func(plain string) (string, error)
	verifyPassword func(plain, hash string) bool

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashPassword:   utils.HashPassword,
		verifyPassword: utils.VerifyPassword,
		logger:         logger,
	}
}

// Register creates a new password account.
//
// Email, name and password must all be present. Email and name are trimmed;
// the password is hashed as given. There is no existence check before the
// insert: the storage unique constraint is the only source of
// store.ErrEmailAlreadyExists, so two concurrent registrations for the same
// email cannot both succeed.
//
// Returns the identity of the new account or:
//   - ErrInvalidDataProvided if a field is missing.
//   - ErrPasswordTooLong if the password does not fit a bcrypt hash.
//   - A wrapped hashing or storage error otherwise.
func (a *authService) Register(ctx context.Context, req models.RegistrationRequest) (models.Identity, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" || req.Password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.Identity{}, ErrInvalidDataProvided
	}

	if len(req.Password) > utils.MaxPasswordBytes {
		log.Error().Str("email", email).Int("length", len(req.Password)).Msg("password too long")
		return models.Identity{}, ErrPasswordTooLong
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.Identity{}, ErrPasswordTooLong
		}
		return models.Identity{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		Name:         name,
		PasswordHash: &hash,
		Interests:    []string{},
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.Identity{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return user.Identity(), nil
}

// Resolve turns a sign-in attempt into the identity of an account.
//
// A [models.PasswordAttempt] succeeds only for an existing account that has
// a password matching the one supplied. Unknown email, federation-only
// account and wrong password all yield the same ErrInvalidCredentials.
//
// A [models.FederatedAttempt] finds the account for the verified email or
// creates it on first sign-in. Repeated and concurrent attempts for the same
// email resolve to the same account.
//
// Storage failures are returned wrapped and are never reported as invalid
// credentials.
func (a *authService) Resolve(ctx context.Context, attempt models.CredentialAttempt) (models.Identity, error) {
	switch at := attempt.(type) {
	case models.PasswordAttempt:
		identity, err := a.resolvePassword(ctx, at)
		metrics.ObserveSignIn(signInMethodPassword, err)
		return identity, err
	case models.FederatedAttempt:
		identity, err := a.resolveFederated(ctx, at)
		metrics.ObserveSignIn(signInMethodFederated, err)
		return identity, err
	default:
		return models.Identity{}, fmt.Errorf("%w: unsupported credential attempt %T", ErrInvalidDataProvided, attempt)
	}
}

func (a *authService) resolvePassword(ctx context.Context, attempt models.PasswordAttempt) (models.Identity, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(attempt.Email)
	if email == "" || attempt.Password == "" {
		log.Error().Msg("invalid credentials data provided")
		return models.Identity{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("email", email).Msg("sign-in for unknown email")
		return models.Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Identity{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.HasPassword() {
		log.Warn().Str("user_id", user.ID).Msg("password sign-in for federation-only account")
		return models.Identity{}, ErrInvalidCredentials
	}

	if !a.verifyPassword(attempt.Password, *user.PasswordHash) {
		log.Warn().Str("user_id", user.ID).Msg("wrong password")
		return models.Identity{}, ErrInvalidCredentials
	}

	return user.Identity(), nil
}

func (a *authService) resolveFederated(ctx context.Context, attempt models.FederatedAttempt) (models.Identity, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(attempt.Email)
	if email == "" {
		log.Error().Msg("federated identity without email")
		return models.Identity{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindOrCreateFederatedUser(ctx, models.User{
		Email:     email,
		Name:      strings.TrimSpace(attempt.DisplayName),
		Interests: []string{},
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("federated user lookup failed")
		return models.Identity{}, fmt.Errorf("federated user lookup failed: %w", err)
	}

	return user.Identity(), nil
}
