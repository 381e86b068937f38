package store

import (
	"context"

	"github.com/MKhiriev/go-career-guide/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: one row per email.
type UserRepository interface {
	// CreateUser inserts a new account. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrUserNotFound] when no row matches exactly.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// FindOrCreateFederatedUser returns the account for user.Email, creating
	// it with user.Name when absent. Concurrent calls converge on one row.
	FindOrCreateFederatedUser(ctx context.Context, user models.User) (models.User, error)
}

// ProfileRepository reads and atomically rewrites a user's profile.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	// ApplyProfileUpdate applies the whole update in one transaction and
	// returns the refreshed user row.
	ApplyProfileUpdate(ctx context.Context, update models.ProfileUpdate) (models.User, error)
}

// IDGenerator produces primary keys for new rows.
type IDGenerator interface {
	Generate() string
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
