package models

import "time"

// User represents an account entity used for authentication and profile
// ownership. It is shared by credential and federated sign-in.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUIDv7 string).
	ID string `json:"id"`

	// Email is the unique address the account is keyed by.
	// Matching is exact; only surrounding whitespace is trimmed on input.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is nil for accounts that were only ever created through federated
	// sign-in. It is never serialized.
	PasswordHash *string `json:"-"`

	// Interests is a free-form list of topics the user is interested in.
	Interests []string `json:"interests"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether the account can be used with password sign-in.
func (u User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// Identity returns the public projection of the user that is embedded in
// sessions and responses.
func (u User) Identity() Identity {
	return Identity{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
	}
}

// Identity is the resolved account a session is issued for.
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// RegistrationRequest is the body of a credential registration call.
type RegistrationRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}
