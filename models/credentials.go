// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialAttempt is a sign-in attempt presented to the identity resolver.
// It is a closed set of variants: [PasswordAttempt] and [FederatedAttempt].
type CredentialAttempt interface {
	isCredentialAttempt()
}

// PasswordAttempt carries an email/password pair submitted by the user.
type PasswordAttempt struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FederatedAttempt carries an identity already verified by an external
// provider. DisplayName is used only when the account has to be created.
type FederatedAttempt struct {
	Email       string
	DisplayName string
}

func (PasswordAttempt) isCredentialAttempt()  {}
func (FederatedAttempt) isCredentialAttempt() {}

// FederatedIdentity is the profile returned by an external identity provider
// after a successful authorization code exchange.
type FederatedIdentity struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// Attempt converts the provider identity into a resolver input.
func (f FederatedIdentity) Attempt() FederatedAttempt {
	return FederatedAttempt{Email: f.Email, DisplayName: f.Name}
}
