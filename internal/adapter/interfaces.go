// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to external identity providers on behalf of the
// sign-in flow.
//
// The primary abstraction is [IdentityProvider], which hides the OAuth2
// authorization code flow behind two calls: building the consent URL and
// exchanging the returned code for a verified [models.FederatedIdentity].
// The package ships a Google implementation ([NewGoogleProvider]).
//
// Error values defined in errors.go let callers use [errors.Is] without
// knowing the provider (e.g. [ErrEmailNotVerified] for an account whose
// address the provider has not confirmed).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-career-guide/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_mock.go -package=mock

// IdentityProvider defines the federated sign-in operations.
type IdentityProvider interface {
	// AuthCodeURL returns the provider consent page URL. state is echoed back
	// to the callback and must be checked by the caller.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for the identity of the user who
	// granted it. Only identities with a verified email are returned.
	Exchange(ctx context.Context, code string) (models.FederatedIdentity, error)
}
