// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// Bearer scheme but the token value itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrStateMismatch is returned by the federated callback when the state
	// parameter does not match the state cookie set at the start of the flow.
	ErrStateMismatch = errors.New("federated sign-in state mismatch")

	// ErrFederatedSignInDisabled is returned by the federated routes when no
	// identity provider is configured.
	ErrFederatedSignInDisabled = errors.New("federated sign-in is disabled")
)
