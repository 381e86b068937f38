// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// career-guide HTTP handlers and middleware.
//
// Msg* constants are written into response bodies. The web client matches
// some of them literally, so their wording is part of the API.
package app

// Registration answers, sent as {"message": ...}.
const (
	MsgRegistered    = "Registered successfully"
	MsgMissingFields = "Missing fields"
	MsgUserExists    = "User already exists"
	MsgServerError   = "Server error"

	MsgPasswordTooLong = "Password must be at most 72 bytes"
)

// Session and authorization errors.
const (
	// MsgInvalidCredentials covers both an unknown email and a wrong
	// password.
	MsgInvalidCredentials = "Invalid email or password"

	MsgTokenIsExpired = "token is expired"

	MsgUnauthorized = "Unauthorized"

	MsgForbidden = "Forbidden"

	MsgEmailNotVerified = "email is not verified"

	MsgFederatedSignInFailed = "federated sign-in failed"
)

// Request errors.
const (
	MsgInvalidJSON = "invalid JSON was passed"

	MsgInvalidDataProvided = "invalid data provided"

	MsgUserIDRequired = "User ID required"

	MsgNotFound = "Not Found"
)

// Profile and advice errors.
const (
	MsgUserNotFound = "User not found"

	MsgNoSkillsFound = "No skills found for this user."

	MsgProfileNotSaved = "Failed to save profile."

	MsgResumeFailed = "Failed to generate resume"

	MsgInternalServerError = "Internal Server Error"
)

// Upstream errors.
const (
	MsgOracleUnavailable = "AI service is unavailable"

	MsgProviderUnavailable = "identity provider is unavailable"

	MsgStorageBusy = "Service temporarily unavailable"
)
