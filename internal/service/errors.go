package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordTooLong     = errors.New("password exceeds the maximum supported length")

	ErrSessionSecretMissing = errors.New("session signing key is not configured")
	ErrTokenCreationFailed  = errors.New("token creation failed")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")

	ErrNoSkillsFound         = errors.New("no skills found for this user")
	ErrResumeRenderingFailed = errors.New("failed to generate resume")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
