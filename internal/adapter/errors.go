package adapter

import "errors"

var (
	ErrExchangeFailed   = errors.New("authorization code exchange failed")
	ErrProviderRejected = errors.New("identity provider rejected the request")
	ErrEmailNotVerified = errors.New("email is not verified by the identity provider")
)
