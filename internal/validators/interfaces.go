// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads and decoded oracle output
// against the rules declared in `validate` struct tags.
//
// Services and the oracle decoder depend on the Validator interface, so the
// rule engine stays out of the transport and storage layers.
package validators

import "context"

// Validator validates a struct (or pointer to struct) against its declared
// rules.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
