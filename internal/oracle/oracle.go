// Package oracle is the boundary to the generative model that produces job
// suggestions, learning resources, skill analyses and resume rewrites.
//
// Callers send a prompt together with a response schema and get back raw
// JSON bytes; [Decoder] turns those bytes into typed, validated results.
// The package never retries: a failed call surfaces immediately as
// [ErrOracleUnavailable] or [ErrOracleOutputInvalid].
package oracle

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

//go:generate mockgen -source=oracle.go -destination=../mock/oracle_mock.go -package=mock

var (
	// ErrOracleUnavailable means the model could not be reached in time.
	ErrOracleUnavailable = errors.New("oracle unavailable")

	// ErrOracleOutputInvalid means the model answered, but the answer is not
	// JSON or does not satisfy the requested schema.
	ErrOracleOutputInvalid = errors.New("oracle output invalid")
)

// Oracle generates JSON that should follow schema.
type Oracle interface {
	Generate(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error)
}
