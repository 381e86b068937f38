package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-career-guide/internal/validators"
)

// Decoder turns raw oracle output into typed results.
type Decoder struct {
	validator validators.Validator
}

// NewDecoder returns a Decoder that checks results with v.
func NewDecoder(v validators.Validator) *Decoder {
	return &Decoder{validator: v}
}

// Decode parses raw as exactly one JSON value into dst and validates dst
// against its struct rules. Every failure is reported as
// [ErrOracleOutputInvalid]; the raw text is never included in the error.
func (d *Decoder) Decode(ctx context.Context, raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: decoding: %T", ErrOracleOutputInvalid, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after JSON value", ErrOracleOutputInvalid)
	}

	if err := d.validator.Validate(ctx, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrOracleOutputInvalid, err)
	}

	return nil
}
