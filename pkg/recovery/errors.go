// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package recovery

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Reason classifies why a variant failed.
type Reason int

const (
	// ReasonTimedOut means the variant did not return within the time limit.
	ReasonTimedOut Reason = iota
	// ReasonError means the variant returned an error.
	ReasonError
	// ReasonPanic means the variant panicked.
	ReasonPanic
	// ReasonRejected means the variant's result failed the acceptance test.
	ReasonRejected
)

var reasonNames = [...]string{
	ReasonTimedOut: "timed out",
	ReasonError:    "error",
	ReasonPanic:    "panic",
	ReasonRejected: "acceptance test failed",
}

// String implements fmt.Stringer.
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("Reason(%d)", int(r))
	}
	return reasonNames[r]
}

// SafeValue implements redact.SafeValue.
func (Reason) SafeValue() {}

// ErrAllVariantsFailed is the mark carried by the error Execute returns when
// neither the primary nor any backup produced an acceptable result.
var ErrAllVariantsFailed = errors.New("all variants failed")

// VariantFailureError describes one failed attempt.
type VariantFailureError struct {
	Variant string
	Reason  Reason
	// Cause is nil for ReasonRejected.
	Cause error
}

var _ errors.SafeFormatter = (*VariantFailureError)(nil)

// Error implements the error interface.
func (e *VariantFailureError) Error() string { return fmt.Sprint(e) }

// Format implements fmt.Formatter.
func (e *VariantFailureError) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// SafeFormatError implements errors.SafeFormatter.
func (e *VariantFailureError) SafeFormatError(p errors.Printer) (next error) {
	p.Printf("variant %s failed (%s)", redact.Safe(e.Variant), e.Reason)
	return e.Cause
}

// Unwrap returns the cause, if any.
func (e *VariantFailureError) Unwrap() error { return e.Cause }
