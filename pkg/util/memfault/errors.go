// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package memfault

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Op identifies the kind of access that faulted.
type Op int

const (
	// OpGet is a read.
	OpGet Op = iota
	// OpSet is a write.
	OpSet
)

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpGet:
		return "get"
	case OpSet:
		return "set"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// SafeValue implements redact.SafeValue.
func (Op) SafeValue() {}

// ErrInvalidProbability is the mark carried by errors from NewAccessor when
// the failure probability is out of range.
var ErrInvalidProbability = errors.New("invalid failure probability")

// FaultError is a simulated memory access failure. It is never retried by the
// Accessor; the operation that observed it is expected to abort.
type FaultError struct {
	Op     Op
	Index  int
	Access uint64
	Hazard float64
}

var _ errors.SafeFormatter = (*FaultError)(nil)

// Error implements the error interface.
func (e *FaultError) Error() string { return fmt.Sprint(e) }

// Format implements fmt.Formatter.
func (e *FaultError) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// SafeFormatError implements errors.SafeFormatter.
func (e *FaultError) SafeFormatError(p errors.Printer) (next error) {
	p.Printf("random simulated failure event: %s of index %d (access %d, hazard %.4f)",
		e.Op, redact.Safe(e.Index), redact.Safe(e.Access), redact.Safe(e.Hazard))
	return nil
}

// IsFault returns true if err, or any error it wraps, is a simulated
// memory access failure.
func IsFault(err error) bool {
	return errors.HasType(err, (*FaultError)(nil))
}
