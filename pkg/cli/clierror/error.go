// Copyright 2020 The Cockroach Authors.
// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clierror

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/faultsort/pkg/cli/exit"
)

// Error annotates an error with the code the process should exit with.
type Error struct {
	exitCode exit.Code
	cause    error
}

// NewError wraps cause with an exit code.
func NewError(cause error, exitCode exit.Code) error {
	return &Error{exitCode: exitCode, cause: cause}
}

// GetExitCode returns the exit code.
func (e *Error) GetExitCode() exit.Code { return e.exitCode }

// Error implements the error interface.
func (e *Error) Error() string { return e.cause.Error() }

// Cause implements causer.
func (e *Error) Cause() error { return e.cause }

// Unwrap implements errors.Wrapper.
func (e *Error) Unwrap() error { return e.cause }

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// FormatError implements errors.Formatter.
func (e *Error) FormatError(p errors.Printer) error {
	if p.Detail() {
		p.Printf("error with exit code: %d", errors.Safe(e.exitCode.Int()))
	}
	return e.cause
}

// ExitCode returns the code attached to the outermost *Error in err's chain,
// and false if there is none.
func ExitCode(err error) (exit.Code, bool) {
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr.exitCode, true
	}
	return exit.UnspecifiedError(), false
}
