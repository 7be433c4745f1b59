// Copyright 2020 The Cockroach Authors.
// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package exit encapsulates calls to os.Exit so that the process exit
// codes are defined in one place.
package exit

import (
	"fmt"
	"os"
)

// Code represents an exit code.
type Code struct {
	code int
}

// String implements fmt.Stringer.
func (c Code) String() string { return fmt.Sprintf("exit code %d", c.code) }

// Int returns the numeric value of the exit code.
func (c Code) Int() int { return c.code }

// WithCode terminates the process with the given exit code.
func WithCode(code Code) {
	os.Exit(code.code)
}
