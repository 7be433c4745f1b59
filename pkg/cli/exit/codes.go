// Copyright 2020 The Cockroach Authors.
// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package exit

// Codes that are common to all commands follow.

// Success (0) represents a normal process termination.
func Success() Code { return Code{0} }

// UnspecifiedError (1) indicates the process has terminated with an
// error condition. The specific cause of the error can be found in
// the logging output.
func UnspecifiedError() Code { return Code{1} }

// CommandLineFlagError (4) indicates there was an error in the
// command-line parameters.
func CommandLineFlagError() Code { return Code{4} }

// Command-specific exit codes are allocated down from 125.

// AllVariantsFailed (125) indicates that 'sort' could not produce an
// acceptable result: the primary and every backup variant failed.
func AllVariantsFailed() Code { return Code{125} }

// SimulatedFault (124) indicates that 'sort-only' was aborted by a
// simulated memory access failure.
func SimulatedFault() Code { return Code{124} }

// InvalidInput (123) indicates that a command was given a failure
// probability, configuration or buffer it cannot work with.
func InvalidInput() Code { return Code{123} }
