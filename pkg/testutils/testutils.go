// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package testutils

import (
	"path/filepath"
	"regexp"
	"testing"
)

// TestDataPath returns a path to an asset in the testdata directory of the
// package under test.
func TestDataPath(t testing.TB, relative ...string) string {
	t.Helper()
	return filepath.Join(append([]string{"testdata"}, relative...)...)
}

// IsError returns true if the error string matches the supplied regex.
// An empty regex is interpreted to mean that a nil error is expected.
func IsError(err error, re string) bool {
	if err == nil && re == "" {
		return true
	}
	if err == nil || re == "" {
		return false
	}
	matched, merr := regexp.MatchString(re, err.Error())
	if merr != nil {
		return false
	}
	return matched
}
