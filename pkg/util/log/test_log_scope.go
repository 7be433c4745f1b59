// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/faultsort/pkg/util/syncutil"
)

// TestLogScope captures log output for the duration of a test. When the test
// fails, the captured output is replayed through t.Log on Close.
//
// Use with:
//
//	defer log.Scope(t).Close(t)
type TestLogScope struct {
	mu      syncutil.Mutex
	buf     bytes.Buffer
	restore func()
}

// Scope starts capturing log output.
func Scope(t testing.TB) *TestLogScope {
	t.Helper()
	s := &TestLogScope{}
	s.restore = SetOutput(s)
	return s
}

// Write implements io.Writer.
func (s *TestLogScope) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

// Contents returns what has been logged so far.
func (s *TestLogScope) Contents() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// Close stops capturing.
func (s *TestLogScope) Close(t testing.TB) {
	t.Helper()
	s.restore()
	if t.Failed() {
		t.Logf("captured logs:\n%s", s.Contents())
	}
}
