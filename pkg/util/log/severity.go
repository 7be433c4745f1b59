// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// Severity identifies the sort of log: info, warning etc.
type Severity int32

// These constants identify the log levels in order of increasing Severity.
const (
	Severity_INFO Severity = iota
	Severity_WARNING
	Severity_ERROR
	Severity_FATAL
	Severity_NONE
)

const severityChar = "IWEF"

var severityName = []string{
	Severity_INFO:    "INFO",
	Severity_WARNING: "WARNING",
	Severity_ERROR:   "ERROR",
	Severity_FATAL:   "FATAL",
	Severity_NONE:    "NONE",
}

// String implements fmt.Stringer.
func (s Severity) String() string {
	if i := int(s); i >= 0 && i < len(severityName) {
		return severityName[i]
	}
	return strconv.FormatInt(int64(s), 10)
}

// SeverityByName attempts to parse the passed in string into a severity
// (e.g. ERROR, info). If it succeeds, the returned bool is set to true.
func SeverityByName(s string) (Severity, bool) {
	s = strings.ToUpper(s)
	for i, name := range severityName {
		if name == s {
			return Severity(i), true
		}
	}
	return 0, false
}

// atomicSeverity is a Severity that can be changed while loggers run.
type atomicSeverity struct {
	v atomic.Int32
}

func (s *atomicSeverity) get() Severity    { return Severity(s.v.Load()) }
func (s *atomicSeverity) set(sev Severity) { s.v.Store(int32(sev)) }

// String is part of the pflag.Value interface.
func (s *atomicSeverity) String() string { return s.get().String() }

// Type is part of the pflag.Value interface.
func (s *atomicSeverity) Type() string { return "<severity>" }

// Set is part of the pflag.Value interface.
func (s *atomicSeverity) Set(value string) error {
	if sev, ok := SeverityByName(value); ok {
		s.set(sev)
		return nil
	}
	v, err := strconv.Atoi(value)
	if err != nil || v < int(Severity_INFO) || v > int(Severity_NONE) {
		return errors.Newf("unknown severity: %q", value)
	}
	s.set(Severity(v))
	return nil
}
