// Copyright 2016 The Cockroach Authors.
// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package humanizeutil formats counts and durations for people.
package humanizeutil

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Count formats n with thousands separators, e.g. 1234567 -> "1,234,567".
func Count(n uint64) string {
	if n > math.MaxInt64 {
		return humanize.Comma(math.MaxInt64) + "+"
	}
	return humanize.Comma(int64(n))
}

// Duration formats d with a granularity that shrinks as d grows: whole
// microseconds below 1ms, whole milliseconds below 1s, tenths of a second
// below 1m and whole seconds above.
func Duration(d time.Duration) string {
	var unit time.Duration
	switch {
	case d < time.Millisecond:
		unit = time.Microsecond
	case d < time.Second:
		unit = time.Millisecond
	case d < time.Minute:
		unit = 100 * time.Millisecond
	default:
		unit = time.Second
	}
	d = d.Round(unit)
	if d == 0 {
		return "0µs"
	}
	return d.String()
}

// Seconds converts a float64 number of seconds, as Prometheus records
// durations, to a time.Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
