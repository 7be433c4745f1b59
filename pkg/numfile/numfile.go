// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package numfile reads and writes files of int32 values, one per line.
package numfile

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// ReadInts reads the base-10 int32 values in the file at path. Blank lines
// are skipped.
func ReadInts(fs afero.Fs, path string) ([]int32, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var vals []int32
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, line)
		}
		vals = append(vals, int32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return vals, nil
}

// WriteInts writes vals to path, replacing any existing file.
func WriteInts(fs afero.Fs, path string, vals []int32) (retErr error) {
	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if err := f.Close(); err != nil {
			retErr = errors.CombineErrors(retErr, errors.Wrapf(err, "closing %s", path))
		}
	}()

	w := bufio.NewWriter(f)
	var scratch [16]byte
	for _, v := range vals {
		b := strconv.AppendInt(scratch[:0], int64(v), 10)
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
	}
	return errors.Wrapf(w.Flush(), "writing %s", path)
}

// Uint32Source is a uniformly distributed source of uint32 values.
// *rand.Rand from math/rand/v2 satisfies it.
type Uint32Source interface {
	Uint32() uint32
}

// Generate returns n values drawn uniformly from the whole int32 range.
func Generate(rng Uint32Source, n int) ([]int32, error) {
	if n < 0 {
		return nil, errors.Newf("cannot generate a negative number (%d) of values", n)
	}
	vals := make([]int32, n)
	for i := range vals {
		vals[i] = int32(rng.Uint32())
	}
	return vals, nil
}
