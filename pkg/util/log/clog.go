// Copyright 2013 Google Inc. All Rights Reserved.
// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/faultsort/pkg/util/syncutil"
	"github.com/cockroachdb/faultsort/pkg/util/timeutil"
	"github.com/mattn/go-isatty"
)

// colorProfile defines escape sequences which provide color in
// terminals. Some terminals support 8 colors, some 256, others
// none at all.
type colorProfile struct {
	infoPrefix  []byte
	warnPrefix  []byte
	errorPrefix []byte
	timePrefix  []byte
}

var colorReset = []byte("\033[0m")

// For terms with 8-color support.
var colorProfile8 = &colorProfile{
	infoPrefix:  []byte("\033[0;36;49m"),
	warnPrefix:  []byte("\033[0;33;49m"),
	errorPrefix: []byte("\033[0;31;49m"),
	timePrefix:  []byte("\033[2;37;49m"),
}

// For terms with 256-color support.
var colorProfile256 = &colorProfile{
	infoPrefix:  []byte("\033[38;5;33m"),
	warnPrefix:  []byte("\033[38;5;214m"),
	errorPrefix: []byte("\033[38;5;160m"),
	timePrefix:  []byte("\033[38;5;246m"),
}

// colorProfileFor picks a profile for w, or nil if w is not a color
// terminal.
func colorProfileFor(w io.Writer) *colorProfile {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return nil
	}
	term := os.Getenv("TERM")
	switch {
	case term == "ansi" || term == "tmux":
		return colorProfile8
	case term == "st" || strings.HasSuffix(term, "256color"):
		return colorProfile256
	case strings.HasSuffix(term, "color") || strings.HasPrefix(term, "screen"):
		return colorProfile8
	}
	return nil
}

// Stats tracks the number of lines written per severity.
var Stats struct {
	Info, Warning, Error atomic.Int64
}

// loggingT collects all the global state of the logging setup.
type loggingT struct {
	// Severity at or above which entries are written.
	threshold atomicSeverity
	// V logging level, the value of the --verbosity flag.
	verbosity atomic.Int32
	// noColor reflects the --no-color flag.
	noColor atomic.Bool

	mu struct {
		syncutil.Mutex
		out      io.Writer
		colors   *colorProfile
		exitFunc func(int)
	}
}

var logging = func() *loggingT {
	l := &loggingT{}
	l.threshold.set(Severity_INFO)
	l.mu.out = os.Stderr
	l.mu.colors = colorProfileFor(os.Stderr)
	return l
}()

// SetOutput redirects log output to w and returns a function restoring the
// previous destination.
func SetOutput(w io.Writer) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prevOut, prevColors := logging.mu.out, logging.mu.colors
	logging.mu.out = w
	logging.mu.colors = colorProfileFor(w)
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.out, logging.mu.colors = prevOut, prevColors
	}
}

// SetExitFunc allows setting a function that will be called to exit the
// process when a Fatal message is generated. Call with nil to restore
// os.Exit.
func SetExitFunc(f func(int)) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.exitFunc = f
}

// SetVerbosity sets the V logging level.
func SetVerbosity(level int) {
	logging.verbosity.Store(int32(level))
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level int) bool {
	return logging.verbosity.Load() >= int32(level)
}

// formatHeader writes a glog style header:
//
//	Lyymmdd hh:mm:ss.uuuuuu file:line
func (l *loggingT) formatHeader(
	buf *bytes.Buffer, s Severity, now time.Time, file string, line int, colors *colorProfile,
) {
	if colors != nil {
		switch s {
		case Severity_INFO:
			buf.Write(colors.infoPrefix)
		case Severity_WARNING:
			buf.Write(colors.warnPrefix)
		default:
			buf.Write(colors.errorPrefix)
		}
	}
	buf.WriteByte(severityChar[s])
	if colors != nil {
		buf.Write(colorReset)
		buf.Write(colors.timePrefix)
	}
	buf.WriteString(now.Format(timeutil.LogTimeFormat))
	buf.WriteByte(' ')
	if colors != nil {
		buf.Write(colorReset)
	}
	fmt.Fprintf(buf, "%s:%d  ", file, line)
}

// outputLogEntry marshals a log entry and writes it out.
func (l *loggingT) outputLogEntry(s Severity, file string, line int, msg string) {
	if s < l.threshold.get() && s != Severity_FATAL {
		return
	}
	switch s {
	case Severity_INFO:
		Stats.Info.Add(1)
	case Severity_WARNING:
		Stats.Warning.Add(1)
	default:
		Stats.Error.Add(1)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	colors := l.mu.colors
	if l.noColor.Load() {
		colors = nil
	}
	var buf bytes.Buffer
	l.formatHeader(&buf, s, timeutil.Now(), file, line, colors)
	buf.WriteString(msg)
	if !strings.HasSuffix(msg, "\n") {
		buf.WriteByte('\n')
	}
	if s == Severity_FATAL {
		stack := make([]byte, 64<<10)
		buf.Write(stack[:runtime.Stack(stack, false)])
	}
	// There is nowhere left to report a failure to write a log entry.
	_, _ = l.mu.out.Write(buf.Bytes())

	if s == Severity_FATAL {
		exit := l.mu.exitFunc
		if exit == nil {
			exit = os.Exit
		}
		exit(255)
	}
}

// callerFile returns the base name and line number of the caller depth
// frames above the caller of callerFile.
func callerFile(depth int) (string, int) {
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "???", 1
	}
	return filepath.Base(file), line
}
