// Copyright 2017 The Cockroach Authors.
// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"github.com/cockroachdb/faultsort/pkg/datasorter"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// cliFs is the file system the commands read and write. Tests replace it
// with an in-memory one.
var cliFs afero.Fs = afero.NewOsFs()

// defaultSearchRange is the buffer size searched when neither --input nor
// --range is given.
const defaultSearchRange = 1000

// initCLIDefaults sets the command contexts to their default values and
// forgets which flags were set by a previous invocation. Run calls it so
// that repeated invocations in one process start from a clean slate.
func initCLIDefaults() {
	setGenContextDefaults()
	setSortContextDefaults()
	setSearchContextDefaults()
	setSortOnlyContextDefaults()

	reset := func(f *pflag.Flag) {
		if f.Name == "help" {
			_ = f.Value.Set("false")
		}
		f.Changed = false
	}
	faultsortCmd.Flags().VisitAll(reset)
	for _, cmd := range faultsortCmd.Commands() {
		cmd.Flags().VisitAll(reset)
	}
}

// genCtx captures the command-line parameters of the 'gen' command.
var genCtx struct {
	output string
	count  int
	seed   uint64
}

func setGenContextDefaults() {
	genCtx.output = ""
	genCtx.count = 0
	genCtx.seed = 0
}

// sortCtx captures the command-line parameters of the 'sort' command.
var sortCtx struct {
	cfg        datasorter.Config
	configFile string
	report     bool
}

func setSortContextDefaults() {
	sortCtx.cfg = datasorter.Config{}
	sortCtx.configFile = ""
	sortCtx.report = false
}

// searchCtx captures the command-line parameters of the 'search' command.
var searchCtx struct {
	input  string
	target int32
	rangeN int
}

func setSearchContextDefaults() {
	searchCtx.input = ""
	searchCtx.target = 0
	searchCtx.rangeN = defaultSearchRange
}

// sortOnlyCtx captures the command-line parameters of the 'sort-only'
// command.
var sortOnlyCtx struct {
	input              string
	output             string
	failureProbability float64
	seed               uint64
}

func setSortOnlyContextDefaults() {
	sortOnlyCtx.input = ""
	sortOnlyCtx.output = ""
	sortOnlyCtx.failureProbability = 0
	sortOnlyCtx.seed = 0
}
