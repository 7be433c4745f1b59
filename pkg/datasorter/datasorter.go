// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package datasorter sorts a file of integers with recovery blocks: a heap
// sort primary backed by an insertion sort, both running on unreliable
// memory.
package datasorter

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/faultsort/pkg/faultsort"
	"github.com/cockroachdb/faultsort/pkg/numfile"
	"github.com/cockroachdb/faultsort/pkg/recovery"
	"github.com/cockroachdb/faultsort/pkg/util/log"
	"github.com/cockroachdb/faultsort/pkg/util/memfault"
	"github.com/cockroachdb/faultsort/pkg/util/randutil"
	"github.com/spf13/afero"
)

// Variant names.
const (
	PrimaryVariant = "heap sort"
	BackupVariant  = "insertion sort"
)

// Result describes a successful Run.
type Result struct {
	// Variant is the name of the variant whose result was written.
	Variant string
	// Count is the number of values sorted.
	Count int
}

// sorted is the output of one variant.
type sorted struct {
	variant string
	vals    []int32
}

// NonDecreasing is the acceptance test for sorted output.
func NonDecreasing(vals []int32) bool {
	return slices.IsSorted(vals)
}

// Run reads cfg.InputFile, sorts it and writes the accepted result to
// cfg.OutputFile. metrics may be nil.
func Run(ctx context.Context, fs afero.Fs, cfg Config, metrics *recovery.Metrics) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	input, err := numfile.ReadInts(fs, cfg.InputFile)
	if err != nil {
		return Result{}, err
	}
	log.Infof(ctx, "read %d values from %s", len(input), cfg.InputFile)

	primarySrc, backupSrc := cfg.sources()
	variant := func(
		name string, p float64, src memfault.Source, sort func(*memfault.Accessor) error,
	) recovery.Variant[sorted] {
		return recovery.VariantFunc(name, func(ctx context.Context) (sorted, error) {
			// Each variant gets its own copy and its own accessor, so neither
			// the data nor the access count is shared.
			buf := slices.Clone(input)
			a, err := memfault.NewAccessor(buf, p, memfault.WithSource(src), memfault.WithContext(ctx))
			if err != nil {
				return sorted{}, err
			}
			if err := sort(a); err != nil {
				return sorted{}, err
			}
			log.VEventf(ctx, 1, "sorted with %d accesses", a.AccessCount())
			return sorted{variant: name, vals: buf}, nil
		})
	}

	accept := func(s sorted) bool { return NonDecreasing(s.vals) }
	e, err := recovery.NewExecutor(cfg.TimeLimit, accept,
		variant(PrimaryVariant, cfg.PrimaryFailureProbability, primarySrc, faultsort.HeapSort),
		variant(BackupVariant, cfg.BackupFailureProbability, backupSrc, faultsort.InsertionSort),
	)
	if err != nil {
		return Result{}, errors.Mark(err, ErrInvalidConfig)
	}
	res, err := e.WithMetrics(metrics).Execute(ctx)
	if err != nil {
		return Result{}, err
	}
	if err := numfile.WriteInts(fs, cfg.OutputFile, res.vals); err != nil {
		return Result{}, err
	}
	log.Infof(ctx, "wrote %d values sorted by %s to %s", len(res.vals), res.variant, cfg.OutputFile)
	return Result{Variant: res.variant, Count: len(res.vals)}, nil
}

// sources returns the random sources of the two variants. A nil source lets
// the accessor seed itself.
func (cfg *Config) sources() (primary, backup memfault.Source) {
	primary, backup = cfg.Knobs.PrimarySource, cfg.Knobs.BackupSource
	if cfg.Seed != 0 {
		if primary == nil {
			primary = randutil.NewSeededRand(cfg.Seed)
		}
		if backup == nil {
			backup = randutil.NewSeededRand(cfg.Seed + 1)
		}
	}
	return primary, backup
}
