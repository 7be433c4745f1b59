// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package datasorter

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/faultsort/pkg/util/memfault"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks configuration errors.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config configures a Run. It can be loaded from YAML with LoadConfig.
type Config struct {
	InputFile                 string  `yaml:"input_file"`
	OutputFile                string  `yaml:"output_file"`
	PrimaryFailureProbability float64 `yaml:"primary_failure_probability"`
	BackupFailureProbability  float64 `yaml:"backup_failure_probability"`

	// TimeLimit bounds each variant. Zero means no limit.
	TimeLimit time.Duration `yaml:"time_limit"`

	// Seed, if non-zero, makes the fault injection reproducible.
	Seed uint64 `yaml:"seed"`

	Knobs TestingKnobs `yaml:"-"`
}

// TestingKnobs allow tests to control fault injection.
type TestingKnobs struct {
	// PrimarySource and BackupSource, when set, replace the random sources of
	// the respective variant.
	PrimarySource memfault.Source
	BackupSource  memfault.Source
}

// Validate checks that cfg can be run.
func (cfg *Config) Validate() error {
	var err error
	if cfg.InputFile == "" {
		err = errors.CombineErrors(err, errors.New("an input file is required"))
	}
	if cfg.OutputFile == "" {
		err = errors.CombineErrors(err, errors.New("an output file is required"))
	}
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"primary", cfg.PrimaryFailureProbability},
		{"backup", cfg.BackupFailureProbability},
	} {
		if math.IsNaN(p.v) || p.v < 0 || p.v > 1 {
			err = errors.CombineErrors(err,
				errors.Newf("%s failure probability %v needs to be between 0 and 1", p.name, p.v))
		}
	}
	if cfg.TimeLimit < 0 {
		err = errors.CombineErrors(err, errors.Newf("time limit %s must not be negative", cfg.TimeLimit))
	}
	if err != nil {
		return errors.Mark(err, ErrInvalidConfig)
	}
	return nil
}

// LoadConfig overlays the YAML document at path onto cfg. Fields missing from
// the document keep their current value.
func LoadConfig(fs afero.Fs, path string, cfg *Config) error {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return errors.Mark(errors.Wrapf(err, "parsing config %s", path), ErrInvalidConfig)
	}
	return nil
}
