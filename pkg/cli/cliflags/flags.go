// Copyright 2016 The Cockroach Authors.
// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package cliflags holds the metadata of the command-line flags.
package cliflags

import "strings"

// FlagInfo contains the static information for a CLI flag.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string

	// Shorthand is the short form of the flag (optional).
	Shorthand string

	// EnvVar is the name of the environment variable through which the flag
	// value can be controlled (optional).
	EnvVar string

	// Description of the flag.
	Description string
}

// Usage returns the description, with the environment variable appended
// if there is one.
func (f FlagInfo) Usage() string {
	s := strings.TrimSpace(f.Description)
	if f.EnvVar != "" {
		s += "\nEnvironment variable: " + f.EnvVar
	}
	return s
}

var (
	Output = FlagInfo{
		Name:        "output",
		Shorthand:   "o",
		Description: `File the integers are written to, one per line.`,
	}

	Input = FlagInfo{
		Name:        "input",
		Shorthand:   "i",
		Description: `File of integers to read, one per line.`,
	}

	Count = FlagInfo{
		Name:        "count",
		Shorthand:   "n",
		Description: `Number of random integers to generate.`,
	}

	Seed = FlagInfo{
		Name:   "seed",
		EnvVar: "FAULTSORT_SEED",
		Description: `
Seed for the random number generator. Zero picks a random seed, which is
logged so that the run can be reproduced.`,
	}

	PrimaryFailureProbability = FlagInfo{
		Name:   "primary-failure-probability",
		EnvVar: "FAULTSORT_PRIMARY_FAILURE_PROBABILITY",
		Description: `
Failure probability of the primary (heap sort) variant. The hazard of an
access is this value times the number of accesses so far.`,
	}

	BackupFailureProbability = FlagInfo{
		Name:        "backup-failure-probability",
		EnvVar:      "FAULTSORT_BACKUP_FAILURE_PROBABILITY",
		Description: `Failure probability of the backup (insertion sort) variant.`,
	}

	FailureProbability = FlagInfo{
		Name:        "failure-probability",
		EnvVar:      "FAULTSORT_FAILURE_PROBABILITY",
		Description: `Failure probability of the fault-injecting accessor.`,
	}

	TimeLimit = FlagInfo{
		Name:   "time-limit",
		EnvVar: "FAULTSORT_TIME_LIMIT",
		Description: `
Maximum time each variant may run before the watchdog abandons it. Zero
disables the watchdog.`,
	}

	Config = FlagInfo{
		Name: "config",
		Description: `
YAML file with the sort configuration. Flags given explicitly on the
command line override its values.`,
	}

	Report = FlagInfo{
		Name:        "report",
		Description: `Print a table of the recovery metrics after sorting.`,
	}

	Target = FlagInfo{
		Name:        "target",
		Shorthand:   "t",
		Description: `Value to search for.`,
	}

	Range = FlagInfo{
		Name:        "range",
		Description: `Search the buffer 0, 1, ..., n-1 instead of an input file.`,
	}
)
