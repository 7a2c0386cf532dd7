// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/abviz/bayesab/abfmt"
	"github.com/abviz/bayesab/abmodel"
	"github.com/abviz/bayesab/abstat"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CompareFlags holds the sampling and output settings shared by
// every command that runs comparisons.
type CompareFlags struct {
	Trials     int
	Seed       uint64
	Confidence float64
	Output     string

	seedSet bool
}

func NewCompareFlags() *CompareFlags {
	return &CompareFlags{
		Trials:     abstat.DefaultTrials,
		Confidence: abstat.DefaultConfidence,
		Output:     "text",
	}
}

func (f *CompareFlags) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&f.Trials, "trials", f.Trials, "Number of Monte Carlo trials")
	fs.Uint64Var(&f.Seed, "seed", f.Seed, "Random seed for reproducible sampling (default random)")
	fs.Float64Var(&f.Confidence, "confidence", f.Confidence, "Mass of the reported credible intervals")
	fs.StringVarP(&f.Output, "output", "o", f.Output, "Output format; available options are 'text', 'yaml' and 'json'")
}

// Validate checks the flag values. fs is the flag set f was bound to.
func (f *CompareFlags) Validate(fs *pflag.FlagSet) error {
	f.seedSet = fs.Changed("seed")
	switch f.Output {
	case "text", "yaml", "json":
	default:
		return errors.Errorf("invalid output format: %s", f.Output)
	}
	if f.Trials <= 0 {
		return errors.Errorf("--trials must be positive, got %d", f.Trials)
	}
	if !(f.Confidence > 0 && f.Confidence < 1) {
		return errors.Errorf("--confidence must be in (0, 1), got %v", f.Confidence)
	}
	return nil
}

// Options returns the comparison options selected by f.
func (f *CompareFlags) Options() *abstat.Options {
	opts := &abstat.Options{Trials: f.Trials, Confidence: f.Confidence}
	if f.seedSet {
		seed := f.Seed
		opts.Seed = &seed
	}
	return opts
}

// Report writes cs to w in the selected output format.
func (f *CompareFlags) Report(w io.Writer, cs []*abstat.Comparison) error {
	switch f.Output {
	case "yaml":
		return abfmt.WriteYAML(w, cs)
	case "json":
		return abfmt.WriteJSON(w, cs)
	}
	tw := abfmt.NewWriter(w)
	for _, c := range cs {
		if err := tw.Write(c); err != nil {
			return err
		}
	}
	return nil
}

// compare runs a single comparison and logs its outcome.
func (f *CompareFlags) compare(exp *abmodel.Experiment) (*abstat.Comparison, error) {
	logger := log.WithField("model", exp.Family)
	if exp.Name != "" {
		logger = logger.WithField("experiment", exp.Name)
	}
	c, err := abstat.Compare(exp, f.Options())
	if err != nil {
		return nil, errors.Wrap(err, "comparison failed")
	}
	if c.Degenerate {
		logger.WithError(c.PriorErr).Warn("invalid prior; reporting zeros")
	} else {
		logger.WithFields(log.Fields{
			"trials":   c.Trials,
			"win_rate": c.A.WinRate,
		}).Debug("compared buckets")
	}
	return c, nil
}

// runSingle is the body of the per-model commands.
func runSingle(cmd *cobra.Command, f *CompareFlags, exp *abmodel.Experiment) error {
	if err := f.Validate(cmd.Flags()); err != nil {
		return err
	}
	c, err := f.compare(exp)
	if err != nil {
		return err
	}
	return f.Report(cmd.OutOrStdout(), []*abstat.Comparison{c})
}

// betaPriorFlags selects a Beta prior by preset or custom parameters.
type betaPriorFlags struct {
	Prior       string
	Alpha, Beta float64
}

func (f *betaPriorFlags) BindFlags(fs *pflag.FlagSet, usage string) {
	fs.StringVar(&f.Prior, "prior", "uniform", usage+" prior: 'uniform', 'jeffreys' or 'custom'")
	fs.Float64Var(&f.Alpha, "alpha", 1, "Custom prior alpha")
	fs.Float64Var(&f.Beta, "beta", 1, "Custom prior beta")
}

func (f *betaPriorFlags) prior(fs *pflag.FlagSet) (abmodel.BetaPrior, error) {
	if f.Prior == "custom" {
		return abmodel.BetaPrior{Alpha: f.Alpha, Beta: f.Beta}, nil
	}
	if fs.Changed("alpha") || fs.Changed("beta") {
		return abmodel.BetaPrior{}, errors.Errorf("--alpha and --beta require --prior=custom")
	}
	p, err := abmodel.ParseBetaPreset(f.Prior)
	return p, errors.WithMessage(err, "parsing --prior")
}
