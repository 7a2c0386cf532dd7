// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/abviz/bayesab/abmodel"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type binomialFlags struct {
	prior  betaPriorFlags
	xa, na int
	xb, nb int
}

func (f *binomialFlags) BindFlags(fs *pflag.FlagSet) {
	f.prior.BindFlags(fs, "Conversion rate")
	fs.IntVar(&f.xa, "xa", 0, "Successes in bucket A")
	fs.IntVar(&f.na, "na", 0, "Trials in bucket A")
	fs.IntVar(&f.xb, "xb", 0, "Successes in bucket B")
	fs.IntVar(&f.nb, "nb", 0, "Trials in bucket B")
}

func NewBetaBinomialCommand() *cobra.Command {
	f := &binomialFlags{}
	cf := NewCompareFlags()
	cmd := &cobra.Command{
		Use:   "beta-binomial",
		Short: "Compare conversion rates under a Beta-Binomial model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prior, err := f.prior.prior(cmd.Flags())
			if err != nil {
				return err
			}
			return runSingle(cmd, cf, &abmodel.Experiment{
				Family:    abmodel.BetaBinomial,
				BetaPrior: prior,
				BinomialA: abmodel.BinomialObs{X: f.xa, N: f.na},
				BinomialB: abmodel.BinomialObs{X: f.xb, N: f.nb},
			})
		},
	}
	f.BindFlags(cmd.Flags())
	cf.BindFlags(cmd.Flags())
	return cmd
}

type normalFlags struct {
	mu, sigma, knownSigma float64
	sumA, sumB            float64
	na, nb                int
}

func (f *normalFlags) BindFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&f.mu, "mu", 0, "Prior mean")
	fs.Float64Var(&f.sigma, "sigma", 1, "Prior standard deviation")
	fs.Float64Var(&f.knownSigma, "known-sigma", 1, "Known standard deviation of a single observation")
	fs.Float64Var(&f.sumA, "sum-a", 0, "Sum of observations in bucket A")
	fs.IntVar(&f.na, "na", 0, "Number of observations in bucket A")
	fs.Float64Var(&f.sumB, "sum-b", 0, "Sum of observations in bucket B")
	fs.IntVar(&f.nb, "nb", 0, "Number of observations in bucket B")
}

func NewNormalCommand() *cobra.Command {
	f := &normalFlags{}
	cf := NewCompareFlags()
	cmd := &cobra.Command{
		Use:   "normal",
		Short: "Compare means under a Normal model with known variance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingle(cmd, cf, &abmodel.Experiment{
				Family:      abmodel.NormalNormal,
				NormalPrior: abmodel.NormalPrior{Mu: f.mu, Sigma: f.sigma},
				KnownSigma:  f.knownSigma,
				NormalA:     abmodel.NormalObs{Sum: f.sumA, N: f.na},
				NormalB:     abmodel.NormalObs{Sum: f.sumB, N: f.nb},
			})
		},
	}
	f.BindFlags(cmd.Flags())
	cf.BindFlags(cmd.Flags())
	return cmd
}

type deltaFlags struct {
	rate                  betaPriorFlags
	mu, sigma, knownSigma float64

	na, nonZeroA int
	logSumA      float64
	nb, nonZeroB int
	logSumB      float64
}

func (f *deltaFlags) BindFlags(fs *pflag.FlagSet) {
	f.rate.BindFlags(fs, "Non-zero rate")
	fs.Float64Var(&f.mu, "mu", 0, "Prior mean of the log of non-zero values")
	fs.Float64Var(&f.sigma, "sigma", 1, "Prior standard deviation of the log mean")
	fs.Float64Var(&f.knownSigma, "known-sigma", 1, "Known standard deviation of the log of a non-zero value")
	fs.IntVar(&f.na, "na", 0, "Observations in bucket A")
	fs.IntVar(&f.nonZeroA, "nonzero-a", 0, "Non-zero observations in bucket A")
	fs.Float64Var(&f.logSumA, "log-sum-a", 0, "Sum of logs of the non-zero observations in bucket A")
	fs.IntVar(&f.nb, "nb", 0, "Observations in bucket B")
	fs.IntVar(&f.nonZeroB, "nonzero-b", 0, "Non-zero observations in bucket B")
	fs.Float64Var(&f.logSumB, "log-sum-b", 0, "Sum of logs of the non-zero observations in bucket B")
}

func NewDeltaLognormalCommand() *cobra.Command {
	f := &deltaFlags{}
	cf := NewCompareFlags()
	cmd := &cobra.Command{
		Use:   "delta-lognormal",
		Short: "Compare zero-inflated revenue-like metrics under a Delta-Lognormal model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := f.rate.prior(cmd.Flags())
			if err != nil {
				return err
			}
			return runSingle(cmd, cf, &abmodel.Experiment{
				Family: abmodel.DeltaLognormal,
				DeltaPrior: abmodel.DeltaLognormalPrior{
					Rate:          rate,
					LogMean:       abmodel.NormalPrior{Mu: f.mu, Sigma: f.sigma},
					KnownLogSigma: f.knownSigma,
				},
				DeltaA: abmodel.DeltaLognormalObs{N: f.na, NonZero: f.nonZeroA, LogSum: f.logSumA},
				DeltaB: abmodel.DeltaLognormalObs{N: f.nb, NonZero: f.nonZeroB, LogSum: f.logSumB},
			})
		},
	}
	f.BindFlags(cmd.Flags())
	cf.BindFlags(cmd.Flags())
	return cmd
}
