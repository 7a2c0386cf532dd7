// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abstat compares the posteriors of two A/B test buckets.
//
// A comparison validates its inputs, computes the conjugate posterior
// of each bucket, and estimates the probability that each bucket's
// parameter is the larger one by Monte Carlo sampling from the two
// posteriors.
//
// Comparisons share no state. Each uses its own random source unless
// the caller supplies one, so concurrent comparisons do not
// interfere.
package abstat

import (
	"fmt"
	"math/rand/v2"

	"github.com/abviz/bayesab/abdist"
	"github.com/abviz/bayesab/abmodel"
)

// DefaultConfidence is the credible interval mass used when none is
// specified.
const DefaultConfidence = 0.95

// Options control a comparison. The zero value and nil are valid and
// select the defaults.
type Options struct {
	// Trials is the number of Monte Carlo trials. If <= 0,
	// DefaultTrials is used.
	Trials int

	// Confidence is the mass of the reported credible intervals.
	// If 0, DefaultConfidence is used. Otherwise it must be in
	// (0, 1).
	Confidence float64

	// Rand, if non-nil, is the random source for sampling. It
	// must not be shared with concurrent comparisons.
	Rand *rand.Rand

	// Seed, if non-nil and Rand is nil, seeds a fresh PCG source
	// for this comparison, making it reproducible.
	Seed *uint64
}

func (o *Options) trials() int {
	if o == nil || o.Trials <= 0 {
		return DefaultTrials
	}
	return o.Trials
}

func (o *Options) confidence() float64 {
	if o == nil || o.Confidence == 0 {
		return DefaultConfidence
	}
	return o.Confidence
}

func (o *Options) rand() *rand.Rand {
	switch {
	case o != nil && o.Rand != nil:
		return o.Rand
	case o != nil && o.Seed != nil:
		return rand.New(rand.NewPCG(*o.Seed, *o.Seed^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Comparison is the result of comparing buckets A and B.
type Comparison struct {
	// Name is copied from the experiment, if any.
	Name string

	Family     abmodel.Family
	Trials     int
	Confidence float64

	// Degenerate indicates the prior was invalid. In this case
	// every win rate, expectation, and interval bound is 0 and
	// PriorErr explains why.
	Degenerate bool
	PriorErr   error

	A, B Bucket
}

// Bucket summarizes one bucket's posterior.
type Bucket struct {
	// WinRate is the estimated probability that this bucket's
	// parameter exceeds the other's.
	WinRate float64

	// Expectation is the posterior mean.
	Expectation float64

	// Interval is the central credible interval.
	Interval abdist.Interval

	// Posterior and Dist are nil in a degenerate comparison.
	Posterior *abmodel.Posterior
	Dist      abdist.Dist
}

// Compare compares the buckets of experiment e.
//
// If either bucket's observation is invalid, Compare returns an error
// wrapping abmodel.ErrInvalidObservation. If the prior is invalid, it
// returns a degenerate Comparison without sampling.
func Compare(e *abmodel.Experiment, opts *Options) (*Comparison, error) {
	if err := e.ValidateObservations(); err != nil {
		return nil, err
	}
	if conf := opts.confidence(); !(conf > 0 && conf < 1) {
		return nil, fmt.Errorf("confidence %v not in (0, 1)", conf)
	}
	c := &Comparison{
		Name:       e.Name,
		Family:     e.Family,
		Trials:     opts.trials(),
		Confidence: opts.confidence(),
	}
	if err := e.ValidatePrior(); err != nil {
		c.Degenerate = true
		c.PriorErr = err
		return c, nil
	}

	pa, pb := e.Posteriors()
	da, db := abdist.New(pa), abdist.New(pb)
	winA, winB := WinRate(da, db, c.Trials, opts.rand())
	c.A = Bucket{winA, da.Mean(), da.Interval(c.Confidence), pa, da}
	c.B = Bucket{winB, db.Mean(), db.Interval(c.Confidence), pb, db}
	return c, nil
}

// CompareBetaBinomial compares two buckets of binomial observations
// under a common Beta prior.
func CompareBetaBinomial(prior abmodel.BetaPrior, a, b abmodel.BinomialObs, opts *Options) (*Comparison, error) {
	return Compare(&abmodel.Experiment{
		Family:    abmodel.BetaBinomial,
		BetaPrior: prior,
		BinomialA: a,
		BinomialB: b,
	}, opts)
}

// CompareNormal compares the means of two buckets of normal data with
// known standard deviation knownSigma under a common Normal prior.
func CompareNormal(prior abmodel.NormalPrior, knownSigma float64, a, b abmodel.NormalObs, opts *Options) (*Comparison, error) {
	return Compare(&abmodel.Experiment{
		Family:      abmodel.NormalNormal,
		NormalPrior: prior,
		KnownSigma:  knownSigma,
		NormalA:     a,
		NormalB:     b,
	}, opts)
}

// CompareDeltaLognormal compares the expected values of two buckets
// of Delta-Lognormal data under a common prior.
func CompareDeltaLognormal(prior abmodel.DeltaLognormalPrior, a, b abmodel.DeltaLognormalObs, opts *Options) (*Comparison, error) {
	return Compare(&abmodel.Experiment{
		Family:     abmodel.DeltaLognormal,
		DeltaPrior: prior,
		DeltaA:     a,
		DeltaB:     b,
	}, opts)
}
