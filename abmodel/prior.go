// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmodel

import (
	"fmt"
	"math"
	"strings"
)

// BetaPrior is a Beta(Alpha, Beta) prior on a success probability.
type BetaPrior struct {
	Alpha, Beta float64
}

var (
	// UniformPrior is the flat prior Beta(1, 1).
	UniformPrior = BetaPrior{1, 1}
	// JeffreysPrior is the Jeffreys prior Beta(½, ½).
	JeffreysPrior = BetaPrior{0.5, 0.5}
)

// ParseBetaPreset returns the named preset prior. Names are
// "uniform" and "jeffreys".
func ParseBetaPreset(name string) (BetaPrior, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uniform", "flat":
		return UniformPrior, nil
	case "jeffreys", "jeffrey's":
		return JeffreysPrior, nil
	}
	return BetaPrior{}, fmt.Errorf("unknown Beta prior preset %q", name)
}

func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Valid reports whether both parameters are positive and finite.
func (p BetaPrior) Valid() bool {
	return finitePositive(p.Alpha) && finitePositive(p.Beta)
}

// Validate returns an error wrapping ErrInvalidPrior if p is not
// Valid.
func (p BetaPrior) Validate() error {
	if !p.Valid() {
		return priorError("Beta prior requires alpha > 0 and beta > 0, got alpha=%v beta=%v", p.Alpha, p.Beta)
	}
	return nil
}

// NormalPrior is a Normal(Mu, Sigma²) prior on an unknown mean.
type NormalPrior struct {
	Mu, Sigma float64
}

// Valid reports whether p is a proper prior and knownSigma is a
// usable data standard deviation.
func (p NormalPrior) Valid(knownSigma float64) bool {
	return !math.IsNaN(p.Mu) && !math.IsInf(p.Mu, 0) &&
		finitePositive(p.Sigma) && finitePositive(knownSigma)
}

// Validate returns an error wrapping ErrInvalidPrior if p is not
// Valid for knownSigma.
func (p NormalPrior) Validate(knownSigma float64) error {
	if !p.Valid(knownSigma) {
		return priorError("Normal prior requires finite mu, sigma > 0 and known sigma > 0, got mu=%v sigma=%v known sigma=%v", p.Mu, p.Sigma, knownSigma)
	}
	return nil
}

// DeltaLognormalPrior is the prior of the Delta-Lognormal model. Rate
// is the prior on the probability that a value is nonzero. LogMean is
// the prior on the mean of log(value) for nonzero values, whose
// standard deviation is assumed to be KnownLogSigma.
type DeltaLognormalPrior struct {
	Rate          BetaPrior
	LogMean       NormalPrior
	KnownLogSigma float64
}

// Valid reports whether both component priors are valid.
func (p DeltaLognormalPrior) Valid() bool {
	return p.Rate.Valid() && p.LogMean.Valid(p.KnownLogSigma)
}

// Validate returns an error wrapping ErrInvalidPrior if either
// component prior is invalid.
func (p DeltaLognormalPrior) Validate() error {
	if err := p.Rate.Validate(); err != nil {
		return err
	}
	return p.LogMean.Validate(p.KnownLogSigma)
}
