// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abmodel defines the data model of a two-bucket Bayesian A/B
// comparison and the conjugate posterior updates for each supported
// model family.
//
// Each family pairs a prior with a sufficient statistic of the
// observed data. Updating a prior with an observation yields a
// posterior in the same family:
//
//	Beta-Binomial     Beta(α, β) + (x successes of n)   -> Beta(α+x, β+n-x)
//	Normal-Normal     N(μ0, σ0²) + (sum of n, known σ)  -> N(μ', σ'²)
//	Delta-Lognormal   Beta-Binomial on the nonzero rate
//	                  + Normal-Normal on the log of nonzero values
//
// Update methods assume their inputs have been validated and never
// fail. Validation is separate so that callers can decide how to
// report bad input.
package abmodel

import (
	"errors"
	"fmt"
	"strings"
)

// Family identifies a conjugate model family.
type Family int

const (
	// BetaBinomial models a conversion rate: a Beta prior on the
	// success probability and binomially distributed successes.
	BetaBinomial Family = iota
	// NormalNormal models a mean with known data variance: a
	// Normal prior on the mean and normally distributed data.
	NormalNormal
	// DeltaLognormal models a value that is zero with some
	// probability and lognormal otherwise, such as revenue per
	// visitor.
	DeltaLognormal
)

func (f Family) String() string {
	switch f {
	case BetaBinomial:
		return "beta-binomial"
	case NormalNormal:
		return "normal"
	case DeltaLognormal:
		return "delta-lognormal"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily returns the Family named by s. It accepts the names
// returned by Family.String, case-insensitively, as well as
// "normal-normal".
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beta-binomial", "betabinomial", "beta":
		return BetaBinomial, nil
	case "normal", "normal-normal":
		return NormalNormal, nil
	case "delta-lognormal", "deltalognormal":
		return DeltaLognormal, nil
	}
	return 0, fmt.Errorf("unknown model family %q", s)
}

// ErrInvalidPrior indicates prior hyperparameters outside their
// domain, such as a non-positive Beta parameter or standard
// deviation.
var ErrInvalidPrior = errors.New("invalid prior parameters")

// ErrInvalidObservation indicates observed data that violates its
// invariants, such as more successes than trials or a negative
// count.
var ErrInvalidObservation = errors.New("invalid observation")

func priorError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidPrior, fmt.Sprintf(format, args...))
}

func obsError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidObservation, fmt.Sprintf(format, args...))
}
