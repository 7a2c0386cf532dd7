// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmodel

import "fmt"

// An Experiment is a complete comparison input: a model family, its
// prior, and the observations of buckets A and B. Only the prior and
// observation fields matching Family are consulted.
type Experiment struct {
	// Name is an optional label used in reports.
	Name string

	Family Family

	// Beta-Binomial
	BetaPrior BetaPrior
	BinomialA BinomialObs
	BinomialB BinomialObs

	// Normal-Normal
	NormalPrior NormalPrior
	KnownSigma  float64
	NormalA     NormalObs
	NormalB     NormalObs

	// Delta-Lognormal
	DeltaPrior DeltaLognormalPrior
	DeltaA     DeltaLognormalObs
	DeltaB     DeltaLognormalObs
}

// ValidateObservations checks the observations of both buckets. The
// returned error names the offending bucket and wraps
// ErrInvalidObservation.
func (e *Experiment) ValidateObservations() error {
	var errA, errB error
	switch e.Family {
	case BetaBinomial:
		errA, errB = e.BinomialA.Validate(), e.BinomialB.Validate()
	case NormalNormal:
		errA, errB = e.NormalA.Validate(), e.NormalB.Validate()
	case DeltaLognormal:
		errA, errB = e.DeltaA.Validate(), e.DeltaB.Validate()
	default:
		return fmt.Errorf("unknown model family %v", e.Family)
	}
	if errA != nil {
		return fmt.Errorf("bucket A: %w", errA)
	}
	if errB != nil {
		return fmt.Errorf("bucket B: %w", errB)
	}
	return nil
}

// ValidatePrior checks the prior for e's family. The returned error
// wraps ErrInvalidPrior.
func (e *Experiment) ValidatePrior() error {
	switch e.Family {
	case BetaBinomial:
		return e.BetaPrior.Validate()
	case NormalNormal:
		return e.NormalPrior.Validate(e.KnownSigma)
	case DeltaLognormal:
		return e.DeltaPrior.Validate()
	}
	return fmt.Errorf("unknown model family %v", e.Family)
}

// Posteriors returns the posteriors of buckets A and B. The prior and
// observations must already be valid.
func (e *Experiment) Posteriors() (a, b *Posterior) {
	switch e.Family {
	case BetaBinomial:
		return BetaOf(e.BetaPrior.Update(e.BinomialA)), BetaOf(e.BetaPrior.Update(e.BinomialB))
	case NormalNormal:
		return NormalOf(e.NormalPrior.Update(e.KnownSigma, e.NormalA)), NormalOf(e.NormalPrior.Update(e.KnownSigma, e.NormalB))
	case DeltaLognormal:
		return DeltaOf(e.DeltaPrior.Update(e.DeltaA)), DeltaOf(e.DeltaPrior.Update(e.DeltaB))
	}
	panic(fmt.Sprintf("bad Family %v", e.Family))
}
