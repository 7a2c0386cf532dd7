// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmodel

import (
	"fmt"
	"math"
)

// BetaPosterior is the posterior Beta(Alpha, Beta) of a success
// probability.
type BetaPosterior struct {
	Alpha, Beta float64
}

// Mean returns α/(α+β).
func (p BetaPosterior) Mean() float64 {
	return p.Alpha / (p.Alpha + p.Beta)
}

// NormalPosterior is the posterior Normal(Mu, Var) of an unknown mean.
type NormalPosterior struct {
	Mu, Var float64
}

// Sigma returns the posterior standard deviation.
func (p NormalPosterior) Sigma() float64 {
	return math.Sqrt(p.Var)
}

// DeltaLognormalPosterior is the posterior of the Delta-Lognormal
// model. It is the product of independent posteriors on the nonzero
// rate and on the log-scale mean of nonzero values.
type DeltaLognormalPosterior struct {
	Rate          BetaPosterior
	LogMean       NormalPosterior
	KnownLogSigma float64
}

// Update returns the posterior of p after observing o.
func (p BetaPrior) Update(o BinomialObs) BetaPosterior {
	return BetaPosterior{
		Alpha: p.Alpha + float64(o.X),
		Beta:  p.Beta + float64(o.N-o.X),
	}
}

// Update returns the posterior of p after observing o, where the data
// has standard deviation knownSigma.
//
// When o.N is 0, the result is exactly the prior.
func (p NormalPrior) Update(knownSigma float64, o NormalObs) NormalPosterior {
	if o.N == 0 {
		return NormalPosterior{Mu: p.Mu, Var: p.Sigma * p.Sigma}
	}
	knownVar := knownSigma * knownSigma
	precPrior := 1 / (p.Sigma * p.Sigma)
	precData := float64(o.N) / knownVar
	prec := precPrior + precData
	return NormalPosterior{
		Mu:  (p.Mu*precPrior + o.Sum/knownVar) / prec,
		Var: 1 / prec,
	}
}

// Update returns the posterior of p after observing o.
func (p DeltaLognormalPrior) Update(o DeltaLognormalObs) DeltaLognormalPosterior {
	return DeltaLognormalPosterior{
		Rate:          p.Rate.Update(o.rate()),
		LogMean:       p.LogMean.Update(p.KnownLogSigma, o.logValues()),
		KnownLogSigma: p.KnownLogSigma,
	}
}

// Posterior is a posterior of any family. Exactly one of Beta,
// Normal, and Delta is non-nil, according to Family.
type Posterior struct {
	Family Family

	Beta   *BetaPosterior
	Normal *NormalPosterior
	Delta  *DeltaLognormalPosterior
}

// BetaOf wraps p as a Posterior.
func BetaOf(p BetaPosterior) *Posterior {
	return &Posterior{Family: BetaBinomial, Beta: &p}
}

// NormalOf wraps p as a Posterior.
func NormalOf(p NormalPosterior) *Posterior {
	return &Posterior{Family: NormalNormal, Normal: &p}
}

// DeltaOf wraps p as a Posterior.
func DeltaOf(p DeltaLognormalPosterior) *Posterior {
	return &Posterior{Family: DeltaLognormal, Delta: &p}
}

func (p *Posterior) String() string {
	switch {
	case p.Family == BetaBinomial && p.Beta != nil:
		return fmt.Sprintf("Beta(%g, %g)", p.Beta.Alpha, p.Beta.Beta)
	case p.Family == NormalNormal && p.Normal != nil:
		return fmt.Sprintf("Normal(%g, %g)", p.Normal.Mu, p.Normal.Var)
	case p.Family == DeltaLognormal && p.Delta != nil:
		d := p.Delta
		return fmt.Sprintf("DeltaLognormal(Beta(%g, %g), Normal(%g, %g), %g)",
			d.Rate.Alpha, d.Rate.Beta, d.LogMean.Mu, d.LogMean.Var, d.KnownLogSigma)
	}
	return fmt.Sprintf("Posterior(%v, malformed)", p.Family)
}
