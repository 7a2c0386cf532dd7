// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abdist

import (
	"math/rand/v2"

	"github.com/abviz/bayesab/abmodel"
	"gonum.org/v1/gonum/stat/distuv"
)

// Beta is the Beta posterior of a success probability.
type Beta struct {
	Params abmodel.BetaPosterior

	d distuv.Beta
}

// NewBeta returns the distribution Beta(p.Alpha, p.Beta). Both
// parameters must be positive.
func NewBeta(p abmodel.BetaPosterior) *Beta {
	return &Beta{Params: p, d: distuv.Beta{Alpha: p.Alpha, Beta: p.Beta}}
}

func (b *Beta) PDF(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	return b.d.Prob(x)
}

func (b *Beta) CDF(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return b.d.CDF(x)
}

func (b *Beta) Mean() float64 {
	return b.d.Mean()
}

func (b *Beta) Quantile(p float64) float64 {
	return b.d.Quantile(p)
}

func (b *Beta) Interval(confidence float64) Interval {
	return central(b.Quantile, confidence)
}

// Rand draws by inverting the CDF at a uniform variate from r, so
// every draw comes from the caller's source.
func (b *Beta) Rand(r *rand.Rand) float64 {
	return b.d.Quantile(r.Float64())
}

func (b *Beta) Bounds() (float64, float64) {
	return 0, 1
}
