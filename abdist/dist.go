// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abdist wraps posterior parameters in distributions that can
// be evaluated, summarized, and sampled.
package abdist

import (
	"fmt"
	"math/rand/v2"

	"github.com/abviz/bayesab/abmodel"
	"github.com/aclements/go-moremath/vec"
)

// A Dist is a continuous posterior distribution of a bucket's
// parameter.
type Dist interface {
	// PDF returns the probability density at x.
	PDF(x float64) float64

	// CDF returns Pr[X <= x].
	CDF(x float64) float64

	// Mean returns the expectation of the distribution.
	Mean() float64

	// Quantile returns the x such that CDF(x) = p. p must be in
	// [0, 1].
	Quantile(p float64) float64

	// Interval returns the central credible interval holding
	// the given probability mass, which must be in (0, 1).
	Interval(confidence float64) Interval

	// Rand draws a random variate using r.
	Rand(r *rand.Rand) float64

	// Bounds returns a range holding nearly all of the
	// distribution's mass, suitable for plotting the PDF.
	Bounds() (float64, float64)
}

// An Interval is a closed interval [Lo, Hi].
type Interval struct {
	Lo, Hi float64
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g, %g]", i.Lo, i.Hi)
}

// Contains reports whether x is in i.
func (i Interval) Contains(x float64) bool {
	return i.Lo <= x && x <= i.Hi
}

// central returns the interval between the (1-c)/2 and (1+c)/2
// quantiles of quantile.
func central(quantile func(float64) float64, c float64) Interval {
	if !(c > 0 && c < 1) {
		panic(fmt.Sprintf("confidence %v not in (0, 1)", c))
	}
	tail := (1 - c) / 2
	return Interval{quantile(tail), quantile(1 - tail)}
}

// New returns the distribution of posterior p.
func New(p *abmodel.Posterior) Dist {
	switch p.Family {
	case abmodel.BetaBinomial:
		return NewBeta(*p.Beta)
	case abmodel.NormalNormal:
		return NewNormal(*p.Normal)
	case abmodel.DeltaLognormal:
		return NewDeltaLognormal(*p.Delta)
	}
	panic(fmt.Sprintf("bad Family %v", p.Family))
}

// Curve evaluates d's PDF at n evenly spaced points from lo to hi,
// inclusive.
func Curve(d Dist, lo, hi float64, n int) (xs, ys []float64) {
	xs = vec.Linspace(lo, hi, n)
	ys = make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = d.PDF(x)
	}
	return xs, ys
}

// UnionBounds returns the smallest range covering the Bounds of all
// of ds.
func UnionBounds(ds ...Dist) (lo, hi float64) {
	for i, d := range ds {
		l, h := d.Bounds()
		if i == 0 || l < lo {
			lo = l
		}
		if i == 0 || h > hi {
			hi = h
		}
	}
	return
}
