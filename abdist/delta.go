// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abdist

import (
	"math"
	"math/rand/v2"

	"github.com/abviz/bayesab/abmodel"
	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

// DeltaLognormal is the posterior of the expected value of a
// Delta-Lognormal variable, that is, a variable that is 0 with
// probability 1-P and lognormal with log-scale mean M and known
// log-scale standard deviation σ otherwise. Its expected value is
//
//	Z = P · exp(M + σ²/2)
//
// where P and M are independent with Beta and Normal posteriors.
//
// The density and CDF of Z have no closed form. They are computed by
// Gauss-Legendre quadrature over the quantiles of P, which keeps the
// integrand bounded even when P's density is not.
type DeltaLognormal struct {
	Params abmodel.DeltaLognormalPosterior

	rate distuv.Beta
	// shift is E[log Z | P] - log P and s is the standard
	// deviation of log Z given P.
	shift, s float64

	// logP[i] is the log of P's quantile at quadrature node i,
	// with weight w[i]. Nodes whose quantile underflows to 0 are
	// dropped and their weight accumulated in zeroMass.
	logP, w  []float64
	zeroMass float64
}

// deltaNodes is the number of quadrature nodes.
const deltaNodes = 128

var stdNormal = stats.NormalDist{Mu: 0, Sigma: 1}

// NewDeltaLognormal returns the distribution of the expected value
// under posterior p.
func NewDeltaLognormal(p abmodel.DeltaLognormalPosterior) *DeltaLognormal {
	d := &DeltaLognormal{
		Params: p,
		rate:   distuv.Beta{Alpha: p.Rate.Alpha, Beta: p.Rate.Beta},
		shift:  p.LogMean.Mu + p.KnownLogSigma*p.KnownLogSigma/2,
		s:      p.LogMean.Sigma(),
	}
	us := make([]float64, deltaNodes)
	ws := make([]float64, deltaNodes)
	quad.Legendre{}.FixedLocations(us, ws, 0, 1)
	for i, u := range us {
		q := d.rate.Quantile(u)
		if q <= 0 {
			d.zeroMass += ws[i]
			continue
		}
		d.logP = append(d.logP, math.Log(q))
		d.w = append(d.w, ws[i])
	}
	return d
}

func (d *DeltaLognormal) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	t := math.Log(x)
	var sum float64
	for i, lp := range d.logP {
		sum += d.w[i] * stdNormal.PDF((t-lp-d.shift)/d.s)
	}
	return sum / (x * d.s)
}

func (d *DeltaLognormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return d.logCDF(math.Log(x))
}

// logCDF returns Pr[log Z <= t].
func (d *DeltaLognormal) logCDF(t float64) float64 {
	sum := d.zeroMass
	for i, lp := range d.logP {
		sum += d.w[i] * stdNormal.CDF((t-lp-d.shift)/d.s)
	}
	return sum
}

// Mean returns E[P] · exp(E[M] + Var[M]/2 + σ²/2).
func (d *DeltaLognormal) Mean() float64 {
	return d.rate.Mean() * math.Exp(d.shift+d.Params.LogMean.Var/2)
}

// Quantile inverts the CDF by bisection in log space.
func (d *DeltaLognormal) Quantile(p float64) float64 {
	switch {
	case p < 0 || p > 1 || math.IsNaN(p):
		panic("abdist: quantile out of [0, 1]")
	case p <= d.zeroMass || len(d.logP) == 0:
		return 0
	case p == 1:
		return math.Inf(1)
	}

	// Every conditional distribution of log Z lies within 12σ of
	// its mean, which brackets any p not within ~1e-30 of 0 or 1.
	lo, hi := d.logP[0], d.logP[0]
	for _, lp := range d.logP {
		lo, hi = math.Min(lo, lp), math.Max(hi, lp)
	}
	lo += d.shift - 12*d.s
	hi += d.shift + 12*d.s

	for iter := 0; iter < 200; iter++ {
		mid := lo + (hi-lo)/2
		if mid == lo || mid == hi {
			break
		}
		if d.logCDF(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return math.Exp(lo + (hi-lo)/2)
}

func (d *DeltaLognormal) Interval(confidence float64) Interval {
	return central(d.Quantile, confidence)
}

// Rand draws the nonzero probability first and then the log-scale
// mean conditionally.
func (d *DeltaLognormal) Rand(r *rand.Rand) float64 {
	p := d.rate.Quantile(r.Float64())
	m := d.s * r.NormFloat64()
	return p * math.Exp(m+d.shift)
}

// Bounds returns [0, the 99.5th percentile].
func (d *DeltaLognormal) Bounds() (float64, float64) {
	return 0, d.Quantile(0.995)
}
