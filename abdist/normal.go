// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abdist

import (
	"math/rand/v2"

	"github.com/abviz/bayesab/abmodel"
	"github.com/aclements/go-moremath/stats"
)

// Normal is the Normal posterior of an unknown mean.
type Normal struct {
	Params abmodel.NormalPosterior

	d stats.NormalDist
}

// NewNormal returns the distribution Normal(p.Mu, p.Var). p.Var must
// be positive.
func NewNormal(p abmodel.NormalPosterior) *Normal {
	return &Normal{Params: p, d: stats.NormalDist{Mu: p.Mu, Sigma: p.Sigma()}}
}

func (n *Normal) PDF(x float64) float64 {
	return n.d.PDF(x)
}

func (n *Normal) CDF(x float64) float64 {
	return n.d.CDF(x)
}

func (n *Normal) Mean() float64 {
	return n.d.Mu
}

func (n *Normal) Quantile(p float64) float64 {
	return n.d.InvCDF(p)
}

func (n *Normal) Interval(confidence float64) Interval {
	return central(n.Quantile, confidence)
}

func (n *Normal) Rand(r *rand.Rand) float64 {
	return n.d.Mu + n.d.Sigma*r.NormFloat64()
}

// Bounds returns μ ± 3σ.
func (n *Normal) Bounds() (float64, float64) {
	return n.d.Bounds()
}
