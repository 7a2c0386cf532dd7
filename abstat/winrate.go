// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abstat

import (
	"math/rand/v2"

	"github.com/abviz/bayesab/abdist"
)

// DefaultTrials is the number of Monte Carlo trials used when none is
// specified.
const DefaultTrials = 10000

// WinRate estimates Pr[A > B] for independent A and B by drawing
// trials paired samples, A before B in each pair, and returns the
// fraction in which A's sample is strictly greater. Exact ties count
// against A. winB is always 1 - winA.
//
// If trials <= 0, WinRate uses DefaultTrials.
func WinRate(a, b abdist.Dist, trials int, r *rand.Rand) (winA, winB float64) {
	if trials <= 0 {
		trials = DefaultTrials
	}
	wins := 0
	for i := 0; i < trials; i++ {
		x := a.Rand(r)
		y := b.Rand(r)
		if x > y {
			wins++
		}
	}
	winA = float64(wins) / float64(trials)
	return winA, 1 - winA
}
