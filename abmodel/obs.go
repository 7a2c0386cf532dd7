// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmodel

import "math"

// BinomialObs is X successes out of N trials.
type BinomialObs struct {
	X, N int
}

// Validate returns an error wrapping ErrInvalidObservation unless
// 0 <= X <= N.
func (o BinomialObs) Validate() error {
	switch {
	case o.X < 0 || o.N < 0:
		return obsError("negative count x=%d n=%d", o.X, o.N)
	case o.X > o.N:
		return obsError("successes exceed trials x=%d > n=%d", o.X, o.N)
	}
	return nil
}

// NormalObs summarizes N normally distributed values by their Sum.
type NormalObs struct {
	Sum float64
	N   int
}

// Validate returns an error wrapping ErrInvalidObservation if N is
// negative or Sum is not finite. With N == 0 the sum is ignored.
func (o NormalObs) Validate() error {
	switch {
	case o.N < 0:
		return obsError("negative count n=%d", o.N)
	case math.IsNaN(o.Sum) || math.IsInf(o.Sum, 0):
		return obsError("sum is not finite: %v", o.Sum)
	}
	return nil
}

// Mean returns the sample mean, or 0 if there are no observations.
func (o NormalObs) Mean() float64 {
	if o.N == 0 {
		return 0
	}
	return o.Sum / float64(o.N)
}

// DeltaLognormalObs summarizes N values of which NonZero are nonzero.
// LogSum is the sum of log(v) over the nonzero values v.
type DeltaLognormalObs struct {
	N, NonZero int
	LogSum     float64
}

// DeltaLognormalObsOf summarizes the raw values vs. Values must be
// non-negative.
func DeltaLognormalObsOf(vs []float64) (DeltaLognormalObs, error) {
	o := DeltaLognormalObs{N: len(vs)}
	for _, v := range vs {
		switch {
		case v < 0 || math.IsNaN(v) || math.IsInf(v, 0):
			return DeltaLognormalObs{}, obsError("value %v is not a finite non-negative number", v)
		case v > 0:
			o.NonZero++
			o.LogSum += math.Log(v)
		}
	}
	return o, nil
}

// Validate returns an error wrapping ErrInvalidObservation unless
// 0 <= NonZero <= N and LogSum is finite.
func (o DeltaLognormalObs) Validate() error {
	if err := (BinomialObs{o.NonZero, o.N}).Validate(); err != nil {
		return err
	}
	return (NormalObs{o.LogSum, o.NonZero}).Validate()
}

// rate returns the nonzero indicator counts as a binomial observation.
func (o DeltaLognormalObs) rate() BinomialObs {
	return BinomialObs{X: o.NonZero, N: o.N}
}

// logValues returns the nonzero log values as a normal observation.
func (o DeltaLognormalObs) logValues() NormalObs {
	return NormalObs{Sum: o.LogSum, N: o.NonZero}
}
