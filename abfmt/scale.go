// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abfmt

import (
	"fmt"
	"math"
	"strconv"
)

// Scaler formats numbers with a fixed number of digits after the
// decimal point.
type Scaler struct {
	Prec int // Digits after the decimal point, or -1 for the shortest exact representation
}

// Format formats val according to s.
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val, 'f', s.Prec, 64)
	return string(buf)
}

// NoOpScaler is a Scaler that formats numbers with the smallest
// number of digits necessary to capture the exact value. This is
// intended for when the output will be consumed by another program.
var NoOpScaler = Scaler{-1}

// maxPrec bounds the digits CommonScale will choose.
const maxPrec = 12

// precThresholds[p] is the smallest magnitude that prints with at
// least three significant digits using p digits after the decimal
// point.
var precThresholds = mkPrecThresholds()

func mkPrecThresholds() []float64 {
	// To ensure that the thresholds exactly match how printing
	// itself will round, we construct the thresholds by parsing
	// the printed representation.
	ts := make([]float64, maxPrec+1)
	for p := range ts {
		ts[p], _ = strconv.ParseFloat(fmt.Sprintf("99.95e-%d", p), 64)
	}
	return ts
}

// CommonScale returns a common Scaler to apply to all values in vals.
// This scale will show at least three significant digits for every
// value that is not too close to zero.
func CommonScale(vals []float64) Scaler {
	// The common scale is determined by the non-zero finite
	// value closest to zero.
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && !math.IsInf(v, 0) && !math.IsNaN(v) && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3}
	}
	for p, t := range precThresholds {
		if min >= t {
			return Scaler{p}
		}
	}
	return Scaler{maxPrec}
}
