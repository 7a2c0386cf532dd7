// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abfmt

import (
	"math"
	"testing"
)

func TestCommonScale(t *testing.T) {
	test := func(num float64, want, wantPred string) {
		t.Helper()

		got := CommonScale([]float64{num}).Format(num)
		if got != want {
			t.Errorf("for %v, got %s, want %s", num, got, want)
		}

		// Check what happens when this number is exactly on
		// the crux between two precisions.
		pred := math.Nextafter(num, 0)
		got = CommonScale([]float64{pred}).Format(pred)
		if got != wantPred {
			dir := "-ε"
			if num < 0 {
				dir = "+ε"
			}
			t.Errorf("for %v%s, got %s, want %s", num, dir, got, wantPred)
		}
	}

	// Smoke tests
	test(0, "0.000", "0.000")
	test(1, "1.00", "1.00")
	test(-1, "-1.00", "-1.00")
	// Full range
	test(99950, "99950", "99950")
	test(99.95, "100", "99.9")
	test(9.995, "10.0", "9.99")
	test(.9995, "1.00", "0.999")
	test(.09995, "0.100", "0.0999")
	test(.009995, "0.0100", "0.00999")
	test(.0009995, "0.00100", "0.000999")
	// Misc
	test(-.5, "-0.500", "-0.500")
	test(0.4, "0.400", "0.400")
	test(1e-20, "0.000000000000", "0.000000000000")

	// The smallest value decides.
	s := CommonScale([]float64{0.0123, 51, 0, math.Inf(1)})
	if s.Prec != 4 {
		t.Errorf("got precision %d, want 4", s.Prec)
	}
}

func TestNoOpScaler(t *testing.T) {
	test := func(val float64, want string) {
		t.Helper()
		got := NoOpScaler.Format(val)
		if got != want {
			t.Errorf("for %v, got %s, want %s", val, got, want)
		}
	}

	test(1, "1")
	test(123456789, "123456789")
	test(123.456789, "123.456789")
	test(0.025, "0.025")
}
