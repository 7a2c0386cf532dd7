// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abfmt

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/abviz/bayesab/abdist"
	"github.com/abviz/bayesab/abstat"
	"github.com/guptarohit/asciigraph"
)

// PlotCurve draws both buckets' posterior densities of c as ASCII
// charts, each sampled at n points spanning both distributions'
// bounds.
func PlotCurve(w io.Writer, c *abstat.Comparison, n int) error {
	if c.Degenerate {
		return fmt.Errorf("no posterior to plot: %w", c.PriorErr)
	}
	lo, hi := abdist.UnionBounds(c.A.Dist, c.B.Dist)
	scaler := CommonScale([]float64{lo, hi})

	var out []string
	for _, b := range []struct {
		name string
		d    abdist.Dist
	}{{"A", c.A.Dist}, {"B", c.B.Dist}} {
		_, ys := abdist.Curve(b.d, lo, hi, n)
		finite(ys)
		caption := fmt.Sprintf("bucket %s density over [%s, %s]", b.name, scaler.Format(lo), scaler.Format(hi))
		out = append(out, asciigraph.Plot(ys, asciigraph.Caption(caption), asciigraph.Height(10), asciigraph.Width(72)))
	}
	_, err := io.WriteString(w, strings.Join(out, "\n\n")+"\n")
	return err
}

// finite replaces the non-finite densities at the poles of ys with
// the largest finite value in ys.
func finite(ys []float64) {
	max := 0.0
	for _, y := range ys {
		if !math.IsInf(y, 0) && !math.IsNaN(y) && y > max {
			max = y
		}
	}
	for i, y := range ys {
		if math.IsInf(y, 0) || math.IsNaN(y) {
			ys[i] = max
		}
	}
}
