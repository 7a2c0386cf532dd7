// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abviz/bayesab/abdist"
	"github.com/abviz/bayesab/abmodel"
	"github.com/abviz/bayesab/abstat"
	"gopkg.in/yaml.v3"
)

func sampleComparison(t *testing.T) *abstat.Comparison {
	t.Helper()
	seed := uint64(7)
	c, err := abstat.CompareBetaBinomial(abmodel.UniformPrior,
		abmodel.BinomialObs{X: 50, N: 100}, abmodel.BinomialObs{X: 40, N: 100},
		&abstat.Options{Seed: &seed})
	if err != nil {
		t.Fatal(err)
	}
	c.Name = "signup"
	return c
}

func TestWriter(t *testing.T) {
	c := &abstat.Comparison{
		Name:       "fixed",
		Family:     abmodel.NormalNormal,
		Trials:     10000,
		Confidence: 0.95,
		A: abstat.Bucket{
			WinRate:     0.9731,
			Expectation: 9.99,
			Interval:    abdist.Interval{Lo: 9.371, Hi: 10.609},
			Posterior:   abmodel.NormalOf(abmodel.NormalPosterior{Mu: 9.99, Var: 0.1}),
		},
		B: abstat.Bucket{
			WinRate:     0.0269,
			Expectation: 0,
			Interval:    abdist.Interval{Lo: -0.62, Hi: 0.62},
			Posterior:   abmodel.NormalOf(abmodel.NormalPosterior{Mu: 0, Var: 0.1}),
		},
	}
	var buf bytes.Buffer
	if err := NewWriter(&buf).Write(c); err != nil {
		t.Fatal(err)
	}
	want := `fixed (normal)

Bucket A Win Rate: 0.97
  - Posterior      : Normal(9.99, 0.1)
  - Expected Value : 9.990
  - 95% Interval   : [9.371, 10.609]

Bucket B Win Rate: 0.03
  - Posterior      : Normal(0, 0.1)
  - Expected Value : 0.000
  - 95% Interval   : [-0.620, 0.620]

Based on 10,000 sampling results.
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriterDegenerate(t *testing.T) {
	obs := abmodel.BinomialObs{X: 1, N: 2}
	c, err := abstat.CompareBetaBinomial(abmodel.BetaPrior{Alpha: 0, Beta: 1}, obs, obs, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write(c); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"invalid prior parameters",
		"Bucket A Win Rate: 0.00\n  - Expected Value : 0.000\n  - 95% Interval   : [0.000, 0.000]",
		"Bucket B Win Rate: 0.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report lacks %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "sampling results") {
		t.Errorf("degenerate report mentions sampling:\n%s", got)
	}

	// Second report is separated by a blank line.
	buf.Reset()
	if err := w.Write(c); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "\nbeta-binomial\n") {
		t.Errorf("second report starts %q", buf.String()[:20])
	}
}

func TestSummary(t *testing.T) {
	c := sampleComparison(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, []*abstat.Comparison{c}); err != nil {
		t.Fatal(err)
	}
	var js []Summary
	if err := json.Unmarshal(buf.Bytes(), &js); err != nil {
		t.Fatal(err)
	}
	if len(js) != 1 || js[0].Name != "signup" || js[0].Model != "beta-binomial" || js[0].Trials != 10000 {
		t.Fatalf("got %+v", js)
	}
	if got := js[0].A.Posterior; got["alpha"] != 51 || got["beta"] != 51 {
		t.Errorf("posterior A %v, want alpha=51 beta=51", got)
	}
	if js[0].A.WinRate != c.A.WinRate || js[0].B.Interval[1] != c.B.Interval.Hi {
		t.Errorf("summary %+v does not match comparison", js[0])
	}

	buf.Reset()
	if err := WriteYAML(&buf, []*abstat.Comparison{c, c}); err != nil {
		t.Fatal(err)
	}
	dec := yaml.NewDecoder(&buf)
	n := 0
	for {
		var s Summary
		if err := dec.Decode(&s); err != nil {
			break
		}
		n++
		if s.Model != "beta-binomial" || s.A.Posterior["beta"] != 51 {
			t.Errorf("YAML summary %+v", s)
		}
	}
	if n != 2 {
		t.Errorf("got %d YAML documents, want 2", n)
	}
}

func TestWriteCurve(t *testing.T) {
	c := sampleComparison(t)
	var buf bytes.Buffer
	if err := WriteCurve(&buf, c, 11); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12:\n%s", len(lines), buf.String())
	}
	if lines[0] != "x\tpdf_a\tpdf_b" {
		t.Errorf("header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0\t0\t0") {
		t.Errorf("first row %q, want zero densities at 0", lines[1])
	}
	if f := strings.Split(lines[6], "\t"); f[0] != "0.5" {
		t.Errorf("middle row %q, want x=0.5", lines[6])
	}

	obs := abmodel.BinomialObs{X: 1, N: 2}
	d, _ := abstat.CompareBetaBinomial(abmodel.BetaPrior{}, obs, obs, nil)
	if err := WriteCurve(&buf, d, 11); err == nil {
		t.Errorf("want error for degenerate comparison")
	}
}

func TestPlotCurve(t *testing.T) {
	c := sampleComparison(t)
	var buf bytes.Buffer
	if err := PlotCurve(&buf, c, 40); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"bucket A density over [0.00, 1.00]", "bucket B density over [0.00, 1.00]"} {
		if !strings.Contains(out, want) {
			t.Errorf("plot missing caption %q:\n%s", want, out)
		}
	}

	obs := abmodel.BinomialObs{X: 1, N: 2}
	d, _ := abstat.CompareBetaBinomial(abmodel.BetaPrior{}, obs, obs, nil)
	if err := PlotCurve(&buf, d, 40); err == nil {
		t.Errorf("want error for degenerate comparison")
	}
}

func TestPlotPoles(t *testing.T) {
	obs := abmodel.BinomialObs{X: 0, N: 0}
	c, err := abstat.CompareBetaBinomial(abmodel.JeffreysPrior, obs, obs, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := PlotCurve(&buf, c, 20); err != nil {
		t.Fatal(err)
	}
}
