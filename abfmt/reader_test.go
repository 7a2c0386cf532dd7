// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abfmt

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/abviz/bayesab/abmodel"
)

func parseAll(t *testing.T, data string) ([]*abmodel.Experiment, []error) {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test")
	var exps []*abmodel.Experiment
	var errs []error
	for r.Scan() {
		exp, err := r.Experiment()
		exps = append(exps, exp)
		errs = append(errs, err)
	}
	if err := r.Err(); err != nil {
		t.Fatal("parsing failed: ", err)
	}
	return exps, errs
}

func TestReader(t *testing.T) {
	type testCase struct {
		name, input string
		want        []*abmodel.Experiment
	}
	for _, test := range []testCase{
		{
			"beta-binomial",
			`name: signup
model: beta-binomial
a: {x: 50, n: 100}
b: {x: 40, n: 100}
`,
			[]*abmodel.Experiment{{
				Name:      "signup",
				Family:    abmodel.BetaBinomial,
				BetaPrior: abmodel.UniformPrior,
				BinomialA: abmodel.BinomialObs{X: 50, N: 100},
				BinomialB: abmodel.BinomialObs{X: 40, N: 100},
			}},
		},
		{
			"presetAndCustom",
			`model: beta-binomial
prior: {preset: jeffreys}
a: {x: 1, n: 2}
---
model: beta
prior: {alpha: 2.5, beta: 7}
b: {n: 3}
`,
			[]*abmodel.Experiment{
				{
					Family:    abmodel.BetaBinomial,
					BetaPrior: abmodel.JeffreysPrior,
					BinomialA: abmodel.BinomialObs{X: 1, N: 2},
				},
				{
					Family:    abmodel.BetaBinomial,
					BetaPrior: abmodel.BetaPrior{Alpha: 2.5, Beta: 7},
					BinomialB: abmodel.BinomialObs{X: 0, N: 3},
				},
			},
		},
		{
			"normal",
			`model: normal
prior: {mu: -1, sigma: 10}
known_sigma: 2
a: {sum: 100, n: 10}
b: {values: [1, 2, 3.5]}
`,
			[]*abmodel.Experiment{{
				Family:      abmodel.NormalNormal,
				NormalPrior: abmodel.NormalPrior{Mu: -1, Sigma: 10},
				KnownSigma:  2,
				NormalA:     abmodel.NormalObs{Sum: 100, N: 10},
				NormalB:     abmodel.NormalObs{Sum: 6.5, N: 3},
			}},
		},
		{
			"normalDefaults",
			`model: normal
`,
			[]*abmodel.Experiment{{
				Family:      abmodel.NormalNormal,
				NormalPrior: abmodel.NormalPrior{Mu: 0, Sigma: 1},
				KnownSigma:  1,
			}},
		},
		{
			"delta",
			`model: delta-lognormal
prior: {alpha: 1, beta: 3, mu: 0.5, sigma: 4}
known_sigma: 0.75
a: {n: 1000, nonzero: 40, log_sum: 120.5}
b: {values: [0, 1, 0, 1, 0]}
`,
			[]*abmodel.Experiment{{
				Family: abmodel.DeltaLognormal,
				DeltaPrior: abmodel.DeltaLognormalPrior{
					Rate:          abmodel.BetaPrior{Alpha: 1, Beta: 3},
					LogMean:       abmodel.NormalPrior{Mu: 0.5, Sigma: 4},
					KnownLogSigma: 0.75,
				},
				DeltaA: abmodel.DeltaLognormalObs{N: 1000, NonZero: 40, LogSum: 120.5},
				DeltaB: abmodel.DeltaLognormalObs{N: 5, NonZero: 2, LogSum: 0},
			}},
		},
		{
			"emptyDocuments",
			`---
---
model: beta-binomial
---
`,
			[]*abmodel.Experiment{{
				Family:    abmodel.BetaBinomial,
				BetaPrior: abmodel.UniformPrior,
			}},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, errs := parseAll(t, test.input)
			for i, err := range errs {
				if err != nil {
					t.Fatalf("experiment %d: %v", i, err)
				}
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("got:\n%+v\nwant:\n%+v", got, test.want)
			}
		})
	}
}

func TestReaderErrors(t *testing.T) {
	test := func(input, wantErr string) {
		t.Helper()
		_, errs := parseAll(t, input)
		if len(errs) != 1 {
			t.Fatalf("for %q, got %d experiments, want 1", input, len(errs))
		}
		err := errs[0]
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Fatalf("for %q, got %v, want *SyntaxError", input, err)
		}
		if !strings.Contains(err.Error(), wantErr) {
			t.Errorf("for %q, got %q, want error containing %q", input, err, wantErr)
		}
		if !strings.HasPrefix(err.Error(), "test: document 1: ") {
			t.Errorf("for %q, error %q lacks position", input, err)
		}
	}
	test("name: x\n", "missing model")
	test("model: poisson\n", `unknown model family "poisson"`)
	test("model: normal\nbogus: 1\n", "field bogus not found")
	test("model: normal\na: {n: many}\n", "cannot unmarshal")
	test("model: normal\nprior: {alpha: 1, beta: 1}\n", "beta prior fields do not apply")
	test("model: beta-binomial\nknown_sigma: 2\n", "normal prior fields do not apply")
	test("model: beta-binomial\nprior: {alpha: 1}\n", "both alpha and beta")
	test("model: beta-binomial\nprior: {preset: haldane}\n", `unknown Beta prior preset "haldane"`)
	test("model: beta-binomial\nprior: {preset: uniform, alpha: 2}\n", "conflicts")
	test("model: beta-binomial\na: {sum: 3}\n", "bucket a: only x and n")
	test("model: normal\nb: {values: [1], n: 1}\n", "bucket b: values conflicts")
	test("model: delta-lognormal\na: {values: [1, -1]}\n", "bucket a: invalid observation")
}

func TestReaderContinues(t *testing.T) {
	// A malformed experiment does not stop the scan.
	exps, errs := parseAll(t, `model: poisson
---
model: beta-binomial
a: {x: 1, n: 1}
`)
	if len(exps) != 2 {
		t.Fatalf("got %d experiments, want 2", len(exps))
	}
	if errs[0] == nil || exps[0] != nil {
		t.Errorf("first experiment: got %v, %v, want error", exps[0], errs[0])
	}
	if errs[1] != nil || exps[1].BinomialA != (abmodel.BinomialObs{X: 1, N: 1}) {
		t.Errorf("second experiment: got %+v, %v", exps[1], errs[1])
	}
	if !strings.HasPrefix(errs[0].Error(), "test: document 1:") {
		t.Errorf("error %q has wrong position", errs[0])
	}
}

func TestReaderStreamError(t *testing.T) {
	r := NewReader(strings.NewReader("model: [unterminated\n"), "bad.yaml")
	if r.Scan() {
		t.Fatalf("Scan succeeded on malformed YAML")
	}
	if err := r.Err(); err == nil || !strings.HasPrefix(err.Error(), "bad.yaml: document 1: ") {
		t.Errorf("got error %v", err)
	}

	var zero Reader
	if zero.Scan() {
		t.Errorf("zero Reader scanned")
	}
	if _, err := zero.Experiment(); err == nil {
		t.Errorf("zero Reader returned an experiment")
	}
}

func TestReaderDeltaValues(t *testing.T) {
	exps, errs := parseAll(t, "model: delta-lognormal\na: {values: [0, 2.5, 10]}\n")
	if errs[0] != nil {
		t.Fatal(errs[0])
	}
	got := exps[0].DeltaA
	if got.N != 3 || got.NonZero != 2 || math.Abs(got.LogSum-math.Log(25)) > 1e-12 {
		t.Errorf("got %+v", got)
	}
}
