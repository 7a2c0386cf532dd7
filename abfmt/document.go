// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abfmt

import (
	"fmt"

	"github.com/abviz/bayesab/abmodel"
)

// document is the YAML form of one experiment.
type document struct {
	Name       string   `yaml:"name"`
	Model      string   `yaml:"model"`
	Prior      priorDoc `yaml:"prior"`
	KnownSigma *float64 `yaml:"known_sigma"`
	A          obsDoc   `yaml:"a"`
	B          obsDoc   `yaml:"b"`
}

type priorDoc struct {
	Preset string   `yaml:"preset"`
	Alpha  *float64 `yaml:"alpha"`
	Beta   *float64 `yaml:"beta"`
	Mu     *float64 `yaml:"mu"`
	Sigma  *float64 `yaml:"sigma"`
}

type obsDoc struct {
	X       *int      `yaml:"x"`
	N       *int      `yaml:"n"`
	Sum     *float64  `yaml:"sum"`
	NonZero *int      `yaml:"nonzero"`
	LogSum  *float64  `yaml:"log_sum"`
	Values  []float64 `yaml:"values"`
}

func orInt(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func orFloat(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// experiment fills in e from d. It checks only the structure of d;
// value domains are left to the caller.
func (d *document) experiment(e *abmodel.Experiment) error {
	if d.Model == "" {
		return fmt.Errorf("missing model")
	}
	fam, err := abmodel.ParseFamily(d.Model)
	if err != nil {
		return err
	}
	e.Name = d.Name
	e.Family = fam

	switch fam {
	case abmodel.BetaBinomial:
		if d.Prior.Mu != nil || d.Prior.Sigma != nil || d.KnownSigma != nil {
			return fmt.Errorf("normal prior fields do not apply to model %s", fam)
		}
		if e.BetaPrior, err = d.Prior.beta(); err != nil {
			return err
		}
		if e.BinomialA, err = d.A.binomial("a"); err != nil {
			return err
		}
		e.BinomialB, err = d.B.binomial("b")
		return err

	case abmodel.NormalNormal:
		if d.Prior.Preset != "" || d.Prior.Alpha != nil || d.Prior.Beta != nil {
			return fmt.Errorf("beta prior fields do not apply to model %s", fam)
		}
		e.NormalPrior = d.Prior.normal()
		e.KnownSigma = orFloat(d.KnownSigma, 1)
		if e.NormalA, err = d.A.normal("a"); err != nil {
			return err
		}
		e.NormalB, err = d.B.normal("b")
		return err

	case abmodel.DeltaLognormal:
		rate, err := d.Prior.beta()
		if err != nil {
			return err
		}
		e.DeltaPrior = abmodel.DeltaLognormalPrior{
			Rate:          rate,
			LogMean:       d.Prior.normal(),
			KnownLogSigma: orFloat(d.KnownSigma, 1),
		}
		if e.DeltaA, err = d.A.delta("a"); err != nil {
			return err
		}
		e.DeltaB, err = d.B.delta("b")
		return err
	}
	panic("not reachable")
}

func (p *priorDoc) beta() (abmodel.BetaPrior, error) {
	if p.Preset != "" {
		if p.Alpha != nil || p.Beta != nil {
			return abmodel.BetaPrior{}, fmt.Errorf("prior preset %q conflicts with alpha/beta", p.Preset)
		}
		return abmodel.ParseBetaPreset(p.Preset)
	}
	switch {
	case p.Alpha == nil && p.Beta == nil:
		return abmodel.UniformPrior, nil
	case p.Alpha == nil || p.Beta == nil:
		return abmodel.BetaPrior{}, fmt.Errorf("prior requires both alpha and beta")
	}
	return abmodel.BetaPrior{Alpha: *p.Alpha, Beta: *p.Beta}, nil
}

func (p *priorDoc) normal() abmodel.NormalPrior {
	return abmodel.NormalPrior{Mu: orFloat(p.Mu, 0), Sigma: orFloat(p.Sigma, 1)}
}

func (o *obsDoc) binomial(bucket string) (abmodel.BinomialObs, error) {
	if o.Sum != nil || o.NonZero != nil || o.LogSum != nil || o.Values != nil {
		return abmodel.BinomialObs{}, fmt.Errorf("bucket %s: only x and n apply to model %s", bucket, abmodel.BetaBinomial)
	}
	return abmodel.BinomialObs{X: orInt(o.X, 0), N: orInt(o.N, 0)}, nil
}

func (o *obsDoc) normal(bucket string) (abmodel.NormalObs, error) {
	if o.X != nil || o.NonZero != nil || o.LogSum != nil {
		return abmodel.NormalObs{}, fmt.Errorf("bucket %s: only sum, n, or values apply to model %s", bucket, abmodel.NormalNormal)
	}
	if o.Values != nil {
		if o.Sum != nil || o.N != nil {
			return abmodel.NormalObs{}, fmt.Errorf("bucket %s: values conflicts with sum and n", bucket)
		}
		var sum float64
		for _, v := range o.Values {
			sum += v
		}
		return abmodel.NormalObs{Sum: sum, N: len(o.Values)}, nil
	}
	return abmodel.NormalObs{Sum: orFloat(o.Sum, 0), N: orInt(o.N, 0)}, nil
}

func (o *obsDoc) delta(bucket string) (abmodel.DeltaLognormalObs, error) {
	if o.X != nil || o.Sum != nil {
		return abmodel.DeltaLognormalObs{}, fmt.Errorf("bucket %s: only n, nonzero, log_sum, or values apply to model %s", bucket, abmodel.DeltaLognormal)
	}
	if o.Values != nil {
		if o.N != nil || o.NonZero != nil || o.LogSum != nil {
			return abmodel.DeltaLognormalObs{}, fmt.Errorf("bucket %s: values conflicts with n, nonzero, and log_sum", bucket)
		}
		obs, err := abmodel.DeltaLognormalObsOf(o.Values)
		if err != nil {
			return obs, fmt.Errorf("bucket %s: %w", bucket, err)
		}
		return obs, nil
	}
	return abmodel.DeltaLognormalObs{N: orInt(o.N, 0), NonZero: orInt(o.NonZero, 0), LogSum: orFloat(o.LogSum, 0)}, nil
}
