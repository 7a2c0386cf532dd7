// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/abviz/bayesab/abdist"
	"github.com/abviz/bayesab/abmodel"
	"github.com/abviz/bayesab/abstat"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// A Writer writes human-readable comparison reports.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
	p   *message.Printer

	first bool
}

// NewWriter returns a writer that writes reports to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, p: message.NewPrinter(language.English), first: true}
}

// Write writes the report of comparison c. Reports after the first
// are separated by a blank line.
func (w *Writer) Write(c *abstat.Comparison) error {
	if !w.first {
		w.buf.WriteByte('\n')
	}
	w.first = false

	title := c.Family.String()
	if c.Name != "" {
		title = fmt.Sprintf("%s (%s)", c.Name, c.Family)
	}
	fmt.Fprintf(&w.buf, "%s\n", title)
	if c.Degenerate {
		fmt.Fprintf(&w.buf, "  %v; reporting zeros\n", c.PriorErr)
	}
	fmt.Fprintf(&w.buf, "\n")

	// Expectations and bounds of both buckets share one
	// precision so they line up.
	scaler := CommonScale([]float64{
		c.A.Expectation, c.A.Interval.Lo, c.A.Interval.Hi,
		c.B.Expectation, c.B.Interval.Lo, c.B.Interval.Hi,
	})
	pct := w.p.Sprintf("%.4g%%", c.Confidence*100)
	for _, b := range []struct {
		name string
		*abstat.Bucket
	}{{"A", &c.A}, {"B", &c.B}} {
		fmt.Fprintf(&w.buf, "Bucket %s Win Rate: %.2f\n", b.name, b.WinRate)
		if b.Posterior != nil {
			fmt.Fprintf(&w.buf, "  - Posterior      : %v\n", b.Posterior)
		}
		fmt.Fprintf(&w.buf, "  - Expected Value : %s\n", scaler.Format(b.Expectation))
		fmt.Fprintf(&w.buf, "  - %-15s: [%s, %s]\n", pct+" Interval", scaler.Format(b.Interval.Lo), scaler.Format(b.Interval.Hi))
		fmt.Fprintf(&w.buf, "\n")
	}
	if !c.Degenerate {
		w.buf.WriteString(w.p.Sprintf("Based on %d sampling results.\n", c.Trials))
	}

	// Flush the buffer out to the io.Writer. Write to the buffer
	// can't fail, so we only have to check if this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

// Summary is the serializable form of a comparison.
type Summary struct {
	Name       string        `json:"name,omitempty" yaml:"name,omitempty"`
	Model      string        `json:"model" yaml:"model"`
	Trials     int           `json:"trials" yaml:"trials"`
	Confidence float64       `json:"confidence" yaml:"confidence"`
	Degenerate bool          `json:"degenerate,omitempty" yaml:"degenerate,omitempty"`
	A          BucketSummary `json:"a" yaml:"a"`
	B          BucketSummary `json:"b" yaml:"b"`
}

// BucketSummary is the serializable form of one bucket.
type BucketSummary struct {
	WinRate     float64            `json:"win_rate" yaml:"win_rate"`
	Expectation float64            `json:"expectation" yaml:"expectation"`
	Interval    [2]float64         `json:"interval" yaml:"interval,flow"`
	Posterior   map[string]float64 `json:"posterior,omitempty" yaml:"posterior,omitempty"`
}

// Summarize returns the serializable form of c.
func Summarize(c *abstat.Comparison) *Summary {
	return &Summary{
		Name:       c.Name,
		Model:      c.Family.String(),
		Trials:     c.Trials,
		Confidence: c.Confidence,
		Degenerate: c.Degenerate,
		A:          summarizeBucket(&c.A),
		B:          summarizeBucket(&c.B),
	}
}

func summarizeBucket(b *abstat.Bucket) BucketSummary {
	s := BucketSummary{
		WinRate:     b.WinRate,
		Expectation: b.Expectation,
		Interval:    [2]float64{b.Interval.Lo, b.Interval.Hi},
	}
	if p := b.Posterior; p != nil {
		switch p.Family {
		case abmodel.BetaBinomial:
			s.Posterior = map[string]float64{"alpha": p.Beta.Alpha, "beta": p.Beta.Beta}
		case abmodel.NormalNormal:
			s.Posterior = map[string]float64{"mu": p.Normal.Mu, "var": p.Normal.Var}
		case abmodel.DeltaLognormal:
			d := p.Delta
			s.Posterior = map[string]float64{
				"rate_alpha":      d.Rate.Alpha,
				"rate_beta":       d.Rate.Beta,
				"log_mu":          d.LogMean.Mu,
				"log_var":         d.LogMean.Var,
				"known_log_sigma": d.KnownLogSigma,
			}
		}
	}
	return s
}

// WriteJSON writes the summaries of cs to w as a JSON array.
func WriteJSON(w io.Writer, cs []*abstat.Comparison) error {
	sums := make([]*Summary, len(cs))
	for i, c := range cs {
		sums[i] = Summarize(c)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sums)
}

// WriteYAML writes the summaries of cs to w as a YAML stream, one
// document per comparison.
func WriteYAML(w io.Writer, cs []*abstat.Comparison) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, c := range cs {
		if err := enc.Encode(Summarize(c)); err != nil {
			return err
		}
	}
	return enc.Close()
}

// WriteCurve writes a tab-separated table of both buckets' posterior
// densities at n evenly spaced points spanning both distributions'
// bounds.
func WriteCurve(w io.Writer, c *abstat.Comparison, n int) error {
	if c.Degenerate {
		return fmt.Errorf("no posterior to plot: %w", c.PriorErr)
	}
	lo, hi := abdist.UnionBounds(c.A.Dist, c.B.Dist)
	xs, ysA := abdist.Curve(c.A.Dist, lo, hi, n)
	_, ysB := abdist.Curve(c.B.Dist, lo, hi, n)

	var buf bytes.Buffer
	buf.WriteString("x\tpdf_a\tpdf_b\n")
	for i, x := range xs {
		fmt.Fprintf(&buf, "%s\t%s\t%s\n", NoOpScaler.Format(x), NoOpScaler.Format(ysA[i]), NoOpScaler.Format(ysB[i]))
	}
	_, err := w.Write(buf.Bytes())
	return err
}
