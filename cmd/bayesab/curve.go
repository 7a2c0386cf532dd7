// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/abviz/bayesab/abfmt"
	"github.com/abviz/bayesab/abmodel"
	"github.com/abviz/bayesab/abstat"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewCurveCommand() *cobra.Command {
	cf := NewCompareFlags()
	points := 200
	format := "tsv"
	cmd := &cobra.Command{
		Use:   "curve [files...]",
		Short: "Print posterior density curves for YAML experiment files",
		Long: `curve reads experiments like run does and, for each one, prints a
tab-separated table of both buckets' posterior densities, suitable for
plotting. Each table is preceded by a "# name" line. With --format=plot
it draws the densities as ASCII charts instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var write func(io.Writer, *abstat.Comparison, int) error
			switch format {
			case "tsv":
				write = abfmt.WriteCurve
			case "plot":
				write = abfmt.PlotCurve
			default:
				return errors.Errorf("invalid curve format: %s", format)
			}
			if points < 2 {
				return errors.Errorf("--points must be at least 2, got %d", points)
			}
			if err := cf.Validate(cmd.Flags()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			n := 0
			return readExperiments(cmd, args, func(exp *abmodel.Experiment) error {
				n++
				c, err := cf.compare(exp)
				if err != nil {
					return err
				}
				if c.Degenerate {
					return errors.Wrap(c.PriorErr, "no posterior to plot")
				}
				name := exp.Name
				if name == "" {
					name = fmt.Sprintf("experiment %d", n)
				}
				if _, err := fmt.Fprintf(out, "# %s\n", name); err != nil {
					return err
				}
				return write(out, c, points)
			})
		},
	}
	cf.BindFlags(cmd.Flags())
	cmd.Flags().IntVar(&points, "points", points, "Number of points per curve")
	cmd.Flags().StringVar(&format, "format", format, "Curve format; available options are 'tsv' and 'plot'")
	return cmd
}
