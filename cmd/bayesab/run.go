// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/abviz/bayesab/abfmt"
	"github.com/abviz/bayesab/abmodel"
	"github.com/abviz/bayesab/abstat"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// readExperiments reads every experiment from the inputs named by args
// and calls fn for each well-formed one. Malformed documents and
// failed comparisons are logged and skipped. It returns an error if
// any input could not be read or any experiment failed.
func readExperiments(cmd *cobra.Command, args []string, fn func(*abmodel.Experiment) error) error {
	files := FileArgs{Args: args, In: cmd.InOrStdin()}
	defer files.Close()
	reader := new(abfmt.Reader)
	failed := 0
	for {
		f, name, err := files.Next()
		if err != nil {
			return pkgerrors.Wrap(err, "opening input")
		}
		if f == nil {
			break
		}
		reader.Reset(f, name)
		for reader.Scan() {
			exp, err := reader.Experiment()
			if err != nil {
				var serr *abfmt.SyntaxError
				if errors.As(err, &serr) {
					log.WithFields(log.Fields{"file": serr.FileName, "document": serr.Doc}).
						Warn(serr.Msg)
				} else {
					log.WithError(err).Warn("skipping malformed experiment")
				}
				failed++
				continue
			}
			if err := fn(exp); err != nil {
				log.WithError(err).WithField("file", name).Error("skipping experiment")
				failed++
			}
		}
		if err := reader.Err(); err != nil {
			return pkgerrors.Wrapf(err, "reading %s", name)
		}
	}
	if failed > 0 {
		return pkgerrors.Errorf("%d experiment(s) failed", failed)
	}
	return nil
}

func NewRunCommand() *cobra.Command {
	cf := NewCompareFlags()
	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Compare every experiment in YAML experiment files",
		Long: `run reads experiments from the named YAML files, or stdin if none are
given, and reports a comparison for each one. Malformed experiments are
logged and skipped; the command fails after reporting the rest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cf.Validate(cmd.Flags()); err != nil {
				return err
			}
			var cs []*abstat.Comparison
			readErr := readExperiments(cmd, args, func(exp *abmodel.Experiment) error {
				c, err := cf.compare(exp)
				if err != nil {
					return err
				}
				cs = append(cs, c)
				return nil
			})
			if err := cf.Report(cmd.OutOrStdout(), cs); err != nil {
				return pkgerrors.Wrap(err, "writing report")
			}
			return readErr
		},
	}
	cf.BindFlags(cmd.Flags())
	return cmd
}
