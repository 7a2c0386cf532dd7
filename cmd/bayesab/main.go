// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bayesab compares two A/B test buckets under a conjugate
// Bayesian model and reports each bucket's posterior expectation,
// credible interval, and the probability that it beats the other.
//
// Usage:
//
//	bayesab beta-binomial --xa 50 --na 100 --xb 40 --nb 100
//	bayesab normal --mu 0 --sigma 10 --known-sigma 1 --sum-a 100 --na 10 --sum-b 0 --nb 10
//	bayesab delta-lognormal --na 1000 --nonzero-a 40 --log-sum-a 120 --nb 1000 --nonzero-b 30 --log-sum-b 95
//	bayesab run [experiment files...]
//	bayesab curve [experiment files...]
//
// The run and curve commands read YAML experiment files, or stdin if
// no files are given. See package abfmt for the file format.
package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	logLevel := "info"

	rootCmd := &cobra.Command{
		Use:   "bayesab",
		Short: "Bayesian A/B test comparisons",
		Long: `bayesab compares two buckets of observed data under a Beta-Binomial,
Normal-Normal, or Delta-Lognormal model and estimates the probability
that each bucket outperforms the other by sampling from the posteriors.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			log.Debug("debug logging enabled")
			return nil
		},
	}

	rootCmd.AddCommand(
		NewBetaBinomialCommand(),
		NewNormalCommand(),
		NewDeltaLognormalCommand(),
		NewRunCommand(),
		NewCurveCommand(),
	)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel,
		"Log level (trace,debug,info,warn,error)")
	return rootCmd
}

func main() {
	// Add some millisecond precision to log timestamps.
	formatter := new(log.TextFormatter)
	formatter.TimestampFormat = "2006-01-02T15:04:05.999Z07:00"
	formatter.FullTimestamp = true
	log.SetFormatter(formatter)

	if err := newRootCommand().Execute(); err != nil {
		log.WithError(err).Fatal("could not execute command")
	}
}
