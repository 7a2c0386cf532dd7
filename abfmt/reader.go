// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abfmt reads A/B experiment files and writes comparison
// reports.
//
// An experiment file is a stream of YAML documents, one experiment per
// document:
//
//	name: signup-button
//	model: beta-binomial
//	prior: {preset: jeffreys}
//	a: {x: 50, n: 100}
//	b: {x: 40, n: 100}
//	---
//	name: order-value
//	model: normal
//	prior: {mu: 0, sigma: 10}
//	known_sigma: 1
//	a: {sum: 100, n: 10}
//	b: {values: [0.5, -0.25, 1.5]}
//	---
//	name: revenue
//	model: delta-lognormal
//	prior: {alpha: 1, beta: 1, mu: 0, sigma: 10}
//	known_sigma: 1
//	a: {n: 1000, nonzero: 40, log_sum: 120.5}
//	b: {values: [0, 0, 12.5, 0, 3.99]}
//
// The prior defaults to the uniform Beta prior and Normal(0, 1) and
// known_sigma defaults to 1.
package abfmt

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/abviz/bayesab/abmodel"
	"gopkg.in/yaml.v3"
)

// A Reader reads experiment files.
//
// Its API is modeled on bufio.Scanner. The zero value of the Reader is
// a valid Reader, but the user must call Reset before using it.
type Reader struct {
	dec      *yaml.Decoder
	fileName string
	doc      int
	err      error // current I/O or YAML stream error

	exp    abmodel.Experiment
	expErr error
}

// SyntaxError represents a malformed experiment in a particular
// document of an experiment file.
type SyntaxError struct {
	FileName string
	Doc      int // 1-based document index
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s: document %d: %s", s.FileName, s.Doc, s.Msg)
}

var noExperiment = errors.New("Reader.Scan has not been called")

// NewReader constructs a reader to parse experiments from r. fileName
// is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.dec = yaml.NewDecoder(ior)
	r.dec.KnownFields(true)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.doc = 0
	r.err = nil
	r.exp = abmodel.Experiment{}
	r.expErr = noExperiment
}

// Scan advances the reader to the next experiment and returns true if
// one was read. The caller should use the Experiment method to get
// it. If a stream error occurs, or this reaches the end of the input,
// it returns false and the caller should use the Err method to check
// for errors.
func (r *Reader) Scan() bool {
	if r.err != nil || r.dec == nil {
		return false
	}

	for {
		var d document
		err := r.dec.Decode(&d)
		if err == io.EOF {
			return false
		}
		r.doc++
		var terr *yaml.TypeError
		if errors.As(err, &terr) {
			// The stream is still intact, so report
			// this experiment and keep going.
			r.exp = abmodel.Experiment{}
			r.expErr = r.syntaxError("%s", terr)
			return true
		} else if err != nil {
			r.err = fmt.Errorf("%s: document %d: %w", r.fileName, r.doc, err)
			return false
		}
		if reflect.ValueOf(d).IsZero() {
			// Empty document.
			continue
		}

		r.exp = abmodel.Experiment{}
		r.expErr = d.experiment(&r.exp)
		if r.expErr != nil {
			r.expErr = r.syntaxError("%s", r.expErr)
		}
		return true
	}
}

func (r *Reader) syntaxError(format string, args ...interface{}) error {
	return &SyntaxError{r.fileName, r.doc, fmt.Sprintf(format, args...)}
}

// Experiment returns the experiment that was just read by Scan, or an
// error if the document was malformed. The Experiment is a copy that
// the caller may retain.
//
// If the document was malformed, a *SyntaxError is returned. This is
// a non-fatal error; the caller can continue to call Scan.
func (r *Reader) Experiment() (*abmodel.Experiment, error) {
	if r.dec == nil {
		return nil, noExperiment
	}
	if r.expErr != nil {
		return nil, r.expErr
	}
	exp := r.exp
	return &exp, nil
}

// Err returns the first stream error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}
