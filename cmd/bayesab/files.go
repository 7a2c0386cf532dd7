// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
)

// FileArgs iterates over the files named by Args, or In if there are
// none.
type FileArgs struct {
	Args []string
	In   io.Reader

	next int
	f    *os.File
}

// Next closes the previous file and opens the next one. It returns a
// nil reader once all inputs are consumed.
func (fa *FileArgs) Next() (r io.Reader, name string, err error) {
	if err := fa.Close(); err != nil {
		return nil, "", err
	}

	if fa.next >= len(fa.Args) {
		if fa.next == 0 {
			fa.next++
			in := fa.In
			if in == nil {
				in = os.Stdin
			}
			return in, "<stdin>", nil
		}
		return nil, "", nil
	}

	name = fa.Args[fa.next]
	f, err := os.Open(name)
	if err != nil {
		return nil, "", err
	}
	fa.next++
	fa.f = f
	return f, name, nil
}

// Close closes the file opened by the last call to Next, if any. It
// is safe to call more than once.
func (fa *FileArgs) Close() error {
	if fa.f == nil {
		return nil
	}
	err := fa.f.Close()
	fa.f = nil
	return err
}
