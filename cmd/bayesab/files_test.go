// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileArgs(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0o644))

	fa := FileArgs{Args: []string{a, b}}
	var names []string
	for {
		r, name, err := fa.Next()
		require.NoError(t, err)
		if r == nil {
			break
		}
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, filepath.Base(name)[:1], string(data))
		names = append(names, name)
	}
	assert.Equal(t, []string{a, b}, names)
	assert.Nil(t, fa.f)
}

func TestFileArgsStdin(t *testing.T) {
	fa := FileArgs{In: strings.NewReader("x")}
	r, name, err := fa.Next()
	require.NoError(t, err)
	assert.Equal(t, "<stdin>", name)
	require.NotNil(t, r)
	r, _, err = fa.Next()
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestFileArgsClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	fa := FileArgs{Args: []string{path, path}}
	_, _, err := fa.Next()
	require.NoError(t, err)
	f := fa.f
	require.NotNil(t, f)

	// Stopping early still releases the open file.
	require.NoError(t, fa.Close())
	assert.Nil(t, fa.f)
	_, err = f.Stat()
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.NoError(t, fa.Close())
}
