// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// MockVariableValue sets a variable to a new value and returns a function to restore the old value
func MockVariableValue[T any](p *T, v ...T) (reset func()) {
	old := *p
	if len(v) > 0 {
		*p = v[0]
	}
	return func() { *p = old }
}

// WriteTestFiles writes the given name => content files into dir, sub directories are created on demand
func WriteTestFiles(t testing.TB, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

// ReadTestFile returns the content of the file, it fails the test if the file can't be read
func ReadTestFile(t testing.TB, p string) string {
	t.Helper()
	bs, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(bs)
}
