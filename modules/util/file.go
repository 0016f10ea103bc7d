// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"os"
)

// ReadFile reads the whole file, filesystem errors are classified by ClassifyFSError
func ReadFile(path string) ([]byte, error) {
	bs, err := os.ReadFile(path)
	return bs, ClassifyFSError(err)
}

// WriteFileKeepMode overwrites an existing file with content, the file permissions stay unchanged
func WriteFileKeepMode(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}
	return ClassifyFSError(os.WriteFile(path, content, mode))
}
