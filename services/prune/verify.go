// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package prune

import "context"

// Verify reports what Run would remove, no file is written
func Verify(ctx context.Context, opts *Options, entries []string) (*Summary, error) {
	verifyOpts := *opts
	verifyOpts.DryRun = true
	return Run(ctx, &verifyOpts, entries)
}

// HasPlaceholders reports whether any processed file still holds a removable record
func (s *Summary) HasPlaceholders() bool {
	return s.TotalRemoved > 0
}
