// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package prune

import (
	"path/filepath"
	"strings"

	"code.gitea.io/transprune/modules/log"
	"code.gitea.io/transprune/modules/util"

	"github.com/bmatcuk/doublestar/v4"
)

// Target is one file to process, Err is set when the entry couldn't be resolved
type Target struct {
	Path string
	Err  error
}

func hasGlobMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// ExpandTargets resolves the given entries into files.
// Entries with glob meta characters are expanded ("**" matches any number of directories),
// excluded paths are dropped and duplicates are removed, keeping the first occurrence.
// A glob without any match becomes a target with an error so that it shows up in the report.
func ExpandTargets(entries []string, isExcluded func(p string) bool) []Target {
	var targets []Target
	seen := make(map[string]struct{}, len(entries))
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		if isExcluded != nil && isExcluded(p) {
			log.Debug("Skipping excluded file %s", p)
			return
		}
		targets = append(targets, Target{Path: p})
	}

	for _, entry := range entries {
		if !hasGlobMeta(entry) {
			add(filepath.Clean(entry))
			continue
		}

		matches, err := doublestar.FilepathGlob(entry, doublestar.WithFilesOnly())
		if err != nil {
			targets = append(targets, Target{Path: entry, Err: util.NewInvalidArgumentErrorf("invalid glob %q: %v", entry, err)})
			continue
		}
		if len(matches) == 0 {
			targets = append(targets, Target{Path: entry, Err: util.NewNotExistErrorf("no file matches %q", entry)})
			continue
		}
		log.Trace("Glob %q matched %d file(s)", entry, len(matches))
		for _, m := range matches {
			add(m)
		}
	}
	return targets
}
