// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"path/filepath"
	"strings"

	"code.gitea.io/transprune/modules/util"
)

// Prune settings
var Prune = struct {
	Strategy   string
	Attribute  string
	Marker     string
	SampleSize int

	Files           []string
	Exclude         []string
	ExcludeMatchers GlobMatchers

	AllowCharsetConversion bool
	AnsiCharset            string
}{
	Strategy:   "lenient",
	Attribute:  "translation",
	Marker:     "Unknown",
	SampleSize: 10,
}

func loadPruneFrom(rootCfg ConfigProvider) error {
	sec := rootCfg.Section("prune")
	Prune.Strategy = strings.ToLower(sec.Key("STRATEGY").MustString("lenient"))
	Prune.Attribute = sec.Key("ATTRIBUTE").MustString("translation")
	Prune.Marker = sec.Key("MARKER").MustString("Unknown")
	Prune.SampleSize = sec.Key("SAMPLE_SIZE").MustInt(10)
	Prune.Files = util.SplitTrimSpace(sec.Key("FILES").String(), ",")
	Prune.AllowCharsetConversion = sec.Key("ALLOW_CHARSET_CONVERSION").MustBool(false)
	Prune.AnsiCharset = sec.Key("ANSI_CHARSET").String()

	return SetPruneExclude(util.SplitTrimSpace(sec.Key("EXCLUDE").String(), ","))
}

// SetPruneExclude compiles the exclude globs, "*" doesn't cross path separators while "**" does
func SetPruneExclude(patterns []string) error {
	matchers, invalid, err := CompileGlobMatchers(patterns)
	if err != nil {
		return util.NewInvalidArgumentErrorf("invalid exclude glob %q: %v", invalid, err)
	}
	Prune.Exclude = matchers.Patterns()
	Prune.ExcludeMatchers = matchers
	return nil
}

// IsPruneExcluded reports whether the path matches one of the exclude globs.
// Paths inside AppWorkPath are also matched relative to it.
func IsPruneExcluded(p string) bool {
	candidates := []string{p}
	if AppWorkPath != "" && filepath.IsAbs(p) {
		if rel, err := filepath.Rel(AppWorkPath, p); err == nil && !strings.HasPrefix(rel, "..") {
			candidates = append(candidates, rel)
		}
	}
	return Prune.ExcludeMatchers.MatchAny(candidates...)
}

// PruneFilesString is used in the "help" output
func PruneFilesString() string {
	if len(Prune.Files) == 0 {
		return "(none)"
	}
	return strings.Join(Prune.Files, ", ")
}
