// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

// GlobMatcher matches file paths against a compiled glob, paths are matched in slash form
type GlobMatcher struct {
	compiledGlob  glob.Glob
	patternString string
}

var _ glob.Glob = (*GlobMatcher)(nil)

func (g *GlobMatcher) Match(s string) bool {
	return g.compiledGlob.Match(filepath.ToSlash(s))
}

func (g *GlobMatcher) PatternString() string {
	return g.patternString
}

// GlobMatcherCompile compiles a path glob, "*" stops at "/" while "**" crosses it
func GlobMatcherCompile(pattern string) (*GlobMatcher, error) {
	g, err := glob.Compile(filepath.ToSlash(pattern), '/')
	if err != nil {
		return nil, err
	}
	return &GlobMatcher{
		compiledGlob:  g,
		patternString: pattern,
	}, nil
}

// GlobMatchers is a list of globs, a path is matched when any of them matches
type GlobMatchers []*GlobMatcher

// CompileGlobMatchers compiles all patterns, the first invalid one is returned with the error
func CompileGlobMatchers(patterns []string) (GlobMatchers, string, error) {
	matchers := make(GlobMatchers, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := GlobMatcherCompile(pattern)
		if err != nil {
			return nil, pattern, err
		}
		matchers = append(matchers, g)
	}
	return matchers, "", nil
}

// MatchAny reports whether one of the candidates matches one of the globs
func (gs GlobMatchers) MatchAny(candidates ...string) bool {
	for _, g := range gs {
		for _, c := range candidates {
			if g.Match(c) {
				return true
			}
		}
	}
	return false
}

// Patterns returns the source patterns
func (gs GlobMatchers) Patterns() []string {
	patterns := make([]string, 0, len(gs))
	for _, g := range gs {
		patterns = append(patterns, g.PatternString())
	}
	return patterns
}
