// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package prune

import (
	"strings"

	"code.gitea.io/transprune/modules/util"
)

// Strategy selects how placeholder records are matched
type Strategy string

const (
	// StrategyLenient scans line by line and removes every record containing the assignment,
	// whatever other attributes the record has
	StrategyLenient Strategy = "lenient"

	// StrategyStrict removes a record only when the assignment is its sole attribute
	StrategyStrict Strategy = "strict"
)

// Strategies lists all known strategies
var Strategies = []Strategy{StrategyLenient, StrategyStrict}

// ParseStrategy returns the strategy for the (case-insensitive) name
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Strategies {
		if s == known {
			return s, nil
		}
	}
	return "", util.NewInvalidArgumentErrorf("unknown strategy %q, must be one of: %s", name, StrategyNames())
}

// StrategyNames returns the names of the known strategies for help texts
func StrategyNames() string {
	names := make([]string, 0, len(Strategies))
	for _, s := range Strategies {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

func (s Strategy) String() string {
	return string(s)
}

// matcher removes placeholder records from a document and reports the removed keys in order
type matcher interface {
	apply(content string) (output string, keys []string)
}

func (s Strategy) matcher(rule Rule) matcher {
	if s == StrategyStrict {
		return &strictMatcher{re: rule.strictRecordRegexp()}
	}
	return &lenientMatcher{assignment: rule.Assignment()}
}
