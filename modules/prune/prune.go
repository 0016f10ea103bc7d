// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package prune removes placeholder records from generated translation tables.
//
// A record is a quoted key followed by a brace-delimited attribute list, eg:
//
//	'dar': { 'translation': 'Unknown' },
//	'genn': {
//	  'translation': 'Unknown',
//	},
//
// A record is a placeholder when its attribute (default "translation") holds the
// marker (default "Unknown"). Content outside removed records is kept byte-for-byte.
package prune

// Options configures Filter
type Options struct {
	Strategy Strategy
	Rule     Rule
}

// DefaultOptions uses the lenient strategy and the default rule
func DefaultOptions() Options {
	return Options{Strategy: StrategyLenient, Rule: DefaultRule()}
}

// Result is the outcome of filtering one document
type Result struct {
	Content string

	// Found and Remaining count the assignment text before and after filtering
	Found     int
	Remaining int

	Removed int
	Keys    []string
}

// Changed reports whether any record was removed
func (r *Result) Changed() bool {
	return r.Removed > 0
}

// Filter removes the placeholder records from content
func Filter(content string, opts Options) (*Result, error) {
	if err := opts.Rule.Validate(); err != nil {
		return nil, err
	}
	strategy, err := ParseStrategy(string(opts.Strategy))
	if err != nil {
		return nil, err
	}

	output, keys := strategy.matcher(opts.Rule).apply(content)
	return &Result{
		Content:   output,
		Found:     opts.Rule.CountAssignments(content),
		Remaining: opts.Rule.CountAssignments(output),
		Removed:   len(keys),
		Keys:      keys,
	}, nil
}
