// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package prune

import (
	"fmt"
	"regexp"
	"strings"

	"code.gitea.io/transprune/modules/util"
)

const (
	DefaultAttribute = "translation"
	DefaultMarker    = "Unknown"
)

// Rule describes the removal predicate: a record is removable when Attribute holds Marker
type Rule struct {
	Attribute string
	Marker    string
}

// DefaultRule matches `'translation': 'Unknown'`
func DefaultRule() Rule {
	return Rule{Attribute: DefaultAttribute, Marker: DefaultMarker}
}

// Validate checks that the rule can be rendered into a quoted assignment
func (r Rule) Validate() error {
	if r.Attribute == "" || r.Marker == "" {
		return util.NewInvalidArgumentErrorf("attribute and marker must not be empty")
	}
	if strings.ContainsAny(r.Attribute, "'\n") || strings.ContainsAny(r.Marker, "'\n") {
		return util.NewInvalidArgumentErrorf("attribute %q and marker %q must not contain quotes or newlines", r.Attribute, r.Marker)
	}
	return nil
}

// Assignment returns the literal text which marks a placeholder, eg: 'translation': 'Unknown'
func (r Rule) Assignment() string {
	return fmt.Sprintf("'%s': '%s'", r.Attribute, r.Marker)
}

// CountAssignments counts the occurrences of the assignment text in content
func (r Rule) CountAssignments(content string) int {
	return strings.Count(content, r.Assignment())
}

var (
	// a record starts with a quoted key followed by a colon and an opening brace
	recordOpenRe = regexp.MustCompile(`'([^'\n]+)':\s*\{`)

	// a record is closed by a line whose trimmed content ends with "}" or "},", a trailing "//" comment is allowed
	recordCloseRe = regexp.MustCompile(`\}\s*,?\s*(?://.*)?$`)
)

// strictRecordRegexp matches a whole record holding the assignment as its only attribute.
// Leading indentation, the trailing separator and the line break are part of the match
// so that a removed single-line record leaves no blank line behind.
func (r Rule) strictRecordRegexp() *regexp.Regexp {
	return regexp.MustCompile(`[ \t]*'([^'\n]+)':\s*\{\s*'` + regexp.QuoteMeta(r.Attribute) +
		`':\s*'` + regexp.QuoteMeta(r.Marker) + `',?\s*\},?[ \t]*(?:\r?\n)?`)
}
