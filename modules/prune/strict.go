// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package prune

import (
	"regexp"
	"strings"
)

type strictMatcher struct {
	re *regexp.Regexp
}

func (m *strictMatcher) apply(content string) (string, []string) {
	matches := m.re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, nil
	}

	keys := make([]string, 0, len(matches))
	var sb strings.Builder
	sb.Grow(len(content))
	last := 0
	for _, loc := range matches {
		sb.WriteString(content[last:loc[0]])
		keys = append(keys, content[loc[2]:loc[3]])
		last = loc[1]
	}
	sb.WriteString(content[last:])
	return sb.String(), keys
}
