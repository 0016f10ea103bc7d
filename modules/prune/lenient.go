// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package prune

import "strings"

type lenientMatcher struct {
	assignment string
}

func isRecordClose(line string) bool {
	return recordCloseRe.MatchString(strings.TrimSpace(line))
}

func (m *lenientMatcher) apply(content string) (string, []string) {
	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	var keys []string

	for i := 0; i < len(lines); {
		line := lines[i]
		open := recordOpenRe.FindStringSubmatchIndex(line)
		if open == nil {
			// the assignment outside of any record is left alone
			kept = append(kept, line)
			i++
			continue
		}

		// the record spans from its opening line to the first closing line, inclusive.
		// The next key ends a record which wasn't closed, so does the end of the document.
		end := i
		if !isRecordClose(line[open[1]:]) {
			for end+1 < len(lines) && !recordOpenRe.MatchString(lines[end+1]) {
				end++
				if isRecordClose(lines[end]) {
					break
				}
			}
		}

		record := lines[i : end+1]
		if containsAny(record, m.assignment) {
			keys = append(keys, line[open[2]:open[3]])
		} else {
			kept = append(kept, record...)
		}
		i = end + 1
	}

	if len(keys) == 0 {
		return content, nil
	}
	return strings.Join(kept, "\n"), keys
}

func containsAny(lines []string, s string) bool {
	for _, line := range lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}
