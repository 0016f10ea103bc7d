// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import "strings"

// SliceUniqueKeepOrder returns the distinct elements of the slice, keeping the first occurrence of each
func SliceUniqueKeepOrder[T comparable](list []T) []T {
	seen := make(map[T]struct{}, len(list))
	ret := make([]T, 0, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		ret = append(ret, v)
	}
	return ret
}

// SplitTrimSpace splits the string at given separator and trims leading and trailing space, empty parts are dropped
func SplitTrimSpace(input, sep string) []string {
	var stringList []string
	for _, s := range strings.Split(input, sep) {
		if s = strings.TrimSpace(s); s != "" {
			stringList = append(stringList, s)
		}
	}
	return stringList
}

// JoinWithEllipsis joins the first n items, " ..." is appended when some items are left out
func JoinWithEllipsis(items []string, n int, sep string) string {
	if n < 0 || len(items) <= n {
		return strings.Join(items, sep)
	}
	return strings.Join(items[:n], sep) + " ..."
}
