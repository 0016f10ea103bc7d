// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"sort"
	"strings"
)

// These flags define which text to prefix to each log entry generated
// by the Logger. Bits are or'ed together to control what's printed.
// The standard is:
// 2009/01/23 01:23:23 clean.go:23 [I] message
const (
	Ldate         = 1 << iota // the date in the local time zone: 2009/01/23
	Ltime                     // the time in the local time zone: 01:23:23
	Lmicroseconds             // microsecond resolution: 01:23:23.123123.  assumes Ltime.
	Lshortfile                // final file name element and line number: d.go:23
	LUTC                      // if Ldate or Ltime is set, use UTC rather than the local time zone
	Llevelinitial             // Initial character of the provided level in brackets eg. [I] for info
	Llevel                    // Provided level in brackets [INFO]

	// LstdFlags is the initial value for the standard logger
	LstdFlags = Ldate | Ltime | Llevelinitial

	// LconsoleFlags is used for CLI output, where timestamps are noise
	LconsoleFlags = Llevelinitial
)

var flagFromString = map[string]int{
	"none":         0,
	"date":         Ldate,
	"time":         Ltime,
	"microseconds": Lmicroseconds,
	"shortfile":    Lshortfile,
	"utc":          LUTC,
	"levelinitial": Llevelinitial,
	"level":        Llevel,
	"stdflags":     LstdFlags,
	"consoleflags": LconsoleFlags,
}

// FlagsFromString takes a comma separated list of flags and returns
// the flags for this string, -1 means "no flag is set"
func FlagsFromString(from string) int {
	flags := 0
	for _, flag := range strings.Split(strings.ToLower(from), ",") {
		f, ok := flagFromString[strings.TrimSpace(flag)]
		if ok {
			flags |= f
		}
	}
	if flags == 0 {
		return -1
	}
	return flags
}

// FlagsString returns the flag names which are fully contained in flags
func FlagsString(flags int) string {
	if flags <= 0 {
		return "none"
	}
	var names []string
	for name, f := range flagFromString {
		if f == 0 || name == "stdflags" || name == "consoleflags" {
			continue
		}
		if flags&f == f {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
