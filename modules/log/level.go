// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import "strings"

// Level is the level of the logger
type Level int

const (
	UNDEFINED Level = iota
	TRACE
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
	NONE
)

const CRITICAL = ERROR

type levelInfo struct {
	name  string
	color []ColorAttribute
}

var levels = [...]levelInfo{
	UNDEFINED: {"undefined", []ColorAttribute{Reset}},
	TRACE:     {"trace", []ColorAttribute{Bold, FgCyan}},
	DEBUG:     {"debug", []ColorAttribute{Bold, FgBlue}},
	INFO:      {"info", []ColorAttribute{Bold, FgGreen}},
	WARN:      {"warn", []ColorAttribute{Bold, FgYellow}},
	ERROR:     {"error", []ColorAttribute{Bold, FgRed}},
	FATAL:     {"fatal", []ColorAttribute{Bold, BgRed}},
	NONE:      {"none", []ColorAttribute{Reset}},
}

func (l Level) info() levelInfo {
	if l < UNDEFINED || l > NONE {
		return levels[INFO]
	}
	return levels[l]
}

func (l Level) String() string {
	return l.info().name
}

// ColorAttributes is used to colorize the level name in console output
func (l Level) ColorAttributes() []ColorAttribute {
	if l == UNDEFINED {
		return levels[NONE].color
	}
	return l.info().color
}

// MarshalText renders the level name, it is used by both the JSON report and the config
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText parses a level name, unknown names become INFO
func (l *Level) UnmarshalText(b []byte) error {
	*l = LevelFromString(string(b))
	return nil
}

// LevelFromString takes a level string and returns a Level, "warning" is accepted as WARN
func LevelFromString(level string) Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return WARN
	}
	for l := range levels {
		if levels[l].name == level {
			return Level(l)
		}
	}
	return INFO
}
