// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"io"
	"os"
	"sync"
)

const DEFAULT = "default"

var (
	loggersMu sync.Mutex
	loggers   = map[string]*LoggerImpl{}
)

// GetLogger returns the logger with the given name, a console logger on stderr is created on first use
func GetLogger(name string) *LoggerImpl {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	l := NewLoggerWithWriter(os.Stderr, WriterMode{Level: INFO, Flags: LconsoleFlags, Colorize: CanColorStderr})
	loggers[name] = l
	return l
}

// SetConsoleLogger replaces the writer and mode of the named logger
func SetConsoleLogger(name string, out io.Writer, mode WriterMode) {
	GetLogger(name).ReplaceWriter(out, mode)
}

// GetLevel returns the level of the default logger
func GetLevel() Level {
	return GetLogger(DEFAULT).GetLevel()
}

// IsTrace returns true if the default logger is TRACE
func IsTrace() bool {
	return GetLevel() <= TRACE
}

// IsDebug returns true if the default logger is DEBUG
func IsDebug() bool {
	return GetLevel() <= DEBUG
}

func Trace(format string, v ...any) {
	GetLogger(DEFAULT).Log(1, TRACE, format, v...)
}

func Debug(format string, v ...any) {
	GetLogger(DEFAULT).Log(1, DEBUG, format, v...)
}

func Info(format string, v ...any) {
	GetLogger(DEFAULT).Log(1, INFO, format, v...)
}

func Warn(format string, v ...any) {
	GetLogger(DEFAULT).Log(1, WARN, format, v...)
}

func Error(format string, v ...any) {
	GetLogger(DEFAULT).Log(1, ERROR, format, v...)
}

func Critical(format string, v ...any) {
	GetLogger(DEFAULT).Log(1, CRITICAL, format, v...)
}

// Fatal records fatal log and exit process
func Fatal(format string, v ...any) {
	GetLogger(DEFAULT).Log(1, FATAL, format, v...)
	os.Exit(1)
}
