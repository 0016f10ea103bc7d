// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// WriterMode is the mode for creating a new logger, it contains common options for all loggers
type WriterMode struct {
	Level    Level
	Prefix   string
	Colorize bool
	Flags    int
}

// LoggerImpl writes log lines to an io.Writer
type LoggerImpl struct {
	mu   sync.Mutex
	out  io.Writer
	mode WriterMode

	now func() time.Time
}

var _ Logger = (*LoggerImpl)(nil)

// NewLoggerWithWriter creates a logger writing to out
func NewLoggerWithWriter(out io.Writer, mode WriterMode) *LoggerImpl {
	switch mode.Flags {
	case 0:
		mode.Flags = LstdFlags
	case -1:
		mode.Flags = 0
	}
	if mode.Level == UNDEFINED {
		mode.Level = INFO
	}
	return &LoggerImpl{out: out, mode: mode, now: time.Now}
}

// SetLevel changes the level of the logger
func (l *LoggerImpl) SetLevel(level Level) {
	l.mu.Lock()
	l.mode.Level = level
	l.mu.Unlock()
}

// ReplaceWriter replaces the output writer and the mode of the logger
func (l *LoggerImpl) ReplaceWriter(out io.Writer, mode WriterMode) {
	nl := NewLoggerWithWriter(out, mode)
	l.mu.Lock()
	l.out, l.mode = nl.out, nl.mode
	l.mu.Unlock()
}

// GetLevel returns the logging level for this logger
func (l *LoggerImpl) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode.Level
}

// LevelEnabled checks if the level is enabled
func (l *LoggerImpl) LevelEnabled(level Level) bool {
	return level >= l.GetLevel() && level != NONE
}

// Log prepares the log line and writes it out, skip is the number of stack frames to skip from the caller
func (l *LoggerImpl) Log(skip int, level Level, format string, v ...any) {
	if !l.LevelEnabled(level) {
		return
	}

	var caller string
	l.mu.Lock()
	flags := l.mode.Flags
	l.mu.Unlock()
	if flags&Lshortfile != 0 {
		if _, file, line, ok := runtime.Caller(skip + 1); ok {
			caller = filepath.Base(file) + ":" + fmt.Sprint(line)
		}
	}

	msg := format
	if len(v) > 0 {
		msg = fmt.Sprintf(format, v...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	buf := l.formatMsg(level, caller, msg)
	_, _ = l.out.Write(buf)
}

func (l *LoggerImpl) formatMsg(level Level, caller, msg string) []byte {
	buf := make([]byte, 0, 64+len(msg))
	mode := l.mode
	buf = append(buf, mode.Prefix...)

	t := l.now()
	if mode.Flags&(Ldate|Ltime|Lmicroseconds) != 0 {
		if mode.Colorize {
			buf = append(buf, fgCyanBytes...)
		}
		if mode.Flags&LUTC != 0 {
			t = t.UTC()
		}
		if mode.Flags&Ldate != 0 {
			year, month, day := t.Date()
			itoa(&buf, year, 4)
			buf = append(buf, '/')
			itoa(&buf, int(month), 2)
			buf = append(buf, '/')
			itoa(&buf, day, 2)
			buf = append(buf, ' ')
		}
		if mode.Flags&(Ltime|Lmicroseconds) != 0 {
			hour, minute, sec := t.Clock()
			itoa(&buf, hour, 2)
			buf = append(buf, ':')
			itoa(&buf, minute, 2)
			buf = append(buf, ':')
			itoa(&buf, sec, 2)
			if mode.Flags&Lmicroseconds != 0 {
				buf = append(buf, '.')
				itoa(&buf, t.Nanosecond()/1e3, 6)
			}
			buf = append(buf, ' ')
		}
		if mode.Colorize {
			buf = append(buf, resetBytes...)
		}
	}

	if caller != "" {
		buf = append(buf, caller...)
		buf = append(buf, ' ')
	}

	if mode.Flags&(Llevel|Llevelinitial) != 0 {
		levelName := strings.ToUpper(level.String())
		if mode.Colorize {
			buf = append(buf, ColorBytes(level.ColorAttributes()...)...)
		}
		buf = append(buf, '[')
		if mode.Flags&Llevel != 0 {
			buf = append(buf, levelName...)
		} else {
			buf = append(buf, levelName[0])
		}
		buf = append(buf, ']')
		if mode.Colorize {
			buf = append(buf, resetBytes...)
		}
		buf = append(buf, ' ')
	}

	buf = append(buf, msg...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		buf = append(buf, '\n')
	}
	return buf
}

// Copy of cheap integer to fixed-width decimal to ascii from logger.
func itoa(buf *[]byte, i, wid int) {
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	// i < 10
	b[bp] = byte('0' + i)
	*buf = append(*buf, b[bp:]...)
}

// Trace logs a message with trace level
func (l *LoggerImpl) Trace(format string, v ...any) {
	l.Log(1, TRACE, format, v...)
}

// Debug logs a message with debug level
func (l *LoggerImpl) Debug(format string, v ...any) {
	l.Log(1, DEBUG, format, v...)
}

// Info logs a message with info level
func (l *LoggerImpl) Info(format string, v ...any) {
	l.Log(1, INFO, format, v...)
}

// Warn logs a message with warning level
func (l *LoggerImpl) Warn(format string, v ...any) {
	l.Log(1, WARN, format, v...)
}

// Error logs a message with error level
func (l *LoggerImpl) Error(format string, v ...any) {
	l.Log(1, ERROR, format, v...)
}

// Critical logs a message with critical level
func (l *LoggerImpl) Critical(format string, v ...any) {
	l.Log(1, CRITICAL, format, v...)
}
