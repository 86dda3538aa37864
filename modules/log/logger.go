// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package log provides logging capabilities for the selector.
//
// * Logger: a Logger provides leveled logging functions and writes formatted events to its output
//
// * WriterMode: the common options for a logger, eg: log level, flags, prefix, colorize.
//
// Named loggers are kept in a small registry, "default" is used by the package level functions
// and "router" by the request logger.
package log

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"
)

// BaseLogger provides the basic logging functions
type BaseLogger interface {
	Log(skip int, level Level, format string, v ...any)
	GetLevel() Level
}

// LevelLogger provides level-related logging functions
type LevelLogger interface {
	LevelEnabled(level Level) bool
	IsTrace() bool

	Trace(format string, v ...any)
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

type Logger interface {
	BaseLogger
	LevelLogger
}

// WriterMode contains the common options of a logger
type WriterMode struct {
	Level    Level
	Flags    int
	Prefix   string
	Colorize bool
}

// event is one formatted log line waiting to be written
type event struct {
	level    Level
	msg      string
	caller   string
	filename string
	line     int
	time     time.Time
}

// LoggerImpl writes log events to a single output
type LoggerImpl struct {
	name string

	mu   sync.Mutex
	out  io.Writer
	mode WriterMode
}

var _ Logger = (*LoggerImpl)(nil)

// NewLogger creates a logger writing to out
func NewLogger(name string, out io.Writer, mode WriterMode) *LoggerImpl {
	if mode.Flags == 0 {
		mode.Flags = LstdFlags
	}
	if mode.Level == UNDEFINED {
		mode.Level = INFO
	}
	return &LoggerImpl{name: name, out: out, mode: mode}
}

// GetName returns the logger name
func (l *LoggerImpl) GetName() string {
	return l.name
}

// GetLevel returns the logging level for this logger
func (l *LoggerImpl) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode.Level
}

// SetLevel changes the logging level
func (l *LoggerImpl) SetLevel(level Level) {
	l.mu.Lock()
	l.mode.Level = level
	l.mu.Unlock()
}

// LevelEnabled checks if the level is enabled
func (l *LoggerImpl) LevelEnabled(level Level) bool {
	return l.GetLevel() <= level
}

// IsTrace reports whether trace messages are written
func (l *LoggerImpl) IsTrace() bool {
	return l.LevelEnabled(TRACE)
}

// Log prepares the event and writes it, skip is the number of extra stack frames above the caller
func (l *LoggerImpl) Log(skip int, level Level, format string, v ...any) {
	if !l.LevelEnabled(level) {
		return
	}
	ev := &event{level: level, time: time.Now()}
	if pc, filename, line, ok := runtime.Caller(skip + 1); ok {
		ev.filename, ev.line = filename, line
		if fn := runtime.FuncForPC(pc); fn != nil {
			ev.caller = fn.Name()
		}
	}
	if len(v) == 0 {
		ev.msg = format
	} else {
		ev.msg = fmt.Sprintf(format, v...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	var buf []byte
	l.createMsg(&buf, ev)
	if !l.mode.Colorize {
		buf = []byte(StripANSI(string(buf)))
	}
	_, _ = l.out.Write(buf)
}

func (l *LoggerImpl) Trace(format string, v ...any) {
	l.Log(1, TRACE, format, v...)
}

func (l *LoggerImpl) Debug(format string, v ...any) {
	l.Log(1, DEBUG, format, v...)
}

func (l *LoggerImpl) Info(format string, v ...any) {
	l.Log(1, INFO, format, v...)
}

func (l *LoggerImpl) Warn(format string, v ...any) {
	l.Log(1, WARN, format, v...)
}

func (l *LoggerImpl) Error(format string, v ...any) {
	l.Log(1, ERROR, format, v...)
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

func (l *LoggerImpl) createMsg(buf *[]byte, ev *event) {
	flags := l.mode.Flags
	*buf = append(*buf, l.mode.Prefix...)
	t := ev.time
	if flags&(Ldate|Ltime|Lmicroseconds) != 0 {
		*buf = append(*buf, fgCyanBytes...)
		if flags&LUTC != 0 {
			t = t.UTC()
		}
		if flags&Ldate != 0 {
			year, month, day := t.Date()
			itoa(buf, year, 4)
			*buf = append(*buf, '/')
			itoa(buf, int(month), 2)
			*buf = append(*buf, '/')
			itoa(buf, day, 2)
			*buf = append(*buf, ' ')
		}
		if flags&(Ltime|Lmicroseconds) != 0 {
			hour, minute, sec := t.Clock()
			itoa(buf, hour, 2)
			*buf = append(*buf, ':')
			itoa(buf, minute, 2)
			*buf = append(*buf, ':')
			itoa(buf, sec, 2)
			if flags&Lmicroseconds != 0 {
				*buf = append(*buf, '.')
				itoa(buf, t.Nanosecond()/1e3, 6)
			}
			*buf = append(*buf, ' ')
		}
		*buf = append(*buf, resetBytes...)
	}
	if flags&(Lshortfile|Llongfile) != 0 && ev.filename != "" {
		*buf = append(*buf, fgGreenBytes...)
		file := ev.filename
		if flags&Lmedfile == Lmedfile {
			startIndex := len(file) - 20
			if startIndex > 0 {
				file = "..." + file[startIndex:]
			}
		} else if flags&Lshortfile != 0 {
			startIndex := strings.LastIndexByte(file, '/')
			if startIndex > 0 && startIndex < len(file) {
				file = file[startIndex+1:]
			}
		}
		*buf = append(*buf, file...)
		*buf = append(*buf, ':')
		itoa(buf, ev.line, -1)
		if flags&(Lfuncname|Lshortfuncname) != 0 {
			*buf = append(*buf, ':')
		} else {
			*buf = append(*buf, resetBytes...)
			*buf = append(*buf, ' ')
		}
	}
	if flags&(Lfuncname|Lshortfuncname) != 0 && ev.caller != "" {
		*buf = append(*buf, fgGreenBytes...)
		funcname := ev.caller
		if flags&Lshortfuncname != 0 {
			lastIndex := strings.LastIndexByte(funcname, '.')
			if lastIndex > 0 && len(funcname) > lastIndex+1 {
				funcname = funcname[lastIndex+1:]
			}
		}
		*buf = append(*buf, funcname...)
		*buf = append(*buf, resetBytes...)
		*buf = append(*buf, ' ')
	}
	if flags&(Llevel|Llevelinitial) != 0 {
		level := strings.ToUpper(ev.level.String())
		*buf = append(*buf, *ev.level.Color()...)
		*buf = append(*buf, '[')
		if flags&Llevelinitial != 0 {
			*buf = append(*buf, level[0])
		} else {
			*buf = append(*buf, level...)
		}
		*buf = append(*buf, ']')
		*buf = append(*buf, resetBytes...)
		*buf = append(*buf, ' ')
	}

	// prevent log spoofing: continuation lines are indented
	msg := strings.TrimSuffix(ev.msg, "\n")
	lines := bytes.Split([]byte(msg), []byte("\n"))
	*buf = append(*buf, lines[0]...)
	for _, line := range lines[1:] {
		*buf = append(*buf, "\n        "...)
		*buf = append(*buf, line...)
	}
	*buf = append(*buf, '\n')
}
