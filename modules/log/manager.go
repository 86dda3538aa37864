// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

const DEFAULT = "default"

// CanColorStdout reports if we can color the Stdout
var CanColorStdout = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

var (
	loggersMu sync.RWMutex
	loggers   = map[string]*LoggerImpl{}
)

func init() {
	SetConsoleLogger(DEFAULT, os.Stdout, WriterMode{Level: INFO, Colorize: CanColorStdout})
}

// SetConsoleLogger (re)creates the named logger writing to out
func SetConsoleLogger(name string, out io.Writer, mode WriterMode) *LoggerImpl {
	l := NewLogger(name, out, mode)
	loggersMu.Lock()
	loggers[name] = l
	loggersMu.Unlock()
	return l
}

// GetLogger returns the named logger, falling back to the default one
func GetLogger(name string) Logger {
	loggersMu.RLock()
	defer loggersMu.RUnlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	return loggers[DEFAULT]
}

func defaultLogger() *LoggerImpl {
	loggersMu.RLock()
	defer loggersMu.RUnlock()
	return loggers[DEFAULT]
}

// GetLevel returns the level of the default logger
func GetLevel() Level {
	return defaultLogger().GetLevel()
}

// IsTrace reports if the default logger writes trace messages
func IsTrace() bool {
	return defaultLogger().IsTrace()
}

// Log writes through the default logger, skip counts frames above the caller
func Log(skip int, level Level, format string, v ...any) {
	defaultLogger().Log(skip+1, level, format, v...)
}

func Trace(format string, v ...any) {
	Log(1, TRACE, format, v...)
}

func Debug(format string, v ...any) {
	Log(1, DEBUG, format, v...)
}

func Info(format string, v ...any) {
	Log(1, INFO, format, v...)
}

func Warn(format string, v ...any) {
	Log(1, WARN, format, v...)
}

func Error(format string, v ...any) {
	Log(1, ERROR, format, v...)
}

// Fatal records fatal log and exit process
func Fatal(format string, v ...any) {
	Log(1, FATAL, format, v...)
	os.Exit(1)
}
