// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger("test", buf, WriterMode{Level: WARN, Flags: Llevel})

	logger.Info("not written")
	logger.Warn("written %d", 1)
	logger.Error("also written")

	assert.Equal(t, "[WARN] written 1\n[ERROR] also written\n", buf.String())
	assert.False(t, logger.IsTrace())
	assert.True(t, logger.LevelEnabled(ERROR))
}

func TestLoggerMultiline(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger("test", buf, WriterMode{Level: TRACE, Flags: Llevelinitial})

	logger.Trace("first\nsecond\n")
	assert.Equal(t, "[T] first\n        second\n", buf.String())
}

func TestLoggerColorize(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger("test", buf, WriterMode{Level: INFO, Flags: Llevel, Colorize: true})
	logger.Info("status %v", ColoredStatus(404))
	assert.Contains(t, buf.String(), "\033[")
	assert.Equal(t, "[INFO] status 404\n", StripANSI(buf.String()))

	buf.Reset()
	logger = NewLogger("test", buf, WriterMode{Level: INFO, Flags: Llevel})
	logger.Info("status %v", ColoredStatus(404))
	assert.Equal(t, "[INFO] status 404\n", buf.String())
}

func TestLoggerShortFile(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger("test", buf, WriterMode{Level: INFO, Flags: Lshortfile | Lshortfuncname})
	logger.Info("hello")
	assert.True(t, strings.HasPrefix(buf.String(), "logger_test.go:"), buf.String())
	assert.Contains(t, buf.String(), "TestLoggerShortFile hello")
}

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, WARN, LevelFromString("warning"))
	assert.Equal(t, TRACE, LevelFromString(" Trace "))
	assert.Equal(t, INFO, LevelFromString("no-such-level"))

	var l Level
	assert.NoError(t, l.UnmarshalJSON([]byte(`"error"`)))
	assert.Equal(t, ERROR, l)
	bs, err := DEBUG.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"debug"`, string(bs))
}

func TestFlagsFromString(t *testing.T) {
	assert.Equal(t, Ldate|Ltime, FlagsFromString("date, time"))
	assert.Equal(t, LstdFlags, FlagsFromString(""))
	assert.Equal(t, Llevel, FlagsFromString("level,bogus"))
}

func TestColoredTime(t *testing.T) {
	v := ColoredTime(1500 * 1000)
	assert.Equal(t, "1.5ms", StripANSI(fmt.Sprintf("%v", v)))
}
