// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const escape = "\033"

// ColorAttribute defines a single SGR Code
type ColorAttribute int

// Base ColorAttributes
const (
	Reset ColorAttribute = iota
	Bold
	Faint
	Italic
	Underline
)

// Foreground text colors
const (
	FgBlack ColorAttribute = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Background text colors
const (
	BgBlack ColorAttribute = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
)

var (
	resetBytes   = ColorBytes(Reset)
	fgBoldBytes  = ColorBytes(Bold)
	fgCyanBytes  = ColorBytes(FgCyan)
	fgGreenBytes = ColorBytes(FgGreen)

	ansiEscape = regexp.MustCompile("\033\\[[0-9;]*m")
)

// ColorString converts a list of ColorAttributes to a color string
func ColorString(attrs ...ColorAttribute) string {
	return string(ColorBytes(attrs...))
}

// ColorBytes converts a list of ColorAttributes to a byte array
func ColorBytes(attrs ...ColorAttribute) []byte {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		parts = append(parts, strconv.Itoa(int(attr)))
	}
	return []byte(escape + "[" + strings.Join(parts, ";") + "m")
}

// StripANSI removes colour escapes, used by writers that do not colorize
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// ColoredValue will Color the provided value
type ColoredValue struct {
	colorBytes *[]byte
	Value      any
}

// NewColoredValue is a helper function to create a ColoredValue from a Value
// If no color is provided it defaults to Bold
func NewColoredValue(value any, color ...ColorAttribute) *ColoredValue {
	if val, ok := value.(*ColoredValue); ok {
		return val
	}
	if len(color) > 0 {
		bytes := ColorBytes(color...)
		return &ColoredValue{colorBytes: &bytes, Value: value}
	}
	return &ColoredValue{colorBytes: &fgBoldBytes, Value: value}
}

// NewColoredValueBytes creates a value from the provided value with color bytes
func NewColoredValueBytes(value any, colorBytes *[]byte) *ColoredValue {
	if val, ok := value.(*ColoredValue); ok {
		return val
	}
	return &ColoredValue{colorBytes: colorBytes, Value: value}
}

// Format will format the provided value, any escapes inside the value are removed
func (cv *ColoredValue) Format(s fmt.State, c rune) {
	_, _ = s.Write(*cv.colorBytes)
	_, _ = fmt.Fprint(s, StripANSI(fmt.Sprintf(fmtString(s, c), cv.Value)))
	_, _ = s.Write(resetBytes)
}

func fmtString(s fmt.State, c rune) string {
	var width, precision string
	base := make([]byte, 0, 8)
	base = append(base, '%')
	for _, c := range []byte(" +-#0") {
		if s.Flag(int(c)) {
			base = append(base, c)
		}
	}
	if w, ok := s.Width(); ok {
		width = strconv.Itoa(w)
	}
	if p, ok := s.Precision(); ok {
		precision = "." + strconv.Itoa(p)
	}
	return fmt.Sprintf("%s%s%s%c", base, width, precision, c)
}
