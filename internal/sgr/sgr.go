// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sgr

import (
	"strconv"
	"strings"
)

const (
	sbPadding = 16 // padding for the strings.Builder

	// Reset is the sequence that restores default rendering.
	Reset  = "\033[0m"
	prefix = "\033["
	suffix = "m"
)

// Code represents a single numeric SGR parameter.
type Code int

// Font attribute codes. ECMA-48 assigns 6 to rapid blink, which almost
// no emulator implements, hence the gap.
const (
	CodeReset Code = iota
	Bold
	Dim
	Italic
	Underline
	Blink
	_
	Reverse
	Hidden
	Strikethrough
)

// Foreground colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite

	// FgExtended introduces a 256-palette or 24-bit foreground color.
	FgExtended
)

// Bright foreground colors.
const (
	FgBrightBlack Code = iota + 90
	FgBrightRed
	FgBrightGreen
	FgBrightYellow
	FgBrightBlue
	FgBrightMagenta
	FgBrightCyan
	FgBrightWhite
)

// Background colors.
const (
	BgBlack Code = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite

	// BgExtended introduces a 256-palette or 24-bit background color.
	BgExtended
)

// Bright background colors.
const (
	BgBrightBlack Code = iota + 100
	BgBrightRed
	BgBrightGreen
	BgBrightYellow
	BgBrightBlue
	BgBrightMagenta
	BgBrightCyan
	BgBrightWhite
)

// Sub-parameters selecting the extended color form that follows
// FgExtended or BgExtended.
const (
	ByRGB     Code = 2
	ByPalette Code = 5
)

// BgOffset converts a basic or bright foreground code into the
// corresponding background code.
const BgOffset Code = 10

// Sequence builds the escape sequence for the given parameters.
// With no parameters it returns the empty string rather than the
// degenerate `ESC[m`.
func Sequence(codes ...Code) string {
	if len(codes) == 0 {
		return ""
	}

	sb := strings.Builder{}
	sb.Grow(len(prefix) + len(suffix) + sbPadding)
	writeSequence(&sb, codes)

	return sb.String()
}

// Wrap surrounds s with the escape sequence for the given parameters
// and the reset sequence. With no parameters it returns s unchanged.
func Wrap(s string, codes ...Code) string {
	if len(codes) == 0 {
		return s
	}

	sb := strings.Builder{}
	sb.Grow(len(s) + len(prefix) + len(suffix) + len(Reset) + sbPadding)
	writeSequence(&sb, codes)
	sb.WriteString(s)
	sb.WriteString(Reset)

	return sb.String()
}

func writeSequence(sb *strings.Builder, codes []Code) {
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
}
