// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package styled

import "github.com/matt-FFFFFF/styled/internal/sgr"

// Color specifies a terminal color in one of the forms recognised by
// SGR escape sequences: a named color, a 24-bit value or a 256-palette
// index. Every Color value is renderable; there are no invalid colors.
type Color interface {
	// codes returns the SGR parameters selecting the color, for the
	// foreground or background code space.
	codes(background bool) []sgr.Code
}

// Named colors.
const (
	Black basicColor = basicColor(sgr.FgBlack) + iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Bright variants of the named colors.
const (
	BrightBlack basicColor = basicColor(sgr.FgBrightBlack) + iota
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// basicColor is a named color in the basic or bright SGR range. The
// value is the foreground code; the background code is offset from it.
type basicColor sgr.Code

func (c basicColor) codes(background bool) []sgr.Code {
	code := sgr.Code(c)
	if background {
		code += sgr.BgOffset
	}

	return []sgr.Code{code}
}

// RGB returns a 24-bit color with the given red, green and blue
// components.
func RGB(r, g, b uint8) Color {
	return rgbColor{r: r, g: g, b: b}
}

// Hex returns a 24-bit color from a 0xRRGGBB value. Bits above the low
// 24 are ignored.
func Hex(v uint32) Color {
	return rgbColor{
		r: uint8(v >> 16),
		g: uint8(v >> 8),
		b: uint8(v),
	}
}

type rgbColor struct {
	r, g, b uint8
}

func (c rgbColor) codes(background bool) []sgr.Code {
	return []sgr.Code{
		extended(background), sgr.ByRGB,
		sgr.Code(c.r), sgr.Code(c.g), sgr.Code(c.b),
	}
}

// Color256 returns a color from the 256-color palette.
func Color256(index uint8) Color {
	return paletteColor(index)
}

type paletteColor uint8

func (c paletteColor) codes(background bool) []sgr.Code {
	return []sgr.Code{extended(background), sgr.ByPalette, sgr.Code(c)}
}

func extended(background bool) sgr.Code {
	if background {
		return sgr.BgExtended
	}

	return sgr.FgExtended
}
