// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package stylesheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/matt-FFFFFF/styled"
)

var (
	// ErrUnknownColor is returned when a color is neither a known name,
	// a hex value nor a palette index.
	ErrUnknownColor = errors.New("unknown color")
	// ErrInvalidHexColor is returned when a #-prefixed color is not six
	// hex digits.
	ErrInvalidHexColor = errors.New("invalid hex color, want #RRGGBB")
	// ErrInvalidPaletteIndex is returned when a numeric color is outside 0-255.
	ErrInvalidPaletteIndex = errors.New("invalid palette index, want 0-255")
	// ErrUnknownStyle is returned when a style name is not recognised.
	ErrUnknownStyle = errors.New("unknown style")
)

var namedColors = map[string]styled.Color{
	"black":          styled.Black,
	"red":            styled.Red,
	"green":          styled.Green,
	"yellow":         styled.Yellow,
	"blue":           styled.Blue,
	"magenta":        styled.Magenta,
	"cyan":           styled.Cyan,
	"white":          styled.White,
	"bright-black":   styled.BrightBlack,
	"bright-red":     styled.BrightRed,
	"bright-green":   styled.BrightGreen,
	"bright-yellow":  styled.BrightYellow,
	"bright-blue":    styled.BrightBlue,
	"bright-magenta": styled.BrightMagenta,
	"bright-cyan":    styled.BrightCyan,
	"bright-white":   styled.BrightWhite,
}

var styleNames = map[string]styled.Style{
	"bold":          styled.Bold,
	"dim":           styled.Dim,
	"italic":        styled.Italic,
	"underline":     styled.Underline,
	"blink":         styled.Blink,
	"reverse":       styled.Reverse,
	"hidden":        styled.Hidden,
	"strikethrough": styled.Strikethrough,
}

// ParseColor resolves a color from its stylesheet form: an ANSI color
// name, a "#RRGGBB" hex value or a decimal 256-palette index.
func ParseColor(s string) (styled.Color, error) {
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	if rest, ok := strings.CutPrefix(s, "#"); ok {
		v, err := strconv.ParseUint(rest, 16, 32)
		if err != nil || len(rest) != 6 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
		}

		return styled.Hex(uint32(v)), nil
	}

	if s != "" && s[0] >= '0' && s[0] <= '9' {
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPaletteIndex, s)
		}

		return styled.Color256(uint8(n)), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// ParseStyle resolves a single font attribute from its name.
func ParseStyle(s string) (styled.Style, error) {
	style, ok := styleNames[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}

	return style, nil
}
