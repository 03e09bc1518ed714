// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package styled

// Named-color and style shorthands. Each is sugar for the generic
// Foreground, Background and Style setters.

// FgBlack sets the text color to black.
func (t *Text) FgBlack() *Text { return t.Foreground(Black) }

// FgRed sets the text color to red.
func (t *Text) FgRed() *Text { return t.Foreground(Red) }

// FgGreen sets the text color to green.
func (t *Text) FgGreen() *Text { return t.Foreground(Green) }

// FgYellow sets the text color to yellow.
func (t *Text) FgYellow() *Text { return t.Foreground(Yellow) }

// FgBlue sets the text color to blue.
func (t *Text) FgBlue() *Text { return t.Foreground(Blue) }

// FgMagenta sets the text color to magenta.
func (t *Text) FgMagenta() *Text { return t.Foreground(Magenta) }

// FgCyan sets the text color to cyan.
func (t *Text) FgCyan() *Text { return t.Foreground(Cyan) }

// FgWhite sets the text color to white.
func (t *Text) FgWhite() *Text { return t.Foreground(White) }

// FgBrightBlack sets the text color to bright black.
func (t *Text) FgBrightBlack() *Text { return t.Foreground(BrightBlack) }

// FgBrightRed sets the text color to bright red.
func (t *Text) FgBrightRed() *Text { return t.Foreground(BrightRed) }

// FgBrightGreen sets the text color to bright green.
func (t *Text) FgBrightGreen() *Text { return t.Foreground(BrightGreen) }

// FgBrightYellow sets the text color to bright yellow.
func (t *Text) FgBrightYellow() *Text { return t.Foreground(BrightYellow) }

// FgBrightBlue sets the text color to bright blue.
func (t *Text) FgBrightBlue() *Text { return t.Foreground(BrightBlue) }

// FgBrightMagenta sets the text color to bright magenta.
func (t *Text) FgBrightMagenta() *Text { return t.Foreground(BrightMagenta) }

// FgBrightCyan sets the text color to bright cyan.
func (t *Text) FgBrightCyan() *Text { return t.Foreground(BrightCyan) }

// FgBrightWhite sets the text color to bright white.
func (t *Text) FgBrightWhite() *Text { return t.Foreground(BrightWhite) }

// BgBlack sets the background color to black.
func (t *Text) BgBlack() *Text { return t.Background(Black) }

// BgRed sets the background color to red.
func (t *Text) BgRed() *Text { return t.Background(Red) }

// BgGreen sets the background color to green.
func (t *Text) BgGreen() *Text { return t.Background(Green) }

// BgYellow sets the background color to yellow.
func (t *Text) BgYellow() *Text { return t.Background(Yellow) }

// BgBlue sets the background color to blue.
func (t *Text) BgBlue() *Text { return t.Background(Blue) }

// BgMagenta sets the background color to magenta.
func (t *Text) BgMagenta() *Text { return t.Background(Magenta) }

// BgCyan sets the background color to cyan.
func (t *Text) BgCyan() *Text { return t.Background(Cyan) }

// BgWhite sets the background color to white.
func (t *Text) BgWhite() *Text { return t.Background(White) }

// BgBrightBlack sets the background color to bright black.
func (t *Text) BgBrightBlack() *Text { return t.Background(BrightBlack) }

// BgBrightRed sets the background color to bright red.
func (t *Text) BgBrightRed() *Text { return t.Background(BrightRed) }

// BgBrightGreen sets the background color to bright green.
func (t *Text) BgBrightGreen() *Text { return t.Background(BrightGreen) }

// BgBrightYellow sets the background color to bright yellow.
func (t *Text) BgBrightYellow() *Text { return t.Background(BrightYellow) }

// BgBrightBlue sets the background color to bright blue.
func (t *Text) BgBrightBlue() *Text { return t.Background(BrightBlue) }

// BgBrightMagenta sets the background color to bright magenta.
func (t *Text) BgBrightMagenta() *Text { return t.Background(BrightMagenta) }

// BgBrightCyan sets the background color to bright cyan.
func (t *Text) BgBrightCyan() *Text { return t.Background(BrightCyan) }

// BgBrightWhite sets the background color to bright white.
func (t *Text) BgBrightWhite() *Text { return t.Background(BrightWhite) }

// Bold adds the bold attribute.
func (t *Text) Bold() *Text { return t.Style(Bold) }

// Dim adds the dim attribute.
func (t *Text) Dim() *Text { return t.Style(Dim) }

// Italic adds the italic attribute.
func (t *Text) Italic() *Text { return t.Style(Italic) }

// Underline adds the underline attribute.
func (t *Text) Underline() *Text { return t.Style(Underline) }

// Blink adds the blink attribute.
func (t *Text) Blink() *Text { return t.Style(Blink) }

// Reverse adds the reverse-video attribute.
func (t *Text) Reverse() *Text { return t.Style(Reverse) }

// Hidden adds the hidden attribute.
func (t *Text) Hidden() *Text { return t.Style(Hidden) }

// Strikethrough adds the strikethrough attribute.
func (t *Text) Strikethrough() *Text { return t.Style(Strikethrough) }
