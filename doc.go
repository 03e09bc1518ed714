// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

/*
Package styled builds ANSI escape-coded strings for terminal display.

A [Text] accumulates a foreground color, a background color and any
number of font styles against a fixed piece of text, then renders the
whole combination as a single escape sequence followed by the text and
a full reset, so no styling leaks into later output:

	s := styled.New("Hello, World!").
		BgBrightRed().
		Foreground(styled.Hex(0xf2f2f2)).
		Bold().
		Underline().
		Render()

Colors come in four forms: the sixteen named constants ([Black]
through [BrightWhite]), 24-bit [RGB] and [Hex] values, and 256-palette
indices via [Color256]. Setting a color twice keeps the last value;
adding a style twice is a no-op.

Rendering is deterministic regardless of call order. Parameters are
emitted in a fixed canonical order: font styles in their declaration
order (Bold, Dim, Italic, Underline, Blink, Reverse, Hidden,
Strikethrough), then the foreground color, then the background color.
A Text with no attributes renders as its original string with no
escape sequence at all.

The package performs no terminal-capability detection and no I/O of
its own; it produces strings, and the small [Text.Print] family simply
writes them for convenience. A Text is not safe for concurrent
mutation; build and render it from a single goroutine.
*/
package styled
