// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package styled

import (
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/styled/internal/sgr"
)

// Text is a builder that accumulates color and style attributes
// against a fixed string. The zero attributes render the string
// unchanged. Every mutator returns the receiver so calls chain.
type Text struct {
	value  string
	fg     Color
	bg     Color
	styles Style
}

// New returns a Text for the given string with no attributes set.
func New(s string) *Text {
	return &Text{value: s}
}

// Foreground sets the text color, replacing any previous foreground.
func (t *Text) Foreground(c Color) *Text {
	t.fg = c
	return t
}

// Background sets the background color, replacing any previous
// background.
func (t *Text) Background(c Color) *Text {
	t.bg = c
	return t
}

// Style adds the given font attributes. Flags may be OR-ed together;
// re-adding an attribute is a no-op.
func (t *Text) Style(s Style) *Text {
	t.styles |= s
	return t
}

// Render returns the string with all accumulated attributes applied
// as a single escape sequence, terminated by a full reset. With no
// attributes set it returns the original string as-is. Render does
// not mutate the Text and always produces the same output for the
// same state.
func (t *Text) Render() string {
	return sgr.Wrap(t.value, t.codes()...)
}

// String implements fmt.Stringer and is equivalent to Render.
func (t *Text) String() string {
	return t.Render()
}

// codes collects the SGR parameters in canonical order: styles in
// declaration order, then foreground, then background.
func (t *Text) codes() []sgr.Code {
	codes := t.styles.codes()

	if t.fg != nil {
		codes = append(codes, t.fg.codes(false)...)
	}

	if t.bg != nil {
		codes = append(codes, t.bg.codes(true)...)
	}

	return codes
}

// Fprint renders the text to w.
func (t *Text) Fprint(w io.Writer) (int, error) {
	return fmt.Fprint(w, t.Render())
}

// Fprintln renders the text to w with a trailing newline.
func (t *Text) Fprintln(w io.Writer) (int, error) {
	return fmt.Fprintln(w, t.Render())
}

// Print renders the text to stdout.
func (t *Text) Print() (int, error) {
	return t.Fprint(os.Stdout)
}

// Println renders the text to stdout with a trailing newline.
func (t *Text) Println() (int, error) {
	return t.Fprintln(os.Stdout)
}
