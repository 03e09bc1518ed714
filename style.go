// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package styled

import "github.com/matt-FFFFFF/styled/internal/sgr"

// Style is a set of font attributes. Values combine with the |
// operator and adding an attribute twice has no further effect.
// Attributes render in declaration order, whatever order they were
// added in.
type Style uint8

// Font attributes.
const (
	Bold Style = 1 << iota
	Dim
	Italic
	Underline
	Blink
	Reverse
	Hidden
	Strikethrough
)

// styleCodes maps each attribute to its SGR parameter, in canonical
// render order.
var styleCodes = [...]struct {
	flag Style
	code sgr.Code
}{
	{Bold, sgr.Bold},
	{Dim, sgr.Dim},
	{Italic, sgr.Italic},
	{Underline, sgr.Underline},
	{Blink, sgr.Blink},
	{Reverse, sgr.Reverse},
	{Hidden, sgr.Hidden},
	{Strikethrough, sgr.Strikethrough},
}

func (s Style) codes() []sgr.Code {
	if s == 0 {
		return nil
	}

	codes := make([]sgr.Code, 0, len(styleCodes))

	for _, sc := range styleCodes {
		if s&sc.flag != 0 {
			codes = append(codes, sc.code)
		}
	}

	return codes
}
