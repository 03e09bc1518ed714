// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package styled

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-FFFFFF/styled/internal/sgr"
)

func TestNamedColorCodes(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		fg    sgr.Code
		bg    sgr.Code
	}{
		{name: "black", color: Black, fg: 30, bg: 40},
		{name: "white", color: White, fg: 37, bg: 47},
		{name: "bright black", color: BrightBlack, fg: 90, bg: 100},
		{name: "bright red", color: BrightRed, fg: 91, bg: 101},
		{name: "bright white", color: BrightWhite, fg: 97, bg: 107},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []sgr.Code{tt.fg}, tt.color.codes(false))
			assert.Equal(t, []sgr.Code{tt.bg}, tt.color.codes(true))
		})
	}
}

func TestHexDecomposition(t *testing.T) {
	tests := []struct {
		name string
		hex  uint32
		rgb  Color
	}{
		{name: "distinct channels", hex: 0x10_20_30, rgb: RGB(0x10, 0x20, 0x30)},
		{name: "white", hex: 0xffffff, rgb: RGB(255, 255, 255)},
		{name: "black", hex: 0, rgb: RGB(0, 0, 0)},
		{name: "high byte ignored", hex: 0xff_f2f2f2, rgb: RGB(0xf2, 0xf2, 0xf2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rgb, Hex(tt.hex), "Hex must decompose to the equivalent RGB")
		})
	}
}

func TestExtendedColorCodes(t *testing.T) {
	assert.Equal(t, []sgr.Code{38, 2, 1, 2, 3}, RGB(1, 2, 3).codes(false))
	assert.Equal(t, []sgr.Code{48, 2, 1, 2, 3}, RGB(1, 2, 3).codes(true))
	assert.Equal(t, []sgr.Code{38, 5, 200}, Color256(200).codes(false))
	assert.Equal(t, []sgr.Code{48, 5, 0}, Color256(0).codes(true))
}
