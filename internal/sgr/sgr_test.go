// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name  string
		codes []Code
		want  string
	}{
		{
			name:  "no codes",
			codes: nil,
			want:  "",
		},
		{
			name:  "single code",
			codes: []Code{Bold},
			want:  "\033[1m",
		},
		{
			name:  "multiple codes are semicolon separated",
			codes: []Code{Bold, Underline, FgRed},
			want:  "\033[1;4;31m",
		},
		{
			name:  "extended foreground",
			codes: []Code{FgExtended, ByRGB, 242, 242, 242},
			want:  "\033[38;2;242;242;242m",
		},
		{
			name:  "extended background palette",
			codes: []Code{BgExtended, ByPalette, 118},
			want:  "\033[48;5;118m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sequence(tt.codes...))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "\033[1mx\033[0m", Wrap("x", Bold))
	assert.Equal(t, "\033[31;100mx\033[0m", Wrap("x", FgRed, BgBrightBlack))
}

func TestWrapNoCodes(t *testing.T) {
	assert.Equal(t, "plain", Wrap("plain"))
}

func TestBgOffset(t *testing.T) {
	assert.Equal(t, BgRed, FgRed+BgOffset)
	assert.Equal(t, BgBrightWhite, FgBrightWhite+BgOffset)
}
