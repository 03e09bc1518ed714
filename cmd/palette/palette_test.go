// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package palette

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPalette(t *testing.T) {
	sb := strings.Builder{}
	renderPalette(&sb)

	out := sb.String()

	assert.Contains(t, out, "\033[31mforeground\033[0m", "red foreground sample")
	assert.Contains(t, out, "\033[107m background \033[0m", "bright-white background sample")
	assert.Contains(t, out, "\033[9msample text\033[0m", "strikethrough style sample")
	assert.Contains(t, out, "\033[38;5;255m", "last palette entry")
	assert.Contains(t, out, "\033[48;2;248;248;248m", "last gray ramp entry")

	for _, nc := range namedColors {
		assert.Contains(t, out, nc.name)
	}
}
