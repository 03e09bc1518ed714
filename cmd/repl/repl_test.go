// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchRendersWithAccumulatedAttributes(t *testing.T) {
	var (
		buf bytes.Buffer
		p   preview
	)

	for _, input := range []string{"fg #f2f2f2", "bg bright-red", "style bold", "style underline"} {
		assert.True(t, p.dispatch(&buf, input))
	}

	assert.Empty(t, buf.String(), "attribute commands should not produce output")

	p.dispatch(&buf, "Hello, World!")
	assert.Equal(t, "\033[1;4;38;2;242;242;242;101mHello, World!\033[0m\n", buf.String())
}

func TestDispatchClear(t *testing.T) {
	var (
		buf bytes.Buffer
		p   preview
	)

	p.dispatch(&buf, "fg red")
	p.dispatch(&buf, "clear")
	p.dispatch(&buf, "plain")

	assert.Equal(t, "plain\n", buf.String())
}

func TestDispatchQuit(t *testing.T) {
	var p preview

	assert.False(t, p.dispatch(&bytes.Buffer{}, "quit"))
	assert.False(t, p.dispatch(&bytes.Buffer{}, "exit"))
}

func TestDispatchBadInputReportsError(t *testing.T) {
	var (
		buf bytes.Buffer
		p   preview
	)

	p.dispatch(&buf, "fg mauve")
	assert.Contains(t, buf.String(), "unknown color")

	buf.Reset()
	p.dispatch(&buf, "style shiny")
	assert.Contains(t, buf.String(), "unknown style")
}

func TestDispatchHelp(t *testing.T) {
	var (
		buf bytes.Buffer
		p   preview
	)

	p.dispatch(&buf, "help")
	assert.Contains(t, buf.String(), "fg <color>")
}
