// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/matt-FFFFFF/styled/internal/stylesheet"
)

func TestRenderCmd(t *testing.T) {
	defer goleak.VerifyNone(t)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/sheet.yaml", []byte(`styles:
  ok:
    foreground: green
    styles: [bold]
lines:
  - style: ok
    text: all good
`), 0o644))

	stubs := gostub.Stub(&stylesheet.FsFactory, func() afero.Fs {
		return fs
	})
	defer stubs.Reset()

	var buf bytes.Buffer

	cmd := RenderCmd
	cmd.Writer = &buf

	require.NoError(t, cmd.Run(context.Background(), []string{"render", "/sheet.yaml"}))

	assert.Equal(t, "\033[1;32mall good\033[0m\n", buf.String())
}

func TestRenderCmdMissingFile(t *testing.T) {
	stubs := gostub.Stub(&stylesheet.FsFactory, func() afero.Fs {
		return afero.NewMemMapFs()
	})
	defer stubs.Reset()

	cmd := RenderCmd
	cmd.Writer = &bytes.Buffer{}

	err := cmd.Run(context.Background(), []string{"render", "/missing.yaml"})
	require.ErrorIs(t, err, stylesheet.ErrReadFile)
}
