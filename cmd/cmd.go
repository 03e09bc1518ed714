// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/matt-FFFFFF/styled/cmd/palette"
	"github.com/matt-FFFFFF/styled/cmd/render"
	"github.com/matt-FFFFFF/styled/cmd/repl"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		palette.PaletteCmd,
		render.RenderCmd,
		repl.ReplCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "styled",
	Description: `Styled is a demonstration client for the styled library, which builds
ANSI escape-coded strings from chained color and font attributes. It can print
the color palette and font styles the library supports, render YAML stylesheet
documents, and preview attribute combinations interactively.`,
	Usage:     "styled render mysheet.yaml",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
