// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render implements the command that renders a stylesheet
// document to stdout.
package render

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/matt-FFFFFF/styled/internal/stylesheet"
)

const fileArg = "file"

// RenderCmd is the command that renders the lines of a YAML stylesheet
// document with their named styles applied.
var RenderCmd = &cli.Command{
	Name:        "render",
	Description: "Render a YAML stylesheet document.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: fileArg,
		},
	},
	Action: func(_ context.Context, cmd *cli.Command) error {
		sheet, err := stylesheet.Load(cmd.StringArg(fileArg))
		if err != nil {
			return err
		}

		return sheet.Write(cmd.Root().Writer)
	},
}
