// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package repl implements an interactive preview of attribute
// combinations.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"

	"github.com/matt-FFFFFF/styled"
	"github.com/matt-FFFFFF/styled/internal/stylesheet"
)

// ReplCmd is the command that previews attribute combinations
// interactively.
var ReplCmd = &cli.Command{
	Name:        "repl",
	Description: "Preview color and style combinations interactively.",
	Action: func(_ context.Context, cmd *cli.Command) error {
		runPreview(cmd.Root().Writer)
		return nil
	},
}

const helpText = `Commands:
  fg <color>     set the foreground (a name, #RRGGBB or a 0-255 index)
  bg <color>     set the background
  style <name>   add a font style (bold, dim, italic, underline, ...)
  clear          drop all attributes
  quit           leave the preview
Any other input is rendered with the current attributes.`

// preview holds the attributes applied to entered text.
type preview struct {
	fg     styled.Color
	bg     styled.Color
	styles styled.Style
}

func (p *preview) apply(text string) *styled.Text {
	out := styled.New(text)

	if p.fg != nil {
		out.Foreground(p.fg)
	}

	if p.bg != nil {
		out.Background(p.bg)
	}

	return out.Style(p.styles)
}

// dispatch handles a single line of input. It reports whether the
// preview should keep running.
func (p *preview) dispatch(w io.Writer, input string) bool {
	cmd, arg, _ := strings.Cut(input, " ")

	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		fmt.Fprintln(w, helpText)
	case "fg":
		color, err := stylesheet.ParseColor(arg)
		if err != nil {
			fmt.Fprintf(w, "%s\n", err)
			break
		}

		p.fg = color
	case "bg":
		color, err := stylesheet.ParseColor(arg)
		if err != nil {
			fmt.Fprintf(w, "%s\n", err)
			break
		}

		p.bg = color
	case "style":
		style, err := stylesheet.ParseStyle(arg)
		if err != nil {
			fmt.Fprintf(w, "%s\n", err)
			break
		}

		p.styles |= style
	case "clear":
		*p = preview{}
	default:
		fmt.Fprintln(w, p.apply(input).Render())
	}

	return true
}

func runPreview(w io.Writer) {
	line := liner.NewLiner()
	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)
	fmt.Fprintln(w, "Entering preview mode, type `help` for commands, `quit` or Ctrl+C to leave.")

	var p preview

	for {
		input, err := line.Prompt("styled> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(w, "Aborted")
			return
		}

		if err != nil {
			fmt.Fprintln(w, "Error reading line: ", err)
			return
		}

		line.AppendHistory(input)

		if !p.dispatch(w, input) {
			return
		}
	}
}
