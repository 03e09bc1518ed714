// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package palette implements the command that prints the colors and
// font styles the styled library supports.
package palette

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/matt-FFFFFF/styled"
)

// ErrWriteOutput is returned when the palette cannot be written to stdout.
var ErrWriteOutput = errors.New("failed to write palette to stdout")

// PaletteCmd is the command that prints the named colors, font styles
// and extended color forms.
var PaletteCmd = &cli.Command{
	Name:        "palette",
	Description: "Print the named colors, font styles and extended color forms.",
	Action: func(_ context.Context, cmd *cli.Command) error {
		sb := strings.Builder{}
		renderPalette(&sb)

		if _, err := io.WriteString(cmd.Root().Writer, sb.String()); err != nil {
			return errors.Join(ErrWriteOutput, err)
		}

		return nil
	},
}

var namedColors = []struct {
	name  string
	color styled.Color
}{
	{"black", styled.Black},
	{"red", styled.Red},
	{"green", styled.Green},
	{"yellow", styled.Yellow},
	{"blue", styled.Blue},
	{"magenta", styled.Magenta},
	{"cyan", styled.Cyan},
	{"white", styled.White},
	{"bright-black", styled.BrightBlack},
	{"bright-red", styled.BrightRed},
	{"bright-green", styled.BrightGreen},
	{"bright-yellow", styled.BrightYellow},
	{"bright-blue", styled.BrightBlue},
	{"bright-magenta", styled.BrightMagenta},
	{"bright-cyan", styled.BrightCyan},
	{"bright-white", styled.BrightWhite},
}

var fontStyles = []struct {
	name  string
	style styled.Style
}{
	{"bold", styled.Bold},
	{"dim", styled.Dim},
	{"italic", styled.Italic},
	{"underline", styled.Underline},
	{"blink", styled.Blink},
	{"reverse", styled.Reverse},
	{"hidden", styled.Hidden},
	{"strikethrough", styled.Strikethrough},
}

const paletteColumns = 16

func renderPalette(sb *strings.Builder) {
	sb.WriteString("Named colors:\n")

	for _, nc := range namedColors {
		fmt.Fprintf(sb, "  %-16s %s %s\n",
			nc.name,
			styled.New("foreground").Foreground(nc.color).Render(),
			styled.New(" background ").Background(nc.color).Render(),
		)
	}

	sb.WriteString("\nFont styles:\n")

	for _, fs := range fontStyles {
		fmt.Fprintf(sb, "  %-16s %s\n",
			fs.name,
			styled.New("sample text").Style(fs.style).Render(),
		)
	}

	sb.WriteString("\n256-color palette:\n")

	for i := range 256 {
		if i%paletteColumns == 0 {
			sb.WriteString("  ")
		}

		sb.WriteString(styled.New(fmt.Sprintf("%4d", i)).Foreground(styled.Color256(uint8(i))).Render())

		if i%paletteColumns == paletteColumns-1 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n24-bit gray ramp:\n  ")

	for v := 0; v < 256; v += 8 {
		c := uint8(v)
		sb.WriteString(styled.New(" ").Background(styled.RGB(c, c, c)).Render())
	}

	sb.WriteString("\n")
}
