// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package stylesheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/matt-FFFFFF/styled"
)

var (
	// ErrReadFile is returned when the stylesheet file cannot be read.
	ErrReadFile = errors.New("failed to read stylesheet file")
	// ErrDecodeSheet is returned when the stylesheet cannot be decoded.
	ErrDecodeSheet = errors.New("failed to decode stylesheet")
	// ErrResolveStyles is returned when one or more style definitions are invalid.
	ErrResolveStyles = errors.New("failed to resolve styles")
	// ErrWriteOutput is returned when rendered lines cannot be written.
	ErrWriteOutput = errors.New("failed to write rendered output")
)

// Definition is the YAML form of a named style. Empty fields are
// simply unset.
type Definition struct {
	Foreground string   `yaml:"foreground"`
	Background string   `yaml:"background"`
	Styles     []string `yaml:"styles"`
}

// Line is one renderable entry of a stylesheet document.
type Line struct {
	Style string `yaml:"style"`
	Text  string `yaml:"text"`
}

// Theme maps style names to their resolved attributes.
type Theme map[string]attributes

type attributes struct {
	fg     styled.Color
	bg     styled.Color
	styles styled.Style
}

// Apply returns a builder for text with the named style's attributes.
// An unknown name yields an unstyled builder.
func (t Theme) Apply(name, text string) *styled.Text {
	out := styled.New(text)

	attrs, ok := t[name]
	if !ok {
		return out
	}

	if attrs.fg != nil {
		out.Foreground(attrs.fg)
	}

	if attrs.bg != nil {
		out.Background(attrs.bg)
	}

	return out.Style(attrs.styles)
}

// Sheet is a loaded stylesheet document: a resolved theme plus the
// lines it styles.
type Sheet struct {
	Theme Theme
	Lines []Line
}

type document struct {
	Styles map[string]Definition `yaml:"styles"`
	Lines  []Line                `yaml:"lines"`
}

// Load reads and resolves a stylesheet document from the filesystem
// returned by FsFactory.
func Load(path string) (*Sheet, error) {
	content, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrDecodeSheet, err)
	}

	theme, err := Resolve(doc.Styles)
	if err != nil {
		return nil, err
	}

	return &Sheet{Theme: theme, Lines: doc.Lines}, nil
}

// Resolve converts style definitions into a Theme. Every invalid
// definition is reported, not just the first.
func Resolve(defs map[string]Definition) (Theme, error) {
	var errs *multierror.Error

	theme := make(Theme, len(defs))

	for name, def := range defs {
		attrs, err := def.resolve()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("style %q: %w", name, err))
			continue
		}

		theme[name] = attrs
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, errors.Join(ErrResolveStyles, err)
	}

	return theme, nil
}

func (d Definition) resolve() (attributes, error) {
	var (
		attrs attributes
		errs  *multierror.Error
		err   error
	)

	if d.Foreground != "" {
		if attrs.fg, err = ParseColor(d.Foreground); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if d.Background != "" {
		if attrs.bg, err = ParseColor(d.Background); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	for _, name := range d.Styles {
		style, err := ParseStyle(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		attrs.styles |= style
	}

	return attrs, errs.ErrorOrNil()
}

// Write renders every line of the sheet to w.
func (s *Sheet) Write(w io.Writer) error {
	for _, line := range s.Lines {
		if _, err := s.Theme.Apply(line.Style, line.Text).Fprintln(w); err != nil {
			return errors.Join(ErrWriteOutput, err)
		}
	}

	return nil
}
