// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"golang.org/x/term"

	"github.com/matt-FFFFFF/styled"
)

var (
	// ErrMarshalAttrs is returned when record attributes cannot be marshaled.
	ErrMarshalAttrs = errors.New("error when marshaling attributes")
	// ErrIoWrite is returned when the formatted record cannot be written.
	ErrIoWrite = errors.New("error when writing to output")
)

// TimeFormat is the format used for timestamps in log messages.
const TimeFormat = "[15:04:05.000]"

// PrettyHandler is a slog handler that formats records for the console,
// colorizing them with the styled package.
type PrettyHandler struct {
	inner   slog.Handler
	replace func([]string, slog.Attr) slog.Attr
	buf     *bytes.Buffer
	mu      *sync.Mutex
	json    *colorjson.Formatter
	writer  io.Writer
	colour  bool
}

// NewPrettyHandler creates a new PrettyHandler with the given options.
func NewPrettyHandler(handlerOptions *slog.HandlerOptions, options ...Option) *PrettyHandler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	jsonFormatter := colorjson.NewFormatter()
	jsonFormatter.Indent = 2

	buf := &bytes.Buffer{}
	handler := &PrettyHandler{
		buf: buf,
		inner: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		replace: handlerOptions.ReplaceAttr,
		mu:      &sync.Mutex{},
		json:    jsonFormatter,
	}

	for _, opt := range options {
		opt(handler)
	}

	return handler
}

// Enabled checks if the handler is enabled for the given level.
func (h *PrettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// WithAttrs creates a new handler with the given attributes.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.inner = h.inner.WithAttrs(attrs)

	return &clone
}

// WithGroup creates a new handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.inner = h.inner.WithGroup(name)

	return &clone
}

// Handle implements the slog.Handler interface for PrettyHandler.
func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	var level string

	levelAttr := slog.Attr{
		Key:   slog.LevelKey,
		Value: slog.AnyValue(r.Level),
	}
	if h.replace != nil {
		levelAttr = h.replace([]string{}, levelAttr)
	}

	if !levelAttr.Equal(slog.Attr{}) {
		level = h.decorateLevel(r.Level, levelAttr.Value.String()+":")
	}

	var timestamp string

	timeAttr := slog.Attr{
		Key:   slog.TimeKey,
		Value: slog.StringValue(r.Time.Format(TimeFormat)),
	}
	if h.replace != nil {
		timeAttr = h.replace([]string{}, timeAttr)
	}

	if !timeAttr.Equal(slog.Attr{}) {
		timestamp = h.decorate(timeAttr.Value.String(), styled.White, 0)
	}

	var msg string

	msgAttr := slog.Attr{
		Key:   slog.MessageKey,
		Value: slog.StringValue(r.Message),
	}
	if h.replace != nil {
		msgAttr = h.replace([]string{}, msgAttr)
	}

	if !msgAttr.Equal(slog.Attr{}) {
		msg = h.decorate(msgAttr.Value.String(), styled.BrightWhite, 0)
	}

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	var attrsAsBytes []byte

	if len(attrs) > 0 {
		h.json.DisabledColor = !h.colour

		attrsAsBytes, err = h.json.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttrs, err)
		}
	}

	out := strings.Builder{}

	for _, part := range []string{timestamp, level, msg} {
		if len(part) > 0 {
			out.WriteString(part)
			out.WriteString(" ")
		}
	}

	out.Write(attrsAsBytes)
	out.WriteString("\n")

	if _, err := io.WriteString(h.writer, out.String()); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

// computeAttrs renders the record through the inner JSON handler and
// decodes the result, yielding the record's attributes as a map.
func (h *PrettyHandler) computeAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.mu.Lock()
	defer func() {
		h.buf.Reset()
		h.mu.Unlock()
	}()

	if err := h.inner.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any

	if err := json.Unmarshal(h.buf.Bytes(), &attrs); err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}

	return attrs, nil
}

func (h *PrettyHandler) decorateLevel(level slog.Level, s string) string {
	switch {
	case level <= slog.LevelDebug:
		return h.decorate(s, styled.White, styled.Dim)
	case level <= slog.LevelInfo:
		return h.decorate(s, styled.Cyan, 0)
	case level < slog.LevelWarn:
		return h.decorate(s, styled.Blue, 0)
	case level < slog.LevelError:
		return h.decorate(s, styled.Yellow, 0)
	case level <= slog.LevelError+1:
		return h.decorate(s, styled.Red, 0)
	default:
		return h.decorate(s, styled.BrightMagenta, styled.Bold)
	}
}

func (h *PrettyHandler) decorate(s string, c styled.Color, st styled.Style) string {
	if !h.colour {
		return s
	}

	return styled.New(s).Foreground(c).Style(st).Render()
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr,
) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}

// Option implements a functional options pattern for PrettyHandler.
type Option func(h *PrettyHandler)

// WithDestinationWriter sets the destination writer for the PrettyHandler.
func WithDestinationWriter(writer io.Writer) Option {
	return func(h *PrettyHandler) {
		h.writer = writer
	}
}

// WithColour enables color output for the PrettyHandler.
func WithColour() Option {
	return func(h *PrettyHandler) {
		h.colour = true
	}
}

// WithAutoColour enables color output when stdout is a terminal.
func WithAutoColour() Option {
	return func(h *PrettyHandler) {
		h.colour = term.IsTerminal(int(os.Stdout.Fd()))
	}
}
