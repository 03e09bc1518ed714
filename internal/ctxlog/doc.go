// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger built on the slog package.
//
// The default is a pretty console handler that colorizes its output with
// the styled library. The log level is read from the STYLED_LOG_LEVEL
// environment variable.
package ctxlog
