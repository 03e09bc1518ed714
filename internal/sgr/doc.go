// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sgr assembles Select Graphic Rendition escape sequences.
// It holds the numeric parameter table for font attributes and for the
// basic, bright, 256-palette and 24-bit color forms, and builds the
// `ESC [ <params;> m` sequences terminal emulators recognise.
// The package performs no capability detection: it always emits the
// sequence it is asked for, and callers decide whether to use it.
package sgr
