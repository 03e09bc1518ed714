// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package stylesheet loads YAML documents that pair named styles with
// lines of text to render. A document looks like:
//
//	styles:
//	  title:
//	    foreground: bright-white
//	    background: "#1e1e2e"
//	    styles: [bold, underline]
//	  note:
//	    foreground: "245"
//	lines:
//	  - style: title
//	    text: Hello, World!
//	  - style: note
//	    text: a quieter line
//
// Colors may be one of the sixteen ANSI names (bright variants use a
// "bright-" prefix), a "#RRGGBB" hex value, or a 256-palette index in
// decimal. All invalid entries in a document are reported together
// rather than one at a time.
package stylesheet
