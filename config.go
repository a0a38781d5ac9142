// Copyright (C) 2025 hashdiese. All Rights Reserved.

package jsonfixer

import "strings"

// Config carries the settings that control how a fixed value is rendered
// back to text, and the constraints checked by ValidateFormat. A zero
// Config renders compact output in insertion order with no length limit.
//
// A Config is passed by value and never mutated by the engine; concurrent
// fixes with the same Config are safe.
type Config struct {
	// Pretty renders multi-line indented output, one member or element per
	// line.
	Pretty bool

	// IndentSize is the number of spaces per nesting level when Pretty is
	// set. Zero means 4.
	IndentSize int

	// SpaceBetween inserts a space after each ':' and ','.
	SpaceBetween bool

	// SortKeys renders every object with its keys in ascending byte-wise
	// lexicographic order. Sorting is a render-time projection; the parsed
	// value keeps its insertion order.
	SortKeys bool

	// MaxLineLength is the line length limit checked by ValidateFormat,
	// in runes. Zero disables the check.
	MaxLineLength int
}

// Default is the default configuration: compact output, no spacing,
// insertion order, no length limit.
var Default = Config{}

// indentWidth returns the effective number of spaces per nesting level.
func (c Config) indentWidth() int {
	if c.IndentSize <= 0 {
		return 4
	}
	return c.IndentSize
}

func (c Config) indent() string { return strings.Repeat(" ", c.indentWidth()) }
