// Copyright (C) 2025 hashdiese. All Rights Reserved.

package jsonfixer

import "fmt"

// A Position describes a single location in source text. Positions are
// captured by the scanner before a character is consumed, and are copied
// into tokens and errors at the moment of observation.
type Position struct {
	Offset int // offset in runes from the start of the input, 0-based
	Line   int // line number, 1-based
	Column int // column number in runes, 1-based
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }
