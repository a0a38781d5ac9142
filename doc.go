// Copyright (C) 2025 hashdiese. All Rights Reserved.

// Package jsonfixer accepts text that is almost JSON and produces valid
// JSON, or a precise diagnostic for the first defect it cannot repair.
//
// # Fixing
//
// Fix scans, parses, and re-renders its input, silently repairing the
// defects common in hand-written and legacy data: unquoted keys,
// single-quoted strings, missing or trailing commas, and unterminated
// brackets or braces.
//
//	out, err := jsonfixer.Fix(`{ name: 'John', age: 30 }`)
//	// out == `{"name":"John","age":30}`
//
// Every repair is local and conservative: a heuristic fires only when one
// token of lookahead makes the intended reading unambiguous. Defects whose
// repair would require guessing lost content (such as an unterminated string
// or a malformed number) are reported as a *SyntaxError carrying the exact
// line and column:
//
//	_, err := jsonfixer.Fix(`{"x": 1x}`)
//	var serr *jsonfixer.SyntaxError
//	if errors.As(err, &serr) {
//	   log.Printf("%s at %s", serr.Kind, serr.Pos)
//	}
//
// # Rendering
//
// FixWithConfig controls the output shape: compact by default, with
// optional indentation (Pretty, IndentSize), separator spacing
// (SpaceBetween), and a render-time sorted projection of object keys
// (SortKeys). ValidateFormat checks already-rendered text against
// formatting constraints without reparsing it.
//
// # Values
//
// Parse exposes the reconstructed tree directly as a Value: one of Null,
// Bool, Number, String, Array, or Object. Objects preserve insertion order
// and resolve duplicate keys last-write-wins; numbers keep their original
// text so rendering never drifts through a floating-point round-trip. The
// bind subpackage converts between Value trees and Go types.
package jsonfixer
