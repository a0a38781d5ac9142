// Copyright (C) 2025 hashdiese. All Rights Reserved.

package jsonfixer

import "fmt"

// SyntaxKind enumerates the syntax defects that cannot be repaired.
// The set is closed; callers can switch on the kind of a SyntaxError
// without parsing its message.
type SyntaxKind int

// Constants defining the valid SyntaxKind values.
const (
	UnexpectedCharacter  SyntaxKind = iota + 1 // a character that cannot begin any token
	UnmatchedQuotes                            // a string literal with no closing quote
	UnexpectedEndOfInput                       // input ended where a value was required
	MissingComma                               // a separator was required and absent
	InvalidNumber                              // a number literal outside the JSON grammar
	UnexpectedToken                            // a token that cannot begin or continue a value
)

var syntaxKindStr = [...]string{
	UnexpectedCharacter:  "unexpected character",
	UnmatchedQuotes:      "unmatched quotes",
	UnexpectedEndOfInput: "unexpected end of input",
	MissingComma:         "missing comma",
	InvalidNumber:        "invalid number",
	UnexpectedToken:      "unexpected token",
}

func (k SyntaxKind) String() string {
	if k < 1 || int(k) >= len(syntaxKindStr) {
		return "syntax error"
	}
	return syntaxKindStr[k]
}

// A SyntaxError reports the first unrecoverable defect found while scanning
// or parsing. No partial value accompanies a SyntaxError; parsing stops at
// the position recorded here.
type SyntaxError struct {
	Kind SyntaxKind
	Pos  Position

	Text string // offending text, for InvalidNumber and UnexpectedToken
	Char rune   // offending character, for UnexpectedCharacter
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q at %s", e.Char, e.Pos)
	case InvalidNumber:
		return fmt.Sprintf("invalid number %q at %s", e.Text, e.Pos)
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token %q at %s", e.Text, e.Pos)
	default:
		return fmt.Sprintf("%s at %s", e.Kind, e.Pos)
	}
}

// FormatKind enumerates the advisory formatting defects reported by
// ValidateFormat. Format errors never block fixing.
type FormatKind int

// Constants defining the valid FormatKind values.
const (
	LineTooLong        FormatKind = iota + 1 // a line exceeds the configured length limit
	InvalidIndentation                       // leading whitespace is not a multiple of the indent size
)

// A FormatError reports a formatting constraint violation in
// already-rendered text.
type FormatError struct {
	Kind FormatKind
	Line int // line number, 1-based

	Length int // rune length of the offending line, for LineTooLong
	Max    int // the configured limit, for LineTooLong
}

// Error satisfies the error interface.
func (e *FormatError) Error() string {
	switch e.Kind {
	case LineTooLong:
		return fmt.Sprintf("line %d is %d long, want at most %d", e.Line, e.Length, e.Max)
	case InvalidIndentation:
		return fmt.Sprintf("invalid indentation at line %d", e.Line)
	default:
		return fmt.Sprintf("format error at line %d", e.Line)
	}
}

// A ConversionError reports a failure to convert between a Value and a
// statically-typed Go value.
type ConversionError struct {
	Reason string
}

// Error satisfies the error interface.
func (e *ConversionError) Error() string { return "conversion: " + e.Reason }
