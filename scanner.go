// Copyright (C) 2025 hashdiese. All Rights Reserved.

package jsonfixer

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Token is the type of a lexical token in the lenient JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid  Token = iota // invalid token
	LBrace                // left brace "{"
	RBrace                // right brace "}"
	LSquare               // left square bracket "["
	RSquare               // right square bracket "]"
	Comma                 // comma ","
	Colon                 // colon ":"
	String                // quoted string, single or double
	Number                // number literal
	Bareword              // unquoted identifier-like run
	EOF                   // end of input
)

var tokenStr = [...]string{
	Invalid:  "invalid token",
	LBrace:   `"{"`,
	RBrace:   `"}"`,
	LSquare:  `"["`,
	RSquare:  `"]"`,
	Comma:    `","`,
	Colon:    `":"`,
	String:   "string",
	Number:   "number",
	Bareword: "bareword",
	EOF:      "end of input",
}

func (t Token) String() string {
	if int(t) >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[t]
}

// A Scanner reads lexical tokens from a complete in-memory input. Each call
// to Next advances the scanner to the next token, or reports an error. The
// scanner holds no token buffer; tokens are produced on demand.
//
// The scanner is lenient at the lexical level only: strings may use single
// or double quotes, and identifier-like runs are reported as Bareword tokens
// for the parser to interpret. Structural recovery is the parser's job.
type Scanner struct {
	input string
	next  int // byte offset of the next rune

	// Position of the next rune to be consumed.
	offset    int // rune offset, 0-based
	line, col int // 1-based

	tok   Token
	text  string   // decoded text (String), literal text (otherwise)
	quote byte     // opening quote of the current String token
	tpos  Position // start position of the current token
	err   error
}

// NewScanner constructs a new lexical scanner that consumes input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input, line: 1, col: 1}
}

// Next advances s to the next token of the input, or reports an error of
// concrete type *SyntaxError. At the end of the input the current token is
// EOF; further calls keep reporting EOF.
func (s *Scanner) Next() error {
	s.tok = Invalid
	s.text = ""
	s.quote = 0
	s.err = nil

	// Discard whitespace.
	for {
		ch, ok := s.peek()
		if !ok {
			s.tpos = s.here()
			s.tok = EOF
			return nil
		}
		if !isSpace(ch) {
			break
		}
		s.advance()
	}

	s.tpos = s.here()
	ch := s.mustAdvance()

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		s.tok = t
		s.text = string(ch)
		return nil
	}

	switch {
	case ch == '"' || ch == '\'':
		return s.scanString(ch)
	case ch == '-' || isDigit(ch):
		return s.scanNumber(ch)
	case isWordStart(ch):
		return s.scanBareword(ch)
	}
	return s.fail(&SyntaxError{Kind: UnexpectedCharacter, Char: ch, Pos: s.tpos})
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Text returns the text of the current token. For String tokens the text is
// fully decoded; for Number and Bareword tokens it is the literal source
// run.
func (s *Scanner) Text() string { return s.text }

// Quote returns the opening quote character of the current String token,
// double or single, and 0 for any other token.
func (s *Scanner) Quote() byte { return s.quote }

// Pos returns the start position of the current token.
func (s *Scanner) Pos() Position { return s.tpos }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// scanString consumes a string literal opened by the quote character open,
// decoding escape sequences as it goes. The token text is the decoded
// content without quotes.
func (s *Scanner) scanString(open rune) error {
	var sb strings.Builder
	for {
		ch, ok := s.peek()
		if !ok || ch == '\n' {
			// Guessing the intended terminator would corrupt data, so an
			// unterminated string is a hard failure at the opening quote.
			return s.fail(&SyntaxError{Kind: UnmatchedQuotes, Pos: s.tpos})
		}
		epos := s.here()
		s.advance()
		if ch == open {
			s.tok = String
			s.text = sb.String()
			s.quote = byte(open)
			return nil
		}
		if ch != '\\' {
			sb.WriteRune(ch)
			continue
		}

		esc, ok := s.peek()
		if !ok {
			return s.fail(&SyntaxError{Kind: UnmatchedQuotes, Pos: s.tpos})
		}
		s.advance()
		switch esc {
		case '"', '\\', '/':
			sb.WriteRune(esc)
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			r, ok := s.readHex4()
			if !ok {
				return s.fail(&SyntaxError{Kind: UnexpectedCharacter, Char: 'u', Pos: epos})
			}
			if utf16.IsSurrogate(r) {
				r = s.combineSurrogate(r)
			}
			sb.WriteRune(r)
		default:
			return s.fail(&SyntaxError{Kind: UnexpectedCharacter, Char: esc, Pos: epos})
		}
	}
}

// combineSurrogate merges a leading UTF-16 surrogate with a following
// \uXXXX escape, if one is present. A lone surrogate decodes to the Unicode
// replacement rune.
func (s *Scanner) combineSurrogate(first rune) rune {
	if !strings.HasPrefix(s.input[s.next:], `\u`) {
		return unicode.ReplacementChar
	}
	mark := *s
	s.advance() // backslash
	s.advance() // u
	second, ok := s.readHex4()
	if !ok {
		*s = mark
		return unicode.ReplacementChar
	}
	if r := utf16.DecodeRune(first, second); r != unicode.ReplacementChar {
		return r
	}
	*s = mark
	return unicode.ReplacementChar
}

// readHex4 consumes exactly 4 hexadecimal digits and returns their value.
func (s *Scanner) readHex4() (rune, bool) {
	var v rune
	for i := 0; i < 4; i++ {
		ch, ok := s.peek()
		if !ok || !isHexDigit(ch) {
			return 0, false
		}
		s.advance()
		v = v<<4 | hexValue(ch)
	}
	return v, true
}

// scanNumber greedily consumes the maximal run of characters that could
// plausibly continue a number, then validates the run against the JSON
// number grammar. A run that does not satisfy the grammar is a hard
// InvalidNumber failure carrying the consumed text.
func (s *Scanner) scanNumber(first rune) error {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		ch, ok := s.peek()
		if !ok || !isNumRune(ch) {
			break
		}
		s.advance()
		sb.WriteRune(ch)
	}
	text := sb.String()
	if _, ok := parseNumber(text); !ok {
		return s.fail(&SyntaxError{Kind: InvalidNumber, Text: text, Pos: s.tpos})
	}
	s.tok = Number
	s.text = text
	return nil
}

// scanBareword consumes a contiguous run of identifier-like characters.
// The parser decides whether the run is a constant, an unquoted key, or an
// error.
func (s *Scanner) scanBareword(first rune) error {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		ch, ok := s.peek()
		if !ok || !isWordRune(ch) {
			break
		}
		s.advance()
		sb.WriteRune(ch)
	}
	s.tok = Bareword
	s.text = sb.String()
	return nil
}

// here returns the position of the next rune to be consumed.
func (s *Scanner) here() Position {
	return Position{Offset: s.offset, Line: s.line, Column: s.col}
}

// peek reports the next rune without consuming it.
func (s *Scanner) peek() (rune, bool) {
	if s.next >= len(s.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.next:])
	return r, true
}

// advance consumes one rune and updates the position counters. A newline
// increments the line and resets the column to 1.
func (s *Scanner) advance() {
	r, n := utf8.DecodeRuneInString(s.input[s.next:])
	s.next += n
	s.offset++
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
}

func (s *Scanner) mustAdvance() rune {
	r, _ := utf8.DecodeRuneInString(s.input[s.next:])
	s.advance()
	return r
}

func (s *Scanner) fail(err *SyntaxError) error {
	s.err = err
	return err
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isHexDigit(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func hexValue(ch rune) rune {
	switch {
	case isDigit(ch):
		return ch - '0'
	case ch >= 'a':
		return ch - 'a' + 10
	default:
		return ch - 'A' + 10
	}
}

// isNumRune reports whether ch can continue a plausible number run. The run
// is intentionally wider than the JSON grammar so that malformed literals
// like "1x" are consumed whole and reported verbatim.
func isNumRune(ch rune) bool {
	return isDigit(ch) || ch == '.' || ch == '+' || ch == '-' ||
		ch == '_' || unicode.IsLetter(ch)
}

func isWordStart(ch rune) bool { return ch == '_' || unicode.IsLetter(ch) }

func isWordRune(ch rune) bool { return isWordStart(ch) || unicode.IsDigit(ch) }

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Token, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
