// Copyright (C) 2025 hashdiese. All Rights Reserved.

package jsonfixer

// parser is a recursive-descent parser over the token stream that applies
// local, deterministic recovery heuristics. Each heuristic fires only when
// one token of lookahead makes the repaired reading unambiguous; anything
// that would require guessing lost content is a hard failure.
//
// Errors abort the parse by panic, recovered at the entry point, so the
// recovery branches do not have to thread error returns through every
// production.
type parser struct {
	sc *Scanner

	cur   Token
	scErr error // pending scanner error, raised when the token is inspected
}

func newParser(input string) *parser { return &parser{sc: NewScanner(input)} }

type parsePanic struct{ err error }

func (p *parser) recoverParseError(errp *error) {
	if v := recover(); v != nil {
		pe, ok := v.(parsePanic)
		if !ok {
			panic(v)
		}
		*errp = pe.err
	}
}

func (p *parser) fail(err error) {
	panic(parsePanic{err})
}

func (p *parser) failAt(kind SyntaxKind, pos Position, text string) {
	p.fail(&SyntaxError{Kind: kind, Pos: pos, Text: text})
}

// advance fetches the next token. A scanner error is not raised here: it is
// held until the token is actually inspected, so that garbage after a
// complete root value is never scanned into an error.
func (p *parser) advance() {
	if err := p.sc.Next(); err != nil {
		p.cur = Invalid
		p.scErr = err
		return
	}
	p.cur = p.sc.Token()
	p.scErr = nil
}

// tok returns the current token type, raising any pending scanner error.
func (p *parser) tok() Token {
	if p.scErr != nil {
		p.fail(p.scErr)
	}
	return p.cur
}

// parseDocument parses one complete value from the front of the input.
// Trailing non-whitespace garbage after the value is ignored: the first
// complete value wins.
func (p *parser) parseDocument() Value {
	p.advance()
	if p.tok() == EOF {
		p.failAt(UnexpectedEndOfInput, p.sc.Pos(), "")
	}
	return p.parseValue()
}

// parseValue consumes a single value of any kind, leaving the token one
// past the value.
func (p *parser) parseValue() Value {
	switch p.tok() {
	case LBrace:
		return p.parseObject()
	case LSquare:
		return p.parseArray()
	case String:
		// A single-quoted string is accepted here; the value keeps no memory
		// of the original delimiter.
		v := String(p.sc.Text())
		p.advance()
		return v
	case Number:
		n, err := ParseNumber(p.sc.Text())
		if err != nil {
			p.failAt(InvalidNumber, p.sc.Pos(), p.sc.Text())
		}
		p.advance()
		return n
	case Bareword:
		switch p.sc.Text() {
		case "true":
			p.advance()
			return Bool(true)
		case "false":
			p.advance()
			return Bool(false)
		case "null":
			p.advance()
			return Null{}
		}
		p.failAt(UnexpectedToken, p.sc.Pos(), p.sc.Text())
	case EOF:
		p.failAt(UnexpectedEndOfInput, p.sc.Pos(), "")
	default:
		p.failAt(UnexpectedToken, p.sc.Pos(), p.sc.Text())
	}
	panic("unreachable")
}

// startsValue reports whether the current token could begin a value.
func (p *parser) startsValue() bool {
	switch p.tok() {
	case LBrace, LSquare, String, Number, Bareword:
		return true
	}
	return false
}

// parseObject consumes an object.
// Precondition: token == LBrace.
func (p *parser) parseObject() Value {
	p.advance() // consume {
	obj := Object{}
	for {
		switch p.tok() {
		case RBrace:
			p.advance()
			return obj
		case EOF:
			return obj // auto-close: synthesize the missing }
		case Comma:
			p.advance() // stray comma before a key: trailing or consecutive
			continue
		}

		// A quoted string or a bareword is accepted as a key; a bareword's
		// text is taken verbatim as the key string.
		if t := p.tok(); t != String && t != Bareword {
			p.failAt(UnexpectedToken, p.sc.Pos(), p.sc.Text())
		}
		key := p.sc.Text()
		p.advance()

		switch {
		case p.tok() == Colon:
			p.advance()
		case p.tok() == EOF:
			p.failAt(UnexpectedEndOfInput, p.sc.Pos(), "")
		case p.startsValue():
			// Synthesize the missing colon; the next token already starts
			// the member's value.
		default:
			p.failAt(UnexpectedToken, p.sc.Pos(), p.sc.Text())
		}

		obj = obj.set(key, p.parseValue())

		// After a member: a comma, the closing brace, and end of input are
		// handled at the top of the loop. A token that starts the next
		// member means the comma was omitted; synthesize it and continue.
		switch t := p.tok(); t {
		case Comma, RBrace, EOF, String, Bareword:
		default:
			p.failAt(MissingComma, p.sc.Pos(), "")
		}
	}
}

// parseArray consumes an array.
// Precondition: token == LSquare.
func (p *parser) parseArray() Value {
	p.advance() // consume [
	arr := Array{}
	for {
		switch p.tok() {
		case RSquare:
			p.advance()
			return arr
		case EOF:
			return arr // auto-close: synthesize the missing ]
		case Comma:
			p.advance() // stray comma before an element
			continue
		}

		arr = append(arr, p.parseValue())

		// After an element: separators and closers are handled at the top
		// of the loop; a token that starts a new element means the comma
		// was omitted, so synthesize it and continue.
		switch {
		case p.tok() == Comma || p.tok() == RSquare || p.tok() == EOF:
		case p.startsValue():
		default:
			p.failAt(MissingComma, p.sc.Pos(), "")
		}
	}
}
