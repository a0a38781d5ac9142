// Copyright (C) 2025 hashdiese. All Rights Reserved.

package jsonfixer

import "strconv"

// Kind is the type tag of a Value.
type Kind int

// Constants defining the valid Kind values.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindStr = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is a JSON value reconstructed by the recovering parser. The six
// implementations in this package are the only kinds of value the parser
// produces; a tree is immutable once parsing returns it.
type Value interface {
	Kind() Kind
}

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return KindNull }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return KindBool }

// A String is a string value. The text is fully decoded; it retains no
// memory of the quote style or escapes used in the input.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return KindString }

// A Number is a JSON number. The original source text is retained, so that
// rendering a parsed number does not drift through a floating-point
// round-trip, along with its validated decomposition. A Number can only be
// constructed from text matching the JSON number grammar.
type Number struct {
	text string
	neg  bool
	ip   string // integer digits
	frac string // fractional digits, empty if none
	exp  string // exponent with optional sign, empty if none
}

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return KindNumber }

// Text returns the original source text of the number.
func (n Number) Text() string { return n.text }

// IsNegative reports whether the number carries a leading minus sign.
func (n Number) IsNegative() bool { return n.neg }

// Integer returns the integer digits of the number.
func (n Number) Integer() string { return n.ip }

// Fraction returns the fractional digits, or "" if there is no fraction.
func (n Number) Fraction() string { return n.frac }

// Exponent returns the exponent including any sign, or "" if there is no
// exponent.
func (n Number) Exponent() string { return n.exp }

// IsInt reports whether the number has no fraction and no exponent.
func (n Number) IsInt() bool { return n.frac == "" && n.exp == "" }

// Float64 returns the value of the number as a float64.
func (n Number) Float64() float64 {
	v, err := strconv.ParseFloat(n.text, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Int64 returns the value of the number as an int64. It reports false if
// the number has a fraction or exponent, or overflows int64.
func (n Number) Int64() (int64, bool) {
	if !n.IsInt() {
		return 0, false
	}
	v, err := strconv.ParseInt(n.text, 10, 64)
	return v, err == nil
}

// ParseNumber validates text against the JSON number grammar and returns
// the corresponding Number. Any deviation from the grammar is reported as
// an InvalidNumber error.
func ParseNumber(text string) (Number, error) {
	n, ok := parseNumber(text)
	if !ok {
		return Number{}, &SyntaxError{Kind: InvalidNumber, Text: text}
	}
	return n, nil
}

// parseNumber decomposes text per the JSON number grammar:
// -?(0|[1-9][0-9]*)(.[0-9]+)?([eE][-+]?[0-9]+)?
func parseNumber(text string) (Number, bool) {
	n := Number{text: text}
	rest := text
	if len(rest) != 0 && rest[0] == '-' {
		n.neg = true
		rest = rest[1:]
	}

	ip, rest := digitRun(rest)
	if ip == "" {
		return Number{}, false
	}
	if ip[0] == '0' && len(ip) > 1 {
		return Number{}, false // redundant leading zero
	}
	n.ip = ip

	if len(rest) != 0 && rest[0] == '.' {
		n.frac, rest = digitRun(rest[1:])
		if n.frac == "" {
			return Number{}, false
		}
	}

	if len(rest) != 0 && (rest[0] == 'e' || rest[0] == 'E') {
		body := rest[1:]
		i := 0
		if len(body) != 0 && (body[0] == '-' || body[0] == '+') {
			i = 1
		}
		digits, tail := digitRun(body[i:])
		if digits == "" {
			return Number{}, false
		}
		n.exp = body[:i+len(digits)]
		rest = tail
	}
	return n, rest == ""
}

// digitRun splits s into its leading run of decimal digits and the rest.
func digitRun(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// An Array is an ordered sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return KindArray }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Object is an ordered collection of key-value members. Keys are unique;
// the parser resolves duplicates by overwriting the earlier value in place,
// so insertion order records the first occurrence of each key.
type Object []Member

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return KindObject }

// Find returns the index of the member of o with the given key, or -1.
func (o Object) Find(key string) int {
	for i, m := range o {
		if m.Key == key {
			return i
		}
	}
	return -1
}

// Len returns the number of members of o.
func (o Object) Len() int { return len(o) }

// set records key:v in o, overwriting in place if key is already present.
func (o Object) set(key string, v Value) Object {
	if i := o.Find(key); i >= 0 {
		o[i].Value = v
		return o
	}
	return append(o, Member{Key: key, Value: v})
}

// Equal reports whether a and b are structurally equal: same kinds, same
// member keys and order, same element order, and textually identical
// numbers.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch t := a.(type) {
	case Null:
		return true
	case Bool:
		return t == b.(Bool)
	case String:
		return t == b.(String)
	case Number:
		return t.text == b.(Number).text
	case Array:
		u := b.(Array)
		if len(t) != len(u) {
			return false
		}
		for i := range t {
			if !Equal(t[i], u[i]) {
				return false
			}
		}
		return true
	case Object:
		u := b.(Object)
		if len(t) != len(u) {
			return false
		}
		for i := range t {
			if t[i].Key != u[i].Key || !Equal(t[i].Value, u[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
