// Copyright (C) 2025 hashdiese. All Rights Reserved.

package jsonfixer

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"go4.org/mem"

	"github.com/hashdiese/json-fixer/internal/escape"
)

// Render renders v as JSON text under cfg. Rendering is total for any value
// produced by the parser; it panics on a Value implementation from outside
// this package.
func Render(v Value, cfg Config) string {
	var sb strings.Builder
	f := formatter{cfg: cfg}
	f.value(&sb, v, 0)
	return sb.String()
}

// Quote encodes s as a JSON string value: the content is escaped and double
// quotation marks are added. Strings are always emitted double-quoted,
// whatever their original delimiter was.
func Quote(s string) string {
	return `"` + string(escape.Append(nil, mem.S(s))) + `"`
}

type formatter struct {
	cfg Config
}

func (f formatter) value(sb *strings.Builder, v Value, depth int) {
	switch t := v.(type) {
	case Null:
		sb.WriteString("null")
	case Bool:
		if t {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Number:
		// The original text is emitted, preserving the input precision.
		sb.WriteString(t.Text())
	case String:
		sb.WriteString(Quote(string(t)))
	case Array:
		f.array(sb, t, depth)
	case Object:
		f.object(sb, t, depth)
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func (f formatter) array(sb *strings.Builder, a Array, depth int) {
	if len(a) == 0 {
		sb.WriteString("[]")
		return
	}
	sb.WriteByte('[')
	for i, el := range a {
		if i > 0 {
			f.comma(sb)
		}
		f.openLine(sb, depth+1)
		f.value(sb, el, depth+1)
	}
	f.closeLine(sb, depth)
	sb.WriteByte(']')
}

func (f formatter) object(sb *strings.Builder, o Object, depth int) {
	if len(o) == 0 {
		sb.WriteString("{}")
		return
	}
	ms := o
	if f.cfg.SortKeys {
		// Sort a render-time copy; the stored order is untouched.
		ms = append(Object(nil), o...)
		sort.Slice(ms, func(i, j int) bool { return ms[i].Key < ms[j].Key })
	}
	sb.WriteByte('{')
	for i, m := range ms {
		if i > 0 {
			f.comma(sb)
		}
		f.openLine(sb, depth+1)
		sb.WriteString(Quote(m.Key))
		sb.WriteByte(':')
		if f.cfg.Pretty || f.cfg.SpaceBetween {
			sb.WriteByte(' ')
		}
		f.value(sb, m.Value, depth+1)
	}
	f.closeLine(sb, depth)
	sb.WriteByte('}')
}

func (f formatter) comma(sb *strings.Builder) {
	sb.WriteByte(',')
	if f.cfg.SpaceBetween && !f.cfg.Pretty {
		sb.WriteByte(' ')
	}
}

// openLine starts a new indented line for a member or element when pretty
// printing.
func (f formatter) openLine(sb *strings.Builder, depth int) {
	if !f.cfg.Pretty {
		return
	}
	sb.WriteByte('\n')
	for i := 0; i < depth; i++ {
		sb.WriteString(f.cfg.indent())
	}
}

// closeLine starts the line carrying a closing bracket when pretty
// printing.
func (f formatter) closeLine(sb *strings.Builder, depth int) {
	if !f.cfg.Pretty {
		return
	}
	sb.WriteByte('\n')
	for i := 0; i < depth; i++ {
		sb.WriteString(f.cfg.indent())
	}
}

// ValidateFormat checks already-rendered text against the formatting
// constraints in cfg, without reparsing it as JSON. The checks are
// advisory: they are never applied by Fix, and a non-empty result does not
// mean the text is invalid JSON.
//
// LineTooLong is reported for every line longer than cfg.MaxLineLength
// runes (when the limit is nonzero). InvalidIndentation is reported, when
// cfg.Pretty is set, for every line whose leading spaces are not a multiple
// of the indent size.
func ValidateFormat(text string, cfg Config) []*FormatError {
	var errs []*FormatError
	for i, line := range strings.Split(text, "\n") {
		n := utf8.RuneCountInString(line)
		if cfg.MaxLineLength > 0 && n > cfg.MaxLineLength {
			errs = append(errs, &FormatError{
				Kind:   LineTooLong,
				Line:   i + 1,
				Length: n,
				Max:    cfg.MaxLineLength,
			})
		}
		if cfg.Pretty {
			lead := len(line) - len(strings.TrimLeft(line, " "))
			if lead%cfg.indentWidth() != 0 {
				errs = append(errs, &FormatError{Kind: InvalidIndentation, Line: i + 1})
			}
		}
	}
	return errs
}
