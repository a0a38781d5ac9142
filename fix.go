// Copyright (C) 2025 hashdiese. All Rights Reserved.

package jsonfixer

// Fix repairs input and renders it compactly with the default
// configuration. It returns an error of concrete type *SyntaxError if the
// input has a defect no recovery heuristic applies to.
func Fix(input string) (string, error) {
	return FixWithConfig(input, Default)
}

// FixWithConfig repairs input and renders it under cfg.
func FixWithConfig(input string, cfg Config) (string, error) {
	v, err := Parse(input)
	if err != nil {
		return "", err
	}
	return Render(v, cfg), nil
}

// FixPretty repairs input and renders it indented over multiple lines,
// four spaces per level.
func FixPretty(input string) (string, error) {
	return FixWithConfig(input, Config{Pretty: true, IndentSize: 4})
}

// FixSpaceBetween repairs input and renders it on a single line with a
// space after every ':' and ','.
func FixSpaceBetween(input string) (string, error) {
	return FixWithConfig(input, Config{SpaceBetween: true})
}

// Parse repairs input and returns the reconstructed value tree instead of
// re-rendered text. The tree exclusively owns its string contents and is
// independent of input after Parse returns.
func Parse(input string) (v Value, err error) {
	p := newParser(input)
	defer p.recoverParseError(&err)
	return p.parseDocument(), nil
}
