// Copyright (C) 2025 hashdiese. All Rights Reserved.

package jsonfixer_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"

	jsonfixer "github.com/hashdiese/json-fixer"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		neg   bool
		ip    string
		frac  string
		exp   string
	}{
		{"0", false, "0", "", ""},
		{"-1", true, "1", "", ""},
		{"5139", false, "5139", "", ""},
		{"2.3", false, "2", "3", ""},
		{"0.001", false, "0", "001", ""},
		{"5e9", false, "5", "", "9"},
		{"5e+9", false, "5", "", "+9"},
		{"3.6E-4", false, "3", "6", "-4"},
		{"-12.5e+7", true, "12", "5", "+7"},
	}
	for _, test := range tests {
		n, err := jsonfixer.ParseNumber(test.input)
		if err != nil {
			t.Errorf("ParseNumber(%q) failed: %v", test.input, err)
			continue
		}
		if n.Text() != test.input {
			t.Errorf("ParseNumber(%q): text %q", test.input, n.Text())
		}
		if n.IsNegative() != test.neg || n.Integer() != test.ip ||
			n.Fraction() != test.frac || n.Exponent() != test.exp {
			t.Errorf("ParseNumber(%q): got (%v %q %q %q), want (%v %q %q %q)",
				test.input, n.IsNegative(), n.Integer(), n.Fraction(), n.Exponent(),
				test.neg, test.ip, test.frac, test.exp)
		}
	}

	bad := []string{"", "-", "+1", ".5", "1.", "01", "00.1", "1e", "1e+", "--1", "1.2.3", "1x", "nan"}
	for _, input := range bad {
		if n, err := jsonfixer.ParseNumber(input); err == nil {
			t.Errorf("ParseNumber(%q): got %v, want error", input, n)
		}
	}
}

func TestNumber_accessors(t *testing.T) {
	n, err := jsonfixer.ParseNumber("-15")
	if err != nil {
		t.Fatalf("ParseNumber failed: %v", err)
	}
	if !n.IsInt() {
		t.Error("IsInt: got false, want true")
	}
	if z, ok := n.Int64(); !ok || z != -15 {
		t.Errorf("Int64: got %d, %v", z, ok)
	}
	if f := n.Float64(); f != -15 {
		t.Errorf("Float64: got %v", f)
	}

	fr, err := jsonfixer.ParseNumber("2.5")
	if err != nil {
		t.Fatalf("ParseNumber failed: %v", err)
	}
	if fr.IsInt() {
		t.Error("IsInt: got true, want false")
	}
	if _, ok := fr.Int64(); ok {
		t.Error("Int64: got ok for a fraction")
	}
	if f := fr.Float64(); f != 2.5 {
		t.Errorf("Float64: got %v", f)
	}
}

func TestObject_find(t *testing.T) {
	v, err := jsonfixer.Parse(`{a:1, b:2}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	o := v.(jsonfixer.Object)
	if i := o.Find("b"); i != 1 {
		t.Errorf(`Find("b"): got %d, want 1`, i)
	}
	if i := o.Find("missing"); i != -1 {
		t.Errorf(`Find("missing"): got %d, want -1`, i)
	}
	if o.Len() != 2 {
		t.Errorf("Len: got %d, want 2", o.Len())
	}
}

func TestEqual(t *testing.T) {
	mustParse := func(s string) jsonfixer.Value {
		t.Helper()
		v, err := jsonfixer.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%#q) failed: %v", s, err)
		}
		return v
	}
	equal := [][2]string{
		{`null`, ` null `},
		{`{a:1, b:[true, 'x']}`, `{"a":1,"b":[true,"x"]}`},
		{`[1,2,]`, `[1 2]`},
	}
	for _, pair := range equal {
		if !jsonfixer.Equal(mustParse(pair[0]), mustParse(pair[1])) {
			t.Errorf("Equal(%#q, %#q): got false, want true", pair[0], pair[1])
		}
	}
	unequal := [][2]string{
		{`null`, `false`},
		{`1`, `1.0`}, // numbers compare textually
		{`{a:1, b:2}`, `{b:2, a:1}`},
		{`[1,2]`, `[1,2,3]`},
		{`"a"`, `"b"`},
	}
	for _, pair := range unequal {
		if jsonfixer.Equal(mustParse(pair[0]), mustParse(pair[1])) {
			t.Errorf("Equal(%#q, %#q): got true, want false", pair[0], pair[1])
		}
	}
}

type bogusValue struct{}

func (bogusValue) Kind() jsonfixer.Kind { return jsonfixer.Kind(99) }

func TestRender_unknownValue(t *testing.T) {
	mtest.MustPanic(t, func() { jsonfixer.Render(bogusValue{}, jsonfixer.Default) })
}
