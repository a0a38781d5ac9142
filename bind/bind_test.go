// Copyright (C) 2025 hashdiese. All Rights Reserved.

package bind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonfixer "github.com/hashdiese/json-fixer"
	"github.com/hashdiese/json-fixer/bind"
)

type person struct {
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Hobbies []string `json:"hobbies"`
	Note    string   `json:"-"`
}

func TestFixed_struct(t *testing.T) {
	got, err := bind.Fixed[person](`{ name: 'John', age: 30 hobbies: ['reading' 'coding'] }`)
	require.NoError(t, err)
	assert.Equal(t, person{Name: "John", Age: 30, Hobbies: []string{"reading", "coding"}}, got)
}

func TestFixed_map(t *testing.T) {
	got, err := bind.Fixed[map[string]any](`{a: 1.5, b: [true, null], c: 'x'}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": 1.5,
		"b": []any{true, nil},
		"c": "x",
	}, got)
}

func TestFixed_syntaxError(t *testing.T) {
	_, err := bind.Fixed[person](`{name: oops}`)
	require.Error(t, err)
	var serr *jsonfixer.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, jsonfixer.UnexpectedToken, serr.Kind)
}

func TestFromValue_fieldMatching(t *testing.T) {
	type record struct {
		UserName string
		MaxSize  int
		Plain    string
	}
	v, err := jsonfixer.Parse(`{user_name: 'ann', maxsize: 8, Plain: 'p'}`)
	require.NoError(t, err)

	var rec record
	require.NoError(t, bind.FromValue(v, &rec))
	// user_name binds through its CamelCase form, maxsize case-insensitively.
	assert.Equal(t, record{UserName: "ann", MaxSize: 8, Plain: "p"}, rec)
}

func TestFromValue_nested(t *testing.T) {
	type inner struct {
		ID int `json:"id"`
	}
	type outer struct {
		Items []inner        `json:"items"`
		Meta  map[string]int `json:"meta"`
		Ptr   *inner         `json:"ptr"`
		Gone  *inner         `json:"gone"`
	}
	v, err := jsonfixer.Parse(`{items: [{id: 1}, {id: 2}], meta: {n: 3}, ptr: {id: 4}, gone: null}`)
	require.NoError(t, err)

	var out outer
	require.NoError(t, bind.FromValue(v, &out))
	assert.Equal(t, outer{
		Items: []inner{{ID: 1}, {ID: 2}},
		Meta:  map[string]int{"n": 3},
		Ptr:   &inner{ID: 4},
	}, out)
}

func TestFromValue_errors(t *testing.T) {
	v, err := jsonfixer.Parse(`{age: 'old'}`)
	require.NoError(t, err)

	var p person
	err = bind.FromValue(v, &p)
	var cerr *jsonfixer.ConversionError
	require.ErrorAs(t, err, &cerr)

	assert.Error(t, bind.FromValue(v, nil))
	assert.Error(t, bind.FromValue(v, p)) // not a pointer

	neg, err := jsonfixer.Parse(`{n: -1}`)
	require.NoError(t, err)
	var u struct {
		N uint `json:"n"`
	}
	assert.Error(t, bind.FromValue(neg, &u))
}

func TestToValue(t *testing.T) {
	v, err := bind.ToValue(person{Name: "John", Age: 30, Note: "dropped"})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"John","age":30,"hobbies":null}`, jsonfixer.Render(v, jsonfixer.Default))
}

func TestToValue_roundTrip(t *testing.T) {
	in := person{Name: "Jane", Age: 25, Hobbies: []string{"chess"}}
	v, err := bind.ToValue(in)
	require.NoError(t, err)

	var out person
	require.NoError(t, bind.FromValue(v, &out))
	assert.Equal(t, in, out)
}

func TestMarshal(t *testing.T) {
	// Map keys render sorted, so output is deterministic.
	got, err := bind.Marshal(map[string]int{"b": 2, "a": 1}, jsonfixer.Default)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2}`, got)

	got, err = bind.Marshal([]any{nil, true, "x"}, jsonfixer.Config{SpaceBetween: true})
	require.NoError(t, err)
	assert.Equal(t, `[null, true, "x"]`, got)

	_, err = bind.Marshal(map[int]int{1: 1}, jsonfixer.Default)
	assert.Error(t, err)
}
