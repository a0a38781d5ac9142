// Copyright (C) 2025 hashdiese. All Rights Reserved.

// Package bind converts between jsonfixer value trees and statically-typed
// Go values. It is a collaborator of the core fixer: it consumes and
// produces Value trees only, and never touches the scanner or parser.
package bind

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	jsonfixer "github.com/hashdiese/json-fixer"
)

// ToValue converts a Go value into a jsonfixer.Value. Supported inputs are
// nil, booleans, strings, integers, floats, slices, arrays, maps with
// string keys, structs, and pointers or interfaces thereof. Struct fields
// follow the conventions of encoding/json tags: a `json:"name"` tag renames
// the field and `json:"-"` omits it.
func ToValue(v any) (jsonfixer.Value, error) {
	if v == nil {
		return jsonfixer.Null{}, nil
	}
	if jv, ok := v.(jsonfixer.Value); ok {
		return jv, nil
	}
	return encode(reflect.ValueOf(v))
}

func encode(rv reflect.Value) (jsonfixer.Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return jsonfixer.Null{}, nil
		}
		return encode(rv.Elem())

	case reflect.Bool:
		return jsonfixer.Bool(rv.Bool()), nil

	case reflect.String:
		return jsonfixer.String(rv.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number(strconv.FormatInt(rv.Int(), 10))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return number(strconv.FormatUint(rv.Uint(), 10))

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &jsonfixer.ConversionError{Reason: "unsupported float value " + strconv.FormatFloat(f, 'g', -1, 64)}
		}
		bits := 64
		if rv.Kind() == reflect.Float32 {
			bits = 32
		}
		return number(strconv.FormatFloat(f, 'g', -1, bits))

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return jsonfixer.Null{}, nil
		}
		out := make(jsonfixer.Array, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, err := encode(rv.Index(i))
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		return out, nil

	case reflect.Map:
		if rv.IsNil() {
			return jsonfixer.Null{}, nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &jsonfixer.ConversionError{Reason: "unsupported map key type " + rv.Type().Key().String()}
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys) // map iteration order is random; render deterministically
		out := make(jsonfixer.Object, 0, len(keys))
		for _, k := range keys {
			ev, err := encode(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())))
			if err != nil {
				return nil, err
			}
			out = append(out, jsonfixer.Member{Key: k, Value: ev})
		}
		return out, nil

	case reflect.Struct:
		rt := rv.Type()
		out := make(jsonfixer.Object, 0, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			name := fieldName(sf)
			if name == "" {
				continue
			}
			ev, err := encode(rv.Field(i))
			if err != nil {
				return nil, err
			}
			out = append(out, jsonfixer.Member{Key: name, Value: ev})
		}
		return out, nil
	}
	return nil, &jsonfixer.ConversionError{Reason: "unsupported type " + rv.Type().String()}
}

func number(text string) (jsonfixer.Value, error) {
	n, err := jsonfixer.ParseNumber(text)
	if err != nil {
		return nil, &jsonfixer.ConversionError{Reason: "bad number " + strconv.Quote(text)}
	}
	return n, nil
}

// fieldName returns the JSON key for a struct field, or "" if the field is
// omitted.
func fieldName(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return sf.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

// FromValue decodes v into target, which must be a non-nil pointer. Object
// members bind to struct fields by json tag, exact field name, the
// CamelCase form of the key, or a case-insensitive match, in that order of
// preference; unmatched members are ignored.
func FromValue(v jsonfixer.Value, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &jsonfixer.ConversionError{Reason: "target must be a non-nil pointer"}
	}
	return decode(v, rv.Elem())
}

func decode(v jsonfixer.Value, rv reflect.Value) error {
	// A null decodes to the zero value of any target.
	if v.Kind() == jsonfixer.KindNull {
		rv.SetZero()
		return nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decode(v, rv.Elem())

	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return &jsonfixer.ConversionError{Reason: "cannot decode into " + rv.Type().String()}
		}
		nv, err := native(v)
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(nv))
		return nil

	case reflect.Bool:
		b, ok := v.(jsonfixer.Bool)
		if !ok {
			return mismatch(v, rv)
		}
		rv.SetBool(bool(b))
		return nil

	case reflect.String:
		s, ok := v.(jsonfixer.String)
		if !ok {
			return mismatch(v, rv)
		}
		rv.SetString(string(s))
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := v.(jsonfixer.Number)
		if !ok {
			return mismatch(v, rv)
		}
		z, ok := n.Int64()
		if !ok || rv.OverflowInt(z) {
			return &jsonfixer.ConversionError{Reason: "number " + n.Text() + " does not fit in " + rv.Type().String()}
		}
		rv.SetInt(z)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := v.(jsonfixer.Number)
		if !ok {
			return mismatch(v, rv)
		}
		z, ok := n.Int64()
		if !ok || z < 0 || rv.OverflowUint(uint64(z)) {
			return &jsonfixer.ConversionError{Reason: "number " + n.Text() + " does not fit in " + rv.Type().String()}
		}
		rv.SetUint(uint64(z))
		return nil

	case reflect.Float32, reflect.Float64:
		n, ok := v.(jsonfixer.Number)
		if !ok {
			return mismatch(v, rv)
		}
		rv.SetFloat(n.Float64())
		return nil

	case reflect.Slice:
		a, ok := v.(jsonfixer.Array)
		if !ok {
			return mismatch(v, rv)
		}
		out := reflect.MakeSlice(rv.Type(), len(a), len(a))
		for i, el := range a {
			if err := decode(el, out.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil

	case reflect.Array:
		a, ok := v.(jsonfixer.Array)
		if !ok {
			return mismatch(v, rv)
		}
		if len(a) > rv.Len() {
			return &jsonfixer.ConversionError{Reason: "array too long for " + rv.Type().String()}
		}
		for i, el := range a {
			if err := decode(el, rv.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		o, ok := v.(jsonfixer.Object)
		if !ok {
			return mismatch(v, rv)
		}
		if rv.Type().Key().Kind() != reflect.String {
			return &jsonfixer.ConversionError{Reason: "unsupported map key type " + rv.Type().Key().String()}
		}
		out := reflect.MakeMapWithSize(rv.Type(), o.Len())
		for _, m := range o {
			ev := reflect.New(rv.Type().Elem()).Elem()
			if err := decode(m.Value, ev); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(m.Key).Convert(rv.Type().Key()), ev)
		}
		rv.Set(out)
		return nil

	case reflect.Struct:
		o, ok := v.(jsonfixer.Object)
		if !ok {
			return mismatch(v, rv)
		}
		for _, m := range o {
			fv := findField(rv, m.Key)
			if !fv.IsValid() {
				continue
			}
			if err := decode(m.Value, fv); err != nil {
				return err
			}
		}
		return nil
	}
	return &jsonfixer.ConversionError{Reason: "cannot decode into " + rv.Type().String()}
}

// findField locates the struct field a member key binds to, or an invalid
// value if none matches.
func findField(rv reflect.Value, key string) reflect.Value {
	rt := rv.Type()
	camel := strcase.ToCamel(key)
	fold := -1
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tag, ok := sf.Tag.Lookup("json"); ok {
			name, _, _ := strings.Cut(tag, ",")
			if name == key {
				return rv.Field(i)
			}
			if name != "" {
				continue // an explicit tag suppresses name matching
			}
		}
		if sf.Name == key || sf.Name == camel {
			return rv.Field(i)
		}
		if fold < 0 && strings.EqualFold(sf.Name, key) {
			fold = i
		}
	}
	if fold >= 0 {
		return rv.Field(fold)
	}
	return reflect.Value{}
}

// native converts v to the untyped Go representation used for interface{}
// targets: nil, bool, float64, string, []any, or map[string]any.
func native(v jsonfixer.Value) (any, error) {
	switch t := v.(type) {
	case jsonfixer.Null:
		return nil, nil
	case jsonfixer.Bool:
		return bool(t), nil
	case jsonfixer.Number:
		return t.Float64(), nil
	case jsonfixer.String:
		return string(t), nil
	case jsonfixer.Array:
		out := make([]any, len(t))
		for i, el := range t {
			nv, err := native(el)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case jsonfixer.Object:
		out := make(map[string]any, t.Len())
		for _, m := range t {
			nv, err := native(m.Value)
			if err != nil {
				return nil, err
			}
			out[m.Key] = nv
		}
		return out, nil
	}
	return nil, &jsonfixer.ConversionError{Reason: "unknown value kind " + v.Kind().String()}
}

func mismatch(v jsonfixer.Value, rv reflect.Value) error {
	return &jsonfixer.ConversionError{
		Reason: "cannot decode " + v.Kind().String() + " into " + rv.Type().String(),
	}
}

// Fixed repairs input and decodes the resulting value into a T.
func Fixed[T any](input string) (T, error) {
	var out T
	v, err := jsonfixer.Parse(input)
	if err != nil {
		return out, err
	}
	if err := FromValue(v, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Marshal converts a Go value to JSON text rendered under cfg.
func Marshal(v any, cfg jsonfixer.Config) (string, error) {
	jv, err := ToValue(v)
	if err != nil {
		return "", err
	}
	return jsonfixer.Render(jv, cfg), nil
}
