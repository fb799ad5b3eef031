// Package models defines the document tree shared by the parser, the
// comparator and the formatters. A Value is a tagged variant over the six
// JSON shapes; objects preserve the key order of the source document.
package models

import (
	"encoding/json"
	"strconv"
)

// Kind identifies which JSON shape a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON type name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a single JSON value. Exactly one payload field is meaningful,
// selected by Kind. Values are built once by the parser and treated as
// immutable afterwards; the comparator never mutates its inputs.
type Value struct {
	Kind Kind
	Bool bool
	Num  json.Number
	Str  string
	Arr  []Value
	Obj  *Object
}

// Null returns the JSON null value.
func Null() Value { return Value{Kind: KindNull} }

// Boolean wraps a bool in a Value.
func Boolean(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Number wraps a json.Number in a Value.
func Number(n json.Number) Value { return Value{Kind: KindNumber, Num: n} }

// String wraps a string in a Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Array wraps a slice of Values in a Value.
func Array(vs ...Value) Value { return Value{Kind: KindArray, Arr: vs} }

// ObjectValue wraps an Object in a Value.
func ObjectValue(o *Object) Value { return Value{Kind: KindObject, Obj: o} }

// Render returns the display form of a Value. Scalars render as their
// literal text; containers render as a type marker, never as a serialized
// blob.
func (v Value) Render() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNumber:
		return v.Num.String()
	case KindString:
		return v.Str
	case KindArray:
		return "[array]"
	case KindObject:
		return "[object]"
	default:
		return "unknown"
	}
}

// Object is an insertion-ordered mapping of string keys to Values.
// The zero value is not usable; construct with NewObject.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set stores a value under key. A key seen before keeps its original
// position; its value is replaced, matching how JSON parsers treat
// duplicate member names (last value wins).
func (o *Object) Set(key string, v Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key and whether the key is present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Keys returns the object's keys in insertion order. The returned slice is
// owned by the Object and must not be modified.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}
