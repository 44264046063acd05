// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON values, and a parser
// that constructs syntax trees from JSON source.
package ast

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/creachadair/jptr"
)

// A Value is an arbitrary JSON value. The concrete types of values in this
// package are Object, Array, Quoted, String, Number, Bool, and the Null
// singleton.
type Value interface {
	// JSON renders the value as JSON source text.
	JSON() string

	// String renders a human-readable summary of the value.
	String() string
}

// An Object is a collection of key-value members. Member order is the order
// in which the members were added, and is preserved by serialization.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len returns the number of members in the object.
func (o Object) Len() int { return len(o) }

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// JSON renders o as JSON source text.
func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(o[0].JSON())
	for _, m := range o[1:] {
		sb.WriteByte(',')
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key string

	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

// JSON renders the member as JSON source text.
func (m *Member) JSON() string {
	return jptr.Quote(m.Key) + ":" + m.Value.JSON()
}

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// An Array is a sequence of values.
type Array []Value

// Len returns the number of elements in the array.
func (a Array) Len() int { return len(a) }

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// JSON renders a as JSON source text.
func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a[0].JSON())
	for _, v := range a[1:] {
		sb.WriteByte(',')
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A Quoted is a quoted string value, as it appeared in JSON source text.
type Quoted struct{ text []byte }

// NewQuoted constructs a Quoted value encoding the plain string s.
func NewQuoted(s string) Quoted { return Quoted{text: []byte(jptr.Quote(s))} }

// Unquote returns the unescaped content of the quoted string.
func (q Quoted) Unquote() String {
	dec, err := jptr.Unquote(q.text)
	if err != nil {
		panic(err)
	}
	return String(dec)
}

// Len returns the length in bytes of the unquoted content of q.
func (q Quoted) Len() int { return len(q.Unquote()) }

// JSON renders q as JSON source text.
func (q Quoted) JSON() string { return string(q.text) }

func (q Quoted) String() string { return string(q.Unquote()) }

// A String is an unquoted string value.
type String string

// Quote converts s into its quoted representation.
func (s String) Quote() Quoted { return NewQuoted(string(s)) }

// Len returns the length in bytes of s.
func (s String) Len() int { return len(s) }

// JSON renders s as JSON source text.
func (s String) JSON() string { return jptr.Quote(string(s)) }

func (s String) String() string { return string(s) }

// A Number is a numeric value, as it appeared in JSON source text.
type Number struct{ text []byte }

// Int constructs a Number with the given integer value.
func Int(z int64) Number { return Number{text: strconv.AppendInt(nil, z, 10)} }

// Float constructs a Number with the given floating-point value.
func Float(f float64) Number { return Number{text: strconv.AppendFloat(nil, f, 'g', -1, 64)} }

// IsInt reports whether the number is representable as an integer.
func (n Number) IsInt() bool {
	for _, b := range n.text {
		if b == '.' || b == 'e' || b == 'E' {
			return false
		}
	}
	return true
}

// Int64 returns the value of the number as an int64. It panics if the text
// of n does not encode an integer.
func (n Number) Int64() int64 {
	v, err := strconv.ParseInt(string(n.text), 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Float64 returns the value of the number as a float64.
func (n Number) Float64() float64 {
	v, err := strconv.ParseFloat(string(n.text), 64)
	if err != nil {
		panic(err)
	}
	return v
}

// JSON renders n as JSON source text.
func (n Number) JSON() string { return string(n.text) }

func (n Number) String() string { return string(n.text) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Constants for the Boolean values.
const (
	True  Bool = true
	False Bool = false
)

// Value reports the truth value of b.
func (b Bool) Value() bool { return bool(b) }

// JSON renders b as JSON source text.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) String() string { return b.JSON() }

type nullValue struct{}

// Null is the null JSON value. Compare against Null directly to test a Value
// for nullity.
var Null Value = nullValue{}

func (nullValue) JSON() string   { return "null" }
func (nullValue) String() string { return "null" }

// ToValue converts a plain Go value of a compatible type into an ast.Value.
// The types accepted are nil, bool, string, integer and floating-point types,
// []any, map[string]any, and any concrete Value. Map keys are emitted in
// lexicographic order. ToValue panics if v does not have one of these types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make(Object, len(keys))
		for i, key := range keys {
			out[i] = Field(key, ToValue(t[key]))
		}
		return out
	default:
		panic(fmt.Sprintf("no value conversion for %T", v))
	}
}
