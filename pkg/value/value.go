// Package value defines the tagged scalar type that flows through the IKP
// core: every variable the host exposes is narrowed to one of four kinds
// (string, number, boolean, absent) before interpolation or evaluation
// sees it. The host may hold richer representations; the narrowing happens
// once, at the boundary, via FromAny or the Snapshot it builds.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the four value kinds.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "absent"
	}
}

// Value is a tagged scalar. The zero value is Absent.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

// Absent is the missing/unset value.
var Absent = Value{}

// NewString wraps a string.
func NewString(s string) Value { return Value{Kind: KindString, Str: s} }

// NewNumber wraps a float64. Integers and fractional values share this kind.
func NewNumber(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// NewBool wraps a bool.
func NewBool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IsAbsent reports whether v carries no value.
func (v Value) IsAbsent() bool { return v.Kind == KindAbsent }

// Text returns the canonical string form: booleans render as "true"/"false",
// numbers as decimal text (no trailing ".0" for integral values), strings
// as themselves, and Absent as the empty string.
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// Native returns the underlying Go value (string, float64, bool, or nil).
func (v Value) Native() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	default:
		return nil
	}
}

// Truthy reports the value's boolean interpretation: false for Absent,
// zero numbers and empty strings; true otherwise.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindString:
		return v.Str != ""
	case KindNumber:
		return v.Num != 0
	case KindBool:
		return v.Bool
	default:
		return false
	}
}

// Coerce turns a raw string into a typed Value. This is the one canonical
// coercion rule; every call site uses it:
//
//  1. trim whitespace; "true"/"false" (any case) becomes a boolean
//  2. a string containing '.' is tried as a float
//  3. otherwise it is tried as an integer
//  4. anything else stays a string, unchanged
//
// The rule is deliberately lossy: "1e3" has no dot, fails the integer
// parse, and stays a string; "1.5e3" has a dot and parses to 1500.
// Signed forms like "+5" and "-5" parse (strconv accepts the sign).
func Coerce(s string) Value {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "true":
		return NewBool(true)
	case "false":
		return NewBool(false)
	}
	if strings.Contains(trimmed, ".") {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return NewNumber(f)
		}
	} else if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return NewNumber(float64(n))
	}
	return NewString(s)
}

// FromAny narrows an arbitrary host value to a Value. Strings stay strings
// (use Coerce when a typed reading is wanted); unrecognized types are
// stringified so the narrowing is total.
func FromAny(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Absent
	case Value:
		return v
	case string:
		return NewString(v)
	case bool:
		return NewBool(v)
	case float64:
		return NewNumber(v)
	case float32:
		return NewNumber(float64(v))
	case int:
		return NewNumber(float64(v))
	case int8:
		return NewNumber(float64(v))
	case int16:
		return NewNumber(float64(v))
	case int32:
		return NewNumber(float64(v))
	case int64:
		return NewNumber(float64(v))
	case uint:
		return NewNumber(float64(v))
	case uint8:
		return NewNumber(float64(v))
	case uint16:
		return NewNumber(float64(v))
	case uint32:
		return NewNumber(float64(v))
	case uint64:
		return NewNumber(float64(v))
	default:
		return NewString(fmt.Sprint(raw))
	}
}

// Snapshot is a point-in-time, read-only view of the host's variables,
// built fresh for one interpolation/evaluation/action call and never
// retained by the core past that call.
type Snapshot map[string]Value

// Lookup returns the value bound to name, or Absent.
func (s Snapshot) Lookup(name string) Value {
	if s == nil {
		return Absent
	}
	v, ok := s[name]
	if !ok {
		return Absent
	}
	return v
}
