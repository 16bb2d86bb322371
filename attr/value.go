package attr

import (
	"math"
	"strconv"
	"strings"
	"unique"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
	// KindArray represents an array value.
	KindArray
	// KindRef represents a reference to another entry by TID.
	KindRef
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindArray:
		return "Array"
	case KindRef:
		return "Ref"
	default:
		return "Invalid"
	}
}

// Value is a small typed attribute value.
//
// Strings are interned: annotation attributes such as part-of-speech tags or
// entity labels repeat heavily across a document.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	s    unique.Handle[string]
	B    bool
	A    []Value
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Array returns an array Value.
func Array(v ...Value) Value { return Value{Kind: KindArray, A: v} }

// Ref returns a Value pointing at another entry. The id is stored as-is; the
// store does not keep references alive.
func Ref(tid uint64) Value { return Value{Kind: KindRef, I64: int64(tid)} }

// IsNull reports whether v is null or the zero Value.
func (v Value) IsNull() bool { return v.Kind == KindNull || v.Kind == KindInvalid }

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsArray returns the array value if Kind is KindArray.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.A, true
}

// AsRef returns the referenced id if Kind is KindRef.
func (v Value) AsRef() (uint64, bool) {
	if v.Kind != KindRef {
		return 0, false
	}
	return uint64(v.I64), true
}

// Key returns a stable string representation, usable as a map key.
func (v Value) Key() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.s.Value()
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	case KindArray:
		if len(v.A) == 0 {
			return "a:"
		}
		parts := make([]string, len(v.A))
		for i := range v.A {
			parts[i] = v.A[i].Key()
		}
		return "a:" + strings.Join(parts, "\x1f")
	case KindRef:
		return "r:" + strconv.FormatUint(uint64(v.I64), 10)
	default:
		return "invalid"
	}
}

// Equal reports whether v and o hold the same kind and value.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	return v.Key() == o.Key()
}

// Clone returns a deep copy of v. Arrays are copied recursively so the store
// never aliases caller-owned slices.
func (v Value) Clone() Value {
	if v.Kind != KindArray || len(v.A) == 0 {
		return v
	}

	arrayCopy := make([]Value, len(v.A))
	for i := range v.A {
		arrayCopy[i] = v.A[i].Clone()
	}

	return Value{Kind: v.Kind, A: arrayCopy}
}
