package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueAccessors(t *testing.T) {
	i, ok := Int(7).AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(7), i)

	_, ok = Int(7).AsString()
	assert.False(t, ok)

	f, ok := Float(1.5).AsFloat64()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	s, ok := String("NOUN").AsString()
	assert.True(t, ok)
	assert.Equal(t, "NOUN", s)

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	a, ok := Array(Int(1), Int(2)).AsArray()
	assert.True(t, ok)
	assert.Len(t, a, 2)

	r, ok := Ref(42).AsRef()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), r)

	assert.True(t, Null().IsNull())
	assert.True(t, Value{}.IsNull())
	assert.False(t, Int(0).IsNull())
}

func TestValueKey(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		key  string
	}{
		{"Null", Null(), "null"},
		{"Int", Int(-3), "i:-3"},
		{"String", String("x"), "s:x"},
		{"BoolTrue", Bool(true), "b:1"},
		{"BoolFalse", Bool(false), "b:0"},
		{"EmptyArray", Array(), "a:"},
		{"Array", Array(Int(1), String("y")), "a:i:1\x1fs:y"},
		{"Ref", Ref(9), "r:9"},
		{"Invalid", Value{}, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.v.Key())
		})
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, String("a").Equal(String("a")))
	assert.False(t, String("a").Equal(String("b")))
	assert.False(t, Int(1).Equal(Float(1)))
	assert.True(t, Array(Int(1)).Equal(Array(Int(1))))
}

func TestValueCloneIsDeep(t *testing.T) {
	orig := Array(Int(1), Array(Int(2)))
	clone := orig.Clone()

	orig.A[0] = Int(100)
	orig.A[1].A[0] = Int(200)

	assert.True(t, clone.Equal(Array(Int(1), Array(Int(2)))))
}

func TestFieldTypeAccepts(t *testing.T) {
	tests := []struct {
		ft   FieldType
		k    Kind
		want bool
	}{
		{FieldTypeAny, KindString, true},
		{FieldTypeAny, KindInvalid, false},
		{FieldTypeInt, KindInt, true},
		{FieldTypeInt, KindFloat, false},
		{FieldTypeFloat, KindInt, true},
		{FieldTypeString, KindBool, false},
		{FieldTypeBool, KindBool, true},
		{FieldTypeArray, KindArray, true},
		{FieldTypeRef, KindRef, true},
		{FieldTypeRef, KindInt, false},
		{FieldTypeString, KindNull, true},
		{FieldType(99), KindInt, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ft.Accepts(tt.k), "%s accepts %s", tt.ft, tt.k)
	}
}

func TestFieldTypeString(t *testing.T) {
	assert.Equal(t, "String", FieldTypeString.String())
	assert.Equal(t, "Ref", FieldTypeRef.String())
	assert.Equal(t, "Unknown", FieldType(99).String())
}
