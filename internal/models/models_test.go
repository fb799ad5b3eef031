package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "boolean", KindBool.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "object", KindObject.String())
}

func TestValue_Render(t *testing.T) {
	cases := []struct {
		name  string
		value Value
		want  string
	}{
		{"null", Null(), "null"},
		{"true", Boolean(true), "true"},
		{"false", Boolean(false), "false"},
		{"integer", Number(json.Number("42")), "42"},
		{"decimal keeps literal form", Number(json.Number("1.50")), "1.50"},
		{"string", String("hello"), "hello"},
		{"array renders as marker", Array(Number(json.Number("1"))), "[array]"},
		{"object renders as marker", ObjectValue(NewObject()), "[object]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.value.Render())
		})
	}
}

func TestObject_InsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("gamma", Number(json.Number("1")))
	obj.Set("alpha", Number(json.Number("2")))
	obj.Set("beta", Number(json.Number("3")))

	assert.Equal(t, []string{"gamma", "alpha", "beta"}, obj.Keys())
	assert.Equal(t, 3, obj.Len())
}

func TestObject_SetExistingKeyKeepsPosition(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Number(json.Number("1")))
	obj.Set("b", Number(json.Number("2")))
	obj.Set("a", Number(json.Number("9")))

	assert.Equal(t, []string{"a", "b"}, obj.Keys())

	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, json.Number("9"), v.Num)
}

func TestObject_GetMissingKey(t *testing.T) {
	obj := NewObject()
	obj.Set("present", Null())

	_, ok := obj.Get("absent")
	assert.False(t, ok)
	assert.False(t, obj.Has("absent"))
	assert.True(t, obj.Has("present"))
}
