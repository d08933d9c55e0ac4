package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epichalcon/halcon-language/object"
)

func TestStringHashKey_EqualBytesHashEqual(t *testing.T) {
	hello1 := &object.String{Value: "Hello World"}
	hello2 := &object.String{Value: "Hello World"}
	diff := &object.String{Value: "My name is johnny"}

	assert.Equal(t, hello1.HashKey(), hello2.HashKey())
	assert.NotEqual(t, hello1.HashKey(), diff.HashKey())
}

func TestIntegerHashKey_EqualValuesHashEqual(t *testing.T) {
	one1 := &object.Integer{Value: 1}
	one2 := &object.Integer{Value: 1}
	two := &object.Integer{Value: 2}

	assert.Equal(t, one1.HashKey(), one2.HashKey())
	assert.NotEqual(t, one1.HashKey(), two.HashKey())
}

func TestIsHashable(t *testing.T) {
	assert.True(t, object.IsHashable(&object.Integer{Value: 1}))
	assert.True(t, object.IsHashable(&object.Boolean{Value: true}))
	assert.True(t, object.IsHashable(&object.String{Value: "x"}))
	assert.True(t, object.IsHashable(&object.Null{}))

	assert.False(t, object.IsHashable(&object.Array{}))
	assert.False(t, object.IsHashable(object.NewDict()))
	assert.False(t, object.IsHashable(&object.Builtin{}))
	assert.False(t, object.IsHashable(&object.ReturnValue{Value: &object.Null{}}))
	assert.False(t, object.IsHashable(&object.Error{Message: "boom"}))
}

func TestError_Inspect(t *testing.T) {
	err := &object.Error{Message: "identifier not found: foobar"}
	assert.Equal(t, "ERROR: identifier not found: foobar", err.Inspect())
}

func TestArray_Inspect(t *testing.T) {
	arr := &object.Array{Elements: []object.Value{
		&object.Integer{Value: 1},
		&object.Integer{Value: 2},
		&object.Integer{Value: 3},
	}}
	assert.Equal(t, "[1, 2, 3]", arr.Inspect())
}
