package evaluator

import "github.com/epichalcon/halcon-language/object"

// builtins is the name-keyed registry consulted by evalIdentifier when a
// name is not bound in the environment chain.
var builtins = map[string]*object.Builtin{
	"len":   {Fn: builtinLen},
	"first": {Fn: builtinFirst},
	"last":  {Fn: builtinLast},
	"rest":  {Fn: builtinRest},
	"push":  {Fn: builtinPush},
}

func wrongArity(got, want int) *object.Error {
	return newErrorf("wrong number of arguments. got: %d, want: %d", got, want)
}

func notSupported(name string, v object.Value) *object.Error {
	return newErrorf("argument to %s not supported, got %s", name, v.Type())
}

func builtinLen(args ...object.Value) object.Value {
	if len(args) != 1 {
		return wrongArity(len(args), 1)
	}
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}
	default:
		return newErrorf("argument to len not supported, got %s", arg.Type())
	}
}

func builtinFirst(args ...object.Value) object.Value {
	if len(args) != 1 {
		return wrongArity(len(args), 1)
	}
	switch arg := args[0].(type) {
	case *object.String:
		if len(arg.Value) == 0 {
			return NULL
		}
		return &object.String{Value: string(arg.Value[0])}
	case *object.Array:
		if len(arg.Elements) == 0 {
			return NULL
		}
		return arg.Elements[0]
	default:
		return notSupported("first", arg)
	}
}

func builtinLast(args ...object.Value) object.Value {
	if len(args) != 1 {
		return wrongArity(len(args), 1)
	}
	switch arg := args[0].(type) {
	case *object.String:
		n := len(arg.Value)
		if n == 0 {
			return NULL
		}
		return &object.String{Value: string(arg.Value[n-1])}
	case *object.Array:
		n := len(arg.Elements)
		if n == 0 {
			return NULL
		}
		return arg.Elements[n-1]
	default:
		return notSupported("last", arg)
	}
}

func builtinRest(args ...object.Value) object.Value {
	if len(args) != 1 {
		return wrongArity(len(args), 1)
	}
	switch arg := args[0].(type) {
	case *object.String:
		if len(arg.Value) == 0 {
			return NULL
		}
		return &object.String{Value: arg.Value[1:]}
	case *object.Array:
		n := len(arg.Elements)
		if n == 0 {
			return NULL
		}
		rest := make([]object.Value, n-1)
		copy(rest, arg.Elements[1:])
		return &object.Array{Elements: rest}
	default:
		return notSupported("rest", arg)
	}
}

func builtinPush(args ...object.Value) object.Value {
	if len(args) != 2 {
		return wrongArity(len(args), 2)
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		// push's error on a non-array first argument mirrors first's.
		return notSupported("first", args[0])
	}
	newElems := make([]object.Value, len(arr.Elements), len(arr.Elements)+1)
	copy(newElems, arr.Elements)
	newElems = append(newElems, args[1])
	return &object.Array{Elements: newElems}
}
