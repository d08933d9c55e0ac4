// Package environment implements halcon's chained name→value scope, shared
// by ordinary block evaluation and by closures capturing their defining
// scope.
package environment

import "github.com/epichalcon/halcon-language/object"

// Environment is a mapping from identifier name to Value, plus an optional
// outer Environment. Lookup walks the chain from innermost to outermost;
// new bindings are always created in the innermost (current) environment.
type Environment struct {
	store map[string]object.Value
	outer *Environment
}

// New creates a top-level Environment with no outer scope.
func New() *Environment {
	return &Environment{store: make(map[string]object.Value)}
}

// NewEnclosed creates an Environment enclosed over outer, used for binding a
// function call's parameters over its captured closure environment. Blocks
// do not get an enclosed Environment; they run in the current one.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]object.Value), outer: outer}
}

// Get looks up name, walking outward through enclosing environments.
func (e *Environment) Get(name string) (object.Value, bool) {
	val, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return val, ok
}

// Set binds name to val in the current (innermost) environment, shadowing
// any binding of the same name in an outer environment.
func (e *Environment) Set(name string, val object.Value) object.Value {
	e.store[name] = val
	return val
}

// Assign rebinds name in the environment where it is already defined,
// walking outward to find it. It reports false if name is not bound
// anywhere in the chain.
func (e *Environment) Assign(name string, val object.Value) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, val)
	}
	return false
}
