// Package evaluator implements halcon's tree-walking evaluator: a recursive
// Eval over the AST, threading an Environment, short-circuiting on Error and
// on Return exactly as the language's errors-as-values design requires.
package evaluator

import (
	"fmt"

	"github.com/epichalcon/halcon-language/ast"
	"github.com/epichalcon/halcon-language/environment"
	"github.com/epichalcon/halcon-language/object"
)

// Singletons avoid allocating a fresh Boolean/Null for every evaluation
// step; they are safe to share because these values are immutable.
var (
	NULL  = &object.Null{}
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
)

// Evaluator holds the environment threaded through recursive evaluation.
// Function calls temporarily swap Env to the call's freshly enclosed scope
// and restore the caller's scope before returning.
type Evaluator struct {
	Env *environment.Environment
}

// New builds an Evaluator with a fresh top-level Environment.
func New() *Evaluator {
	return &Evaluator{Env: environment.New()}
}

// Eval dispatches on the concrete AST node type, evaluating it in the
// Evaluator's current environment.
func (e *Evaluator) Eval(node ast.Node) object.Value {
	switch node := node.(type) {
	case *ast.Program:
		return e.evalProgram(node)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression)
	case *ast.BlockStatement:
		return e.evalBlockStatement(node)
	case *ast.LetStatement:
		val := e.Eval(node.Value)
		if isError(val) {
			return val
		}
		e.Env.Set(node.Name.Value, val)
		return val
	case *ast.ReturnStatement:
		val := e.Eval(node.ReturnValue)
		if isError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}
	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *ast.Boolean:
		return nativeBoolToBooleanObject(node.Value)
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}
	case *ast.PrefixExpression:
		right := e.Eval(node.Right)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)
	case *ast.InfixExpression:
		left := e.Eval(node.Left)
		if isError(left) {
			return left
		}
		right := e.Eval(node.Right)
		if isError(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)
	case *ast.IfExpression:
		return e.evalIfExpression(node)
	case *ast.Identifier:
		return e.evalIdentifier(node)
	case *ast.FunctionLiteral:
		return &Function{Parameters: node.Parameters, Body: node.Body, Env: e.Env}
	case *ast.CallExpression:
		return e.evalCallExpression(node)
	case *ast.ArrayLiteral:
		elements := e.evalExpressions(node.Elements)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return &object.Array{Elements: elements}
	case *ast.DictLiteral:
		return e.evalDictLiteral(node)
	case *ast.IndexExpression:
		left := e.Eval(node.Left)
		if isError(left) {
			return left
		}
		index := e.Eval(node.Index)
		if isError(index) {
			return index
		}
		return evalIndexExpression(left, index)
	case *ast.Assignation:
		return e.evalAssignation(node)
	case *ast.PostIncrement:
		return e.evalPostStep(node.Id, 1)
	case *ast.PostDecrement:
		return e.evalPostStep(node.Id, -1)
	case *ast.Break:
		return NULL
	case *ast.WhileStatement, *ast.ForStatement, *ast.LoopStatement:
		return newErrorf("loops are not supported")
	default:
		return newErrorf("unknown node type: %T", node)
	}
}

func (e *Evaluator) evalProgram(program *ast.Program) object.Value {
	var result object.Value = NULL
	for _, stmt := range program.Statements {
		result = e.Eval(stmt)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}
	return result
}

func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement) object.Value {
	var result object.Value = NULL
	for _, stmt := range block.Statements {
		result = e.Eval(stmt)

		if result != nil {
			t := result.Type()
			if t == object.RETURN_VALUE_OBJ || t == object.ERROR_OBJ {
				return result
			}
		}
	}
	return result
}

func (e *Evaluator) evalExpressions(exprs []ast.Expression) []object.Value {
	var result []object.Value
	for _, expr := range exprs {
		evaluated := e.Eval(expr)
		if isError(evaluated) {
			return []object.Value{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}

func (e *Evaluator) evalIfExpression(ie *ast.IfExpression) object.Value {
	cond := e.Eval(ie.Condition)
	if isError(cond) {
		return cond
	}
	if isTruthy(cond) {
		return e.Eval(ie.Consequence)
	}
	for _, branch := range ie.Elifs {
		branchCond := e.Eval(branch.Condition)
		if isError(branchCond) {
			return branchCond
		}
		if isTruthy(branchCond) {
			return e.Eval(branch.Consequence)
		}
	}
	if ie.Alternative != nil {
		return e.Eval(ie.Alternative)
	}
	return NULL
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier) object.Value {
	if val, ok := e.Env.Get(node.Value); ok {
		return val
	}
	if builtin, ok := builtins[node.Value]; ok {
		return builtin
	}
	return newErrorf("identifier not found: %s", node.Value)
}

func (e *Evaluator) evalCallExpression(node *ast.CallExpression) object.Value {
	fn := e.Eval(node.Function)
	if isError(fn) {
		return fn
	}
	args := e.evalExpressions(node.Arguments)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}
	return e.applyFunction(fn, args)
}

func (e *Evaluator) applyFunction(fn object.Value, args []object.Value) object.Value {
	switch fn := fn.(type) {
	case *Function:
		extendedEnv := environment.NewEnclosed(fn.Env)
		for i, param := range fn.Parameters {
			if i < len(args) {
				extendedEnv.Set(param.Value, args[i])
			}
		}

		callerEnv := e.Env
		e.Env = extendedEnv
		evaluated := e.Eval(fn.Body)
		e.Env = callerEnv

		if returnValue, ok := evaluated.(*object.ReturnValue); ok {
			return returnValue.Value
		}
		return evaluated
	case *object.Builtin:
		return fn.Fn(args...)
	default:
		return newErrorf("not a function %s", fn.Type())
	}
}

func (e *Evaluator) evalDictLiteral(node *ast.DictLiteral) object.Value {
	dict := object.NewDict()
	for _, pair := range node.Pairs {
		key := e.Eval(pair.Key)
		if isError(key) {
			return key
		}
		hashKey, ok := key.(object.Hashable)
		if !ok {
			return newErrorf("unusable as hash key: %s", key.Type())
		}
		value := e.Eval(pair.Value)
		if isError(value) {
			return value
		}
		dict.Pairs[hashKey.HashKey()] = object.DictPair{Key: key, Value: value}
	}
	return dict
}

func (e *Evaluator) evalAssignation(node *ast.Assignation) object.Value {
	val := e.Eval(node.Value)
	if isError(val) {
		return val
	}

	if node.Operation != ast.AssigOp {
		current, ok := e.Env.Get(node.Name.Value)
		if !ok {
			return newErrorf("identifier not found: %s", node.Name.Value)
		}
		combined := evalInfixExpression(compoundOperator(node.Operation), current, val)
		if isError(combined) {
			return combined
		}
		val = combined
	}

	if !e.Env.Assign(node.Name.Value, val) {
		return newErrorf("identifier not found: %s", node.Name.Value)
	}
	return val
}

func compoundOperator(op ast.AssignOperation) string {
	switch op {
	case ast.SumAssignOp:
		return "+"
	case ast.MinusAssignOp:
		return "-"
	case ast.MultAssignOp:
		return "*"
	case ast.DivideAssignOp:
		return "/"
	default:
		return "+"
	}
}

// evalPostStep implements `a++`/`a--` as rebinding `a` to `a + step`.
func (e *Evaluator) evalPostStep(id *ast.Identifier, step int64) object.Value {
	current, ok := e.Env.Get(id.Value)
	if !ok {
		return newErrorf("identifier not found: %s", id.Value)
	}
	intVal, ok := current.(*object.Integer)
	if !ok {
		return newErrorf("unknown operator: %s++", current.Type())
	}
	updated := &object.Integer{Value: intVal.Value + step}
	e.Env.Assign(id.Value, updated)
	return current
}

func nativeBoolToBooleanObject(input bool) *object.Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

func evalPrefixExpression(operator string, right object.Value) object.Value {
	switch operator {
	case "not":
		return nativeBoolToBooleanObject(!isTruthy(right))
	case "-":
		intVal, ok := right.(*object.Integer)
		if !ok {
			return newErrorf("unknown operator: -%s", right.Type())
		}
		return &object.Integer{Value: -intVal.Value}
	default:
		return newErrorf("unknown operator: %s%s", operator, right.Type())
	}
}

func evalInfixExpression(operator string, left, right object.Value) object.Value {
	switch {
	case left.Type() == object.INTEGER_OBJ && right.Type() == object.INTEGER_OBJ:
		return evalIntegerInfixExpression(operator, left.(*object.Integer), right.(*object.Integer))
	case left.Type() == object.STRING_OBJ && right.Type() == object.STRING_OBJ:
		return evalStringInfixExpression(operator, left.(*object.String), right.(*object.String))
	case left.Type() != right.Type():
		return newErrorf("type mismatch: %s %s %s", left.Type(), operator, right.Type())
	case operator == "==":
		return nativeBoolToBooleanObject(left.Inspect() == right.Inspect())
	case operator == "!=":
		return nativeBoolToBooleanObject(left.Inspect() != right.Inspect())
	default:
		return newErrorf("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func evalIntegerInfixExpression(operator string, left, right *object.Integer) object.Value {
	switch operator {
	case "+":
		return &object.Integer{Value: left.Value + right.Value}
	case "-":
		return &object.Integer{Value: left.Value - right.Value}
	case "*":
		return &object.Integer{Value: left.Value * right.Value}
	case "/":
		return &object.Integer{Value: left.Value / right.Value}
	case "%":
		return &object.Integer{Value: left.Value % right.Value}
	case "<":
		return nativeBoolToBooleanObject(left.Value < right.Value)
	case ">":
		return nativeBoolToBooleanObject(left.Value > right.Value)
	case "<=":
		return nativeBoolToBooleanObject(left.Value <= right.Value)
	case ">=":
		return nativeBoolToBooleanObject(left.Value >= right.Value)
	case "==":
		return nativeBoolToBooleanObject(left.Value == right.Value)
	case "!=":
		return nativeBoolToBooleanObject(left.Value != right.Value)
	default:
		return newErrorf("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func evalStringInfixExpression(operator string, left, right *object.String) object.Value {
	if operator != "+" {
		return newErrorf("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
	return &object.String{Value: left.Value + right.Value}
}

func evalIndexExpression(left, index object.Value) object.Value {
	switch {
	case left.Type() == object.ARRAY_OBJ && index.Type() == object.INTEGER_OBJ:
		return evalArrayIndexExpression(left.(*object.Array), index.(*object.Integer))
	case left.Type() == object.DICT_OBJ:
		return evalDictIndexExpression(left.(*object.Dict), index)
	default:
		return newErrorf("index operator not supported: %s", left.Type())
	}
}

func evalArrayIndexExpression(arr *object.Array, index *object.Integer) object.Value {
	i := index.Value
	max := int64(len(arr.Elements))
	if i < 0 || i >= max {
		return newErrorf("index: %d out of bounds: %d", i, max)
	}
	return arr.Elements[i]
}

func evalDictIndexExpression(dict *object.Dict, index object.Value) object.Value {
	key, ok := index.(object.Hashable)
	if !ok {
		return newErrorf("unusable as hash key: %s", index.Type())
	}
	pair, ok := dict.Pairs[key.HashKey()]
	if !ok || pair.Key.Inspect() != index.Inspect() {
		return NULL
	}
	return pair.Value
}

func isTruthy(val object.Value) bool {
	switch val {
	case FALSE, NULL:
		return false
	default:
		return true
	}
}

func isError(val object.Value) bool {
	if val == nil {
		return false
	}
	return val.Type() == object.ERROR_OBJ
}

func newErrorf(format string, args ...any) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, args...)}
}
