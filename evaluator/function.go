package evaluator

import (
	"strings"

	"github.com/epichalcon/halcon-language/ast"
	"github.com/epichalcon/halcon-language/environment"
	"github.com/epichalcon/halcon-language/object"
)

// Function is the closure value produced by evaluating a FunctionLiteral.
// It lives in the evaluator package rather than object, because it needs to
// reference both an AST body and a captured *environment.Environment; object
// cannot import environment without environment importing object back.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *environment.Environment
}

func (f *Function) Type() object.Type { return object.FUNCTION_OBJ }

func (f *Function) Inspect() string {
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	var out strings.Builder
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {")
	out.WriteString(f.Body.String())
	out.WriteString("}")
	return out.String()
}
