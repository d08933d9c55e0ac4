package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epichalcon/halcon-language/ast"
	"github.com/epichalcon/halcon-language/lexer"
	"github.com/epichalcon/halcon-language/parser"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.NewLexer(input)
	p := parser.New(&l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parser errors for %q: %v", input, p.Errors())
	require.NotNil(t, program)
	return program
}

func TestLetStatements(t *testing.T) {
	program := parseProgram(t, "let x = 5; let y = true; let foobar = y;")
	require.Len(t, program.Statements, 3)

	names := []string{"x", "y", "foobar"}
	for i, name := range names {
		stmt, ok := program.Statements[i].(*ast.LetStatement)
		require.True(t, ok)
		assert.Equal(t, name, stmt.Name.Value)
	}
}

func TestReturnStatement(t *testing.T) {
	program := parseProgram(t, "return 5; return 10;")
	require.Len(t, program.Statements, 2)
	for _, s := range program.Statements {
		_, ok := s.(*ast.ReturnStatement)
		assert.True(t, ok)
	}
}

func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"a + b * c", "(a + (b * c))"},
		{"a + b + c", "((a + b) + c)"},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", "((((5 + (10 * 2)) + (15 / 3)) * 2) + (-10))"},
		{"not not a", "(not (not a))"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Len(t, program.Statements, 1)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		assert.Equal(t, tt.expected, stmt.Expression.String())
	}
}

func TestIfElifElseExpression(t *testing.T) {
	input := `if (x < y) { x } elif (x > y) { y } else { 0 }`
	program := parseProgram(t, input)
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	assert.Len(t, expr.Elifs, 1)
	assert.NotNil(t, expr.Alternative)
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "fun(x, y) { x + y; }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "y", fn.Parameters[1].Value)
	require.Len(t, fn.Body.Statements, 1)
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	ident := call.Function.(*ast.Identifier)
	assert.Equal(t, "add", ident.Value)
	require.Len(t, call.Arguments, 3)
}

func TestArrayLiteralParsing(t *testing.T) {
	program := parseProgram(t, "[1, 2 * 2, 3 + 3]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	arr, ok := stmt.Expression.(*ast.ArrayLiteral)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
}

func TestIndexExpressionParsing(t *testing.T) {
	program := parseProgram(t, "myArray[1 + 1]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	idx, ok := stmt.Expression.(*ast.IndexExpression)
	require.True(t, ok)
	assert.Equal(t, "myArray", idx.Left.(*ast.Identifier).Value)
}

func TestDictLiteralParsing(t *testing.T) {
	program := parseProgram(t, `{"one": 1, "two": 2}`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	dict, ok := stmt.Expression.(*ast.DictLiteral)
	require.True(t, ok)
	require.Len(t, dict.Pairs, 2)
}

func TestAssignationParsing(t *testing.T) {
	program := parseProgram(t, "x = 5; y += 1;")
	require.Len(t, program.Statements, 2)

	assign1 := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.Assignation)
	assert.Equal(t, "x", assign1.Name.Value)
	assert.Equal(t, ast.AssigOp, assign1.Operation)

	assign2 := program.Statements[1].(*ast.ExpressionStatement).Expression.(*ast.Assignation)
	assert.Equal(t, ast.SumAssignOp, assign2.Operation)
}

func TestAssignationToNonIdentifierIsAnError(t *testing.T) {
	l := lexer.NewLexer("5 = 5;")
	p := parser.New(&l)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0], "cant be assigned to")
}

func TestParserErrors_NoPrefixFn(t *testing.T) {
	l := lexer.NewLexer(")")
	p := parser.New(&l)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
}

func TestBreakStatement(t *testing.T) {
	program := parseProgram(t, "break;")
	require.Len(t, program.Statements, 1)
	_, ok := program.Statements[0].(*ast.Break)
	assert.True(t, ok)
}
