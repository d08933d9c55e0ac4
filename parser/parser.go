// Package parser implements halcon's Pratt (top-down operator-precedence)
// parser: a two-token window over the lexer, with prefix and infix parse
// functions dispatched from keyed tables rather than an open-ended visitor
// hierarchy.
package parser

import (
	"fmt"
	"strconv"

	"github.com/epichalcon/halcon-language/ast"
	"github.com/epichalcon/halcon-language/lexer"
)

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser holds the lexer and the current/peek token window, plus the error
// list accumulated while parsing. Parsing never fails fast: a malformed
// statement is skipped and its error recorded.
type Parser struct {
	lex *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []string

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New builds a Parser over l, priming the two-token window.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lex: l, errors: []string{}}

	p.prefixParseFns = make(map[lexer.TokenType]prefixParseFn)
	p.registerPrefixFuncs(p.parseIdentifier, lexer.IDENT_TYPE)
	p.registerPrefixFuncs(p.parseIntegerLiteral, lexer.CONST_INT_TYPE)
	p.registerPrefixFuncs(p.parseBoolean, lexer.TRUE_TYPE, lexer.FALSE_TYPE)
	p.registerPrefixFuncs(p.parseStringLiteral, lexer.CONST_STR_TYPE)
	p.registerPrefixFuncs(p.parsePrefixExpression, lexer.NOT_KEY, lexer.MINUS_OP)
	p.registerPrefixFuncs(p.parseGroupedExpression, lexer.OPAR_DELIM)
	p.registerPrefixFuncs(p.parseIfExpression, lexer.IF_KEY)
	p.registerPrefixFuncs(p.parseFunctionLiteral, lexer.FUN_KEY)
	p.registerPrefixFuncs(p.parseArrayLiteral, lexer.OBRAC_DELIM)
	p.registerPrefixFuncs(p.parseDictLiteral, lexer.OKEY_DELIM)

	p.infixParseFns = make(map[lexer.TokenType]infixParseFn)
	p.registerInfixFuncs(p.parseInfixExpression,
		lexer.EQ_OP, lexer.NEQ_OP, lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.DIV_OP, lexer.MOD_OP, lexer.MULT_OP)
	p.registerInfixFuncs(p.parseCallExpression, lexer.OPAR_DELIM)
	p.registerInfixFuncs(p.parseIndexExpression, lexer.OBRAC_DELIM)
	p.registerInfixFuncs(p.parseAssignation,
		lexer.ASSIG_OP, lexer.SUM_ASIG_OP, lexer.MIN_ASIG_OP, lexer.MUL_ASIG_OP, lexer.DIV_ASIG_OP)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefixFuncs(fn prefixParseFn, toks ...lexer.TokenType) {
	for _, tok := range toks {
		p.prefixParseFns[tok] = fn
	}
}

func (p *Parser) registerInfixFuncs(fn infixParseFn, toks ...lexer.TokenType) {
	for _, tok := range toks {
		p.infixParseFns[tok] = fn
	}
}

// Errors returns the accumulated parse-error list.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	p.errors = append(p.errors, fmt.Sprintf("expected %s, actual %s", t, p.peekToken.Type))
}

func (p *Parser) noPrefixParseFnError(t lexer.TokenType) {
	p.errors = append(p.errors, fmt.Sprintf("No prefix function for %s found", t))
}

func (p *Parser) peekPrecedence() precedence {
	return getPrecedence(p.peekToken.Type)
}

func (p *Parser) curPrecedence() precedence {
	return getPrecedence(p.curToken.Type)
}

// ParseProgram parses the full token stream into a Program, collecting
// errors rather than aborting on the first one.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(lexer.EOF_TYPE) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.LET_KEY:
		return p.parseLetStatement()
	case lexer.RETURN_KEY:
		return p.parseReturnStatement()
	case lexer.BREAK_KEY:
		return p.parseBreakStatement()
	case lexer.WHILE_KEY:
		return p.parseWhileStatement()
	case lexer.FOR_KEY:
		return p.parseForStatement()
	case lexer.LOOP_KEY:
		return p.parseLoopStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseWhileStatement parses the `while (cond) { body }` skeleton
// production. The evaluator never executes a WhileStatement.
func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	if !p.expectPeek(lexer.OPAR_DELIM) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.CPAR_DELIM) {
		return nil
	}
	if !p.expectPeek(lexer.OKEY_DELIM) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// parseForStatement parses the `for (init; cond; post) { body }` skeleton
// production. The evaluator never executes a ForStatement.
func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectPeek(lexer.OPAR_DELIM) {
		return nil
	}
	p.nextToken()
	if !p.curTokenIs(lexer.SEMICOLON_DELIM) {
		stmt.Init = p.parseStatement()
		p.nextToken()
	}

	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.SEMICOLON_DELIM) {
		return nil
	}
	p.nextToken()

	if !p.curTokenIs(lexer.CPAR_DELIM) {
		stmt.Post = p.parseStatement()
	}
	if !p.expectPeek(lexer.CPAR_DELIM) {
		return nil
	}
	if !p.expectPeek(lexer.OKEY_DELIM) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// parseLoopStatement parses the `loop { body }` skeleton production. The
// evaluator never executes a LoopStatement.
func (p *Parser) parseLoopStatement() ast.Statement {
	stmt := &ast.LoopStatement{Token: p.curToken}

	if !p.expectPeek(lexer.OKEY_DELIM) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT_TYPE) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.ASSIG_OP) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()

	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseBreakStatement() ast.Statement {
	stmt := &ast.Break{Token: p.curToken}
	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpression(prec precedence) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(lexer.SEMICOLON_DELIM) && prec < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}
	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(lexer.INC_OP) {
		p.nextToken()
		return &ast.PostIncrement{Token: p.curToken, Id: ident}
	}
	if p.peekTokenIs(lexer.DEC_OP) {
		p.nextToken()
		return &ast.PostDecrement{Token: p.curToken, Id: ident}
	}
	return ident
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("could not parse %q as integer", p.curToken.Literal))
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE_TYPE)}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Token: p.curToken, Left: left, Operator: p.curToken.Literal}
	prec := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(prec)
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.CPAR_DELIM) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curToken}

	if !p.expectPeek(lexer.OPAR_DELIM) {
		return nil
	}
	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.CPAR_DELIM) {
		return nil
	}
	if !p.expectPeek(lexer.OKEY_DELIM) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()

	for p.peekTokenIs(lexer.ELIF_KEY) {
		p.nextToken()
		branch := ast.ElifBranch{}

		if !p.expectPeek(lexer.OPAR_DELIM) {
			return nil
		}
		p.nextToken()
		branch.Condition = p.parseExpression(LOWEST)

		if !p.expectPeek(lexer.CPAR_DELIM) {
			return nil
		}
		if !p.expectPeek(lexer.OKEY_DELIM) {
			return nil
		}
		branch.Consequence = p.parseBlockStatement()
		expr.Elifs = append(expr.Elifs, branch)
	}

	if p.peekTokenIs(lexer.ELSE_KEY) {
		p.nextToken()
		if !p.expectPeek(lexer.OKEY_DELIM) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}
	return expr
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}
	p.nextToken()

	for !p.curTokenIs(lexer.CKEY_DELIM) && !p.curTokenIs(lexer.EOF_TYPE) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(lexer.OPAR_DELIM) {
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(lexer.OKEY_DELIM) {
		return nil
	}
	lit.Body = p.parseBlockStatement()
	return lit
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(lexer.CPAR_DELIM) {
		p.nextToken()
		return identifiers
	}

	p.nextToken()
	identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(lexer.COMA_DELIM) {
		p.nextToken()
		p.nextToken()
		identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(lexer.CPAR_DELIM) {
		return nil
	}
	return identifiers
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Function: function}
	expr.Arguments = p.parseExpressionList(lexer.CPAR_DELIM)
	return expr
}

func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(lexer.COMA_DELIM) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.curToken}
	arr.Elements = p.parseExpressionList(lexer.CBRAC_DELIM)
	return arr
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.curToken, Left: left}
	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.CBRAC_DELIM) {
		return nil
	}
	return expr
}

func (p *Parser) parseDictLiteral() ast.Expression {
	dict := &ast.DictLiteral{Token: p.curToken}

	for !p.peekTokenIs(lexer.CKEY_DELIM) {
		p.nextToken()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(lexer.COLON_DELIM) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)

		dict.Pairs = append(dict.Pairs, ast.DictPair{Key: key, Value: value})

		if !p.peekTokenIs(lexer.CKEY_DELIM) && !p.expectPeek(lexer.COMA_DELIM) {
			return nil
		}
	}

	if !p.expectPeek(lexer.CKEY_DELIM) {
		return nil
	}
	return dict
}

var assignOps = map[lexer.TokenType]ast.AssignOperation{
	lexer.ASSIG_OP:    ast.AssigOp,
	lexer.SUM_ASIG_OP: ast.SumAssignOp,
	lexer.MIN_ASIG_OP: ast.MinusAssignOp,
	lexer.MUL_ASIG_OP: ast.MultAssignOp,
	lexer.DIV_ASIG_OP: ast.DivideAssignOp,
}

func (p *Parser) parseAssignation(left ast.Expression) ast.Expression {
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.errors = append(p.errors, fmt.Sprintf("%s cant be assigned to", left.String()))
		return left
	}

	assign := &ast.Assignation{Token: p.curToken, Name: ident, Operation: assignOps[p.curToken.Type]}
	p.nextToken()
	assign.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON_DELIM) {
		p.nextToken()
	}
	return assign
}
