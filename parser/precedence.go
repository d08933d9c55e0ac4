package parser

import "github.com/epichalcon/halcon-language/lexer"

// precedence is the binding power used by the Pratt loop to decide whether
// to keep folding infix expressions to the left.
type precedence int

const (
	LOWEST precedence = iota
	ASSIG
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
	INDEX
)

// precedences maps an operator token to its binding power. Any token absent
// from this table binds at LOWEST, which stops the Pratt loop from folding
// further.
var precedences = map[lexer.TokenType]precedence{
	lexer.ASSIG_OP:    ASSIG,
	lexer.SUM_ASIG_OP:  ASSIG,
	lexer.MIN_ASIG_OP:  ASSIG,
	lexer.MUL_ASIG_OP:  ASSIG,
	lexer.DIV_ASIG_OP:  ASSIG,
	lexer.EQ_OP:        EQUALS,
	lexer.NEQ_OP:       EQUALS,
	lexer.LT_OP:        LESSGREATER,
	lexer.GT_OP:        LESSGREATER,
	lexer.LE_OP:        LESSGREATER,
	lexer.GE_OP:        LESSGREATER,
	lexer.PLUS_OP:      SUM,
	lexer.MINUS_OP:     SUM,
	lexer.MULT_OP:      PRODUCT,
	lexer.DIV_OP:       PRODUCT,
	lexer.MOD_OP:       PRODUCT,
	lexer.OPAR_DELIM:   CALL,
	lexer.OBRAC_DELIM:  INDEX,
}

func getPrecedence(tok lexer.TokenType) precedence {
	if p, ok := precedences[tok]; ok {
		return p
	}
	return LOWEST
}
