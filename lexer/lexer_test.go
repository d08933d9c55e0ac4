package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []tokenCase{
		{
			Input: ` 123 + 2   31 - 12 `,
			Expected: []Token{
				NewToken(CONST_INT_TYPE, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(CONST_INT_TYPE, "2"),
				NewToken(CONST_INT_TYPE, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(CONST_INT_TYPE, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			Expected: []Token{
				NewToken(OKEY_DELIM, "{"),
				NewToken(CKEY_DELIM, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(OBRAC_DELIM, "["),
				NewToken(CBRAC_DELIM, "]"),
				NewToken(IDENT_TYPE, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENT_TYPE, "a12"),
			},
		},
		{
			Input: `let x = 5; let add = fun(a, b) { a + b; };`,
			Expected: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENT_TYPE, "x"),
				NewToken(ASSIG_OP, "="),
				NewToken(CONST_INT_TYPE, "5"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(LET_KEY, "let"),
				NewToken(IDENT_TYPE, "add"),
				NewToken(ASSIG_OP, "="),
				NewToken(FUN_KEY, "fun"),
				NewToken(OPAR_DELIM, "("),
				NewToken(IDENT_TYPE, "a"),
				NewToken(COMA_DELIM, ","),
				NewToken(IDENT_TYPE, "b"),
				NewToken(CPAR_DELIM, ")"),
				NewToken(OKEY_DELIM, "{"),
				NewToken(IDENT_TYPE, "a"),
				NewToken(PLUS_OP, "+"),
				NewToken(IDENT_TYPE, "b"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(CKEY_DELIM, "}"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `!= == <= >= ++ -- += -= *= /= -> true false "hi there"`,
			Expected: []Token{
				NewToken(NEQ_OP, "!="),
				NewToken(EQ_OP, "=="),
				NewToken(LE_OP, "<="),
				NewToken(GE_OP, ">="),
				NewToken(INC_OP, "++"),
				NewToken(DEC_OP, "--"),
				NewToken(SUM_ASIG_OP, "+="),
				NewToken(MIN_ASIG_OP, "-="),
				NewToken(MUL_ASIG_OP, "*="),
				NewToken(DIV_ASIG_OP, "/="),
				NewToken(ARROW_OP, "->"),
				NewToken(TRUE_TYPE, "true"),
				NewToken(FALSE_TYPE, "false"),
				NewToken(CONST_STR_TYPE, "hi there"),
			},
		},
		{
			Input: `!`,
			Expected: []Token{
				NewToken(INVALID_TYPE, "!"),
			},
		},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.Input)
		tokens := lex.ConsumeTokens()
		assert.Equal(t, len(tt.Expected), len(tokens), "token count mismatch for %q", tt.Input)
		for i, want := range tt.Expected {
			assert.Equal(t, want.Type, tokens[i].Type, "type mismatch at %d for %q", i, tt.Input)
			assert.Equal(t, want.Literal, tokens[i].Literal, "literal mismatch at %d for %q", i, tt.Input)
		}
	}
}

func TestLexer_EOFIsSticky(t *testing.T) {
	lex := NewLexer("")
	tok := lex.NextToken()
	assert.Equal(t, EOF_TYPE, tok.Type)
	tok = lex.NextToken()
	assert.Equal(t, EOF_TYPE, tok.Type)
}
