/*
File    : loxgo/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rverma-dev/loxgo/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestScan_Punctuation(t *testing.T) {
	tokens := New("(){},.-+;/*").Scan()
	assert.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON,
		token.SLASH, token.STAR, token.EOF,
	}, kinds(tokens))
}

func TestScan_TwoCharacterOperators(t *testing.T) {
	tokens := New("! != = == < <= > >=").Scan()
	assert.Equal(t, []token.Kind{
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
		token.EOF,
	}, kinds(tokens))
}

func TestScan_CommentsAreSkipped(t *testing.T) {
	tokens := New("1 + 2 // this is ignored\n+ 3").Scan()
	assert.Equal(t, []token.Kind{
		token.NUMBER, token.PLUS, token.NUMBER, token.PLUS, token.NUMBER, token.EOF,
	}, kinds(tokens))
}

func TestScan_StringLiteral(t *testing.T) {
	tokens := New(`"hello world"`).Scan()
	assert.Len(t, tokens, 2)
	assert.Equal(t, token.STRING, tokens[0].Kind)
	assert.Equal(t, `"hello world"`, tokens[0].Lexeme)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScan_UnterminatedString(t *testing.T) {
	lex := New(`"unterminated`)
	tokens := lex.Scan()
	assert.Equal(t, []token.Kind{token.EOF}, kinds(tokens))
	assert.True(t, lex.HadError())
	assert.Equal(t, []string{"[line 1] Error: Unterminated string."}, lex.Errors())
}

func TestScan_NumberLiteral(t *testing.T) {
	tokens := New("123 45.67 89.").Scan()
	assert.Equal(t, "123", tokens[0].Literal)
	assert.Equal(t, "45.67", tokens[1].Literal)
	// trailing '.' with no following digit is not consumed as part of the number
	assert.Equal(t, "89", tokens[2].Literal)
	assert.Equal(t, token.DOT, tokens[3].Kind)
}

func TestScan_IdentifiersAndKeywords(t *testing.T) {
	tokens := New("var x = foo and true").Scan()
	assert.Equal(t, []token.Kind{
		token.VAR, token.IDENTIFIER, token.EQUAL, token.IDENTIFIER,
		token.AND, token.TRUE, token.EOF,
	}, kinds(tokens))
}

func TestScan_LineTracking(t *testing.T) {
	tokens := New("1\n2\n\n3").Scan()
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 4, tokens[2].Line)
}

func TestScan_UnexpectedCharacterAccumulatesAndContinues(t *testing.T) {
	lex := New("1 @ 2 # 3")
	tokens := lex.Scan()
	assert.True(t, lex.HadError())
	assert.Equal(t, []string{
		"[line 1] Error: Unexpected character: @",
		"[line 1] Error: Unexpected character: #",
	}, lex.Errors())
	assert.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.NUMBER, token.EOF}, kinds(tokens))
}
