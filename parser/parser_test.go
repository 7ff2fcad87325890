/*
File    : loxgo/parser/parser_test.go
Package : parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rverma-dev/loxgo/ast"
	"github.com/rverma-dev/loxgo/lexer"
	"github.com/rverma-dev/loxgo/token"
)

func newTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	return lexer.New(src).Scan()
}

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, err := New(newTokens(t, src)).Parse()
	assert.NoError(t, err)
	return stmts
}

func TestParse_PrintStatement(t *testing.T) {
	stmts := parse(t, `print 1 + 2;`)
	assert.Len(t, stmts, 1)
	printStmt, ok := stmts[0].(*ast.PrintStmt)
	assert.True(t, ok)
	assert.Equal(t, "(+ 1 2)", ast.Print(printStmt.Expression))
}

func TestParse_VarDeclWithoutInitializer(t *testing.T) {
	stmts := parse(t, `var a;`)
	decl, ok := stmts[0].(*ast.VarDecl)
	assert.True(t, ok)
	assert.Equal(t, "a", decl.Name.Lexeme)
	assert.Nil(t, decl.Initializer)
}

func TestParse_VarDeclWithInitializer(t *testing.T) {
	stmts := parse(t, `var a = 1;`)
	decl := stmts[0].(*ast.VarDecl)
	assert.NotNil(t, decl.Initializer)
	assert.Equal(t, "1", ast.Print(decl.Initializer))
}

func TestParse_Block(t *testing.T) {
	stmts := parse(t, `{ var a = 1; print a; }`)
	block, ok := stmts[0].(*ast.Block)
	assert.True(t, ok)
	assert.Len(t, block.Statements, 2)
}

func TestParse_AssignmentIsRightAssociativeExpression(t *testing.T) {
	stmts := parse(t, `a = b = 1;`)
	exprStmt := stmts[0].(*ast.ExprStmt)
	assign, ok := exprStmt.Expression.(*ast.Assignment)
	assert.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
	inner, ok := assign.Value.(*ast.Assignment)
	assert.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetIsFatal(t *testing.T) {
	tokens := newTokens(t, `1 = 2;`)
	_, err := New(tokens).Parse()
	assert.EqualError(t, err, "[line 1] Error: Invalid assignment target.")
}

func TestParse_LeftAssociativity(t *testing.T) {
	stmts := parse(t, `1 - 2 - 3;`)
	expr := stmts[0].(*ast.ExprStmt).Expression
	assert.Equal(t, "(- (- 1 2) 3)", ast.Print(expr))
}

func TestParse_UnaryIsRightAssociative(t *testing.T) {
	stmts := parse(t, `!!true;`)
	expr := stmts[0].(*ast.ExprStmt).Expression
	assert.Equal(t, "(! (! true))", ast.Print(expr))
}

func TestParse_PrecedenceLadder(t *testing.T) {
	stmts := parse(t, `1 + 2 * 3 > 4 == false;`)
	expr := stmts[0].(*ast.ExprStmt).Expression
	assert.Equal(t, "(== (> (+ 1 (* 2 3)) 4) false)", ast.Print(expr))
}

func TestParse_MissingSemicolonIsFatal(t *testing.T) {
	tokens := newTokens(t, `print 1`)
	_, err := New(tokens).Parse()
	assert.Error(t, err)
}

func TestParse_MissingClosingBraceIsFatal(t *testing.T) {
	tokens := newTokens(t, `{ print 1;`)
	_, err := New(tokens).Parse()
	assert.EqualError(t, err, "[line 1] Error: Expect '}' after block.")
}

