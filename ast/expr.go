/*
File    : loxgo/ast/expr.go
Package : ast
*/

// Package ast defines the expression and statement trees the parser
// builds and the evaluator walks. Expressions and statements are kept as
// two distinct tagged unions: expressions always produce a value,
// statements are executed for effect. A tree owns its children.
package ast

import (
	"github.com/rverma-dev/loxgo/token"
	"github.com/rverma-dev/loxgo/value"
)

// Expr is the base interface for every expression node. Accept drives the
// visitor pattern used by the evaluator and the debug printer.
type Expr interface {
	exprNode()
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor dispatches on concrete expression node type. Both the
// evaluator and the parenthesized-prefix printer implement it.
type ExprVisitor interface {
	VisitLiteral(e *Literal) (interface{}, error)
	VisitUnary(e *Unary) (interface{}, error)
	VisitBinary(e *Binary) (interface{}, error)
	VisitGrouping(e *Grouping) (interface{}, error)
	VisitVariable(e *Variable) (interface{}, error)
	VisitAssignment(e *Assignment) (interface{}, error)
}

// Literal holds a constant Value produced directly by the scanner (a
// number, string, bool, or nil).
type Literal struct {
	Value value.Value
}

func (*Literal) exprNode() {}
func (e *Literal) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteral(e) }

// Unary is a prefix operator ('-' or '!') applied to a single operand.
type Unary struct {
	Op      token.Token
	Operand Expr
}

func (*Unary) exprNode() {}
func (e *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnary(e) }

// Binary is an infix operator applied to a left and right operand.
type Binary struct {
	Op    token.Token
	Left  Expr
	Right Expr
}

func (*Binary) exprNode() {}
func (e *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinary(e) }

// Grouping is a parenthesized sub-expression, kept distinct from its
// inner expression so a debug printer can show the parentheses.
type Grouping struct {
	Inner Expr
}

func (*Grouping) exprNode() {}
func (e *Grouping) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGrouping(e) }

// Variable references a previously declared name.
type Variable struct {
	Name token.Token
}

func (*Variable) exprNode() {}
func (e *Variable) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariable(e) }

// Assignment rewrites a Variable target with a new value; the parser only
// ever produces this node after validating the left-hand side was exactly
// a Variable — that validation never happens in the evaluator.
type Assignment struct {
	Name  token.Token
	Value Expr
}

func (*Assignment) exprNode() {}
func (e *Assignment) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignment(e) }
