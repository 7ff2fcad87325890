/*
File    : loxgo/ast/stmt.go
Package : ast
*/
package ast

import "github.com/rverma-dev/loxgo/token"

// Stmt is the base interface for every statement node.
type Stmt interface {
	stmtNode()
	Accept(v StmtVisitor) error
}

// StmtVisitor dispatches on concrete statement node type.
type StmtVisitor interface {
	VisitPrint(s *PrintStmt) error
	VisitExprStmt(s *ExprStmt) error
	VisitVarDecl(s *VarDecl) error
	VisitBlock(s *Block) error
}

// PrintStmt evaluates an expression and writes its canonical form followed
// by a newline.
type PrintStmt struct {
	Expression Expr
}

func (*PrintStmt) stmtNode() {}
func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrint(s) }

// ExprStmt evaluates an expression and discards the result.
type ExprStmt struct {
	Expression Expr
}

func (*ExprStmt) stmtNode() {}
func (s *ExprStmt) Accept(v StmtVisitor) error { return v.VisitExprStmt(s) }

// VarDecl declares Name in the innermost scope, bound to the evaluated
// Initializer, or Nil when Initializer is absent.
type VarDecl struct {
	Name        token.Token
	Initializer Expr // nil when no initializer was written
}

func (*VarDecl) stmtNode() {}
func (s *VarDecl) Accept(v StmtVisitor) error { return v.VisitVarDecl(s) }

// Block is an ordered sequence of statements executed in a freshly pushed
// inner scope; the scope is popped on every exit path, including errors.
type Block struct {
	Statements []Stmt
}

func (*Block) stmtNode() {}
func (s *Block) Accept(v StmtVisitor) error { return v.VisitBlock(s) }
