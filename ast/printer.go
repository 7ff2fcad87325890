/*
File    : loxgo/ast/printer.go
Package : ast
*/
package ast

import (
	"bytes"
	"fmt"
)

// Printer renders an expression tree as a parenthesized prefix form, the
// debug representation the `parse` driver stage prints for each parsed
// expression. It implements ExprVisitor, the same pattern the teacher's
// PrintingVisitor used over its own node types.
type Printer struct {
	buf bytes.Buffer
}

// Print returns the parenthesized prefix form of e.
func Print(e Expr) string {
	p := &Printer{}
	_, _ = e.Accept(p)
	return p.buf.String()
}

func (p *Printer) parenthesize(name string, exprs ...Expr) (interface{}, error) {
	p.buf.WriteString("(")
	p.buf.WriteString(name)
	for _, e := range exprs {
		p.buf.WriteString(" ")
		_, _ = e.Accept(p)
	}
	p.buf.WriteString(")")
	return nil, nil
}

func (p *Printer) VisitLiteral(e *Literal) (interface{}, error) {
	p.buf.WriteString(e.Value.String())
	return nil, nil
}

func (p *Printer) VisitUnary(e *Unary) (interface{}, error) {
	return p.parenthesize(e.Op.Lexeme, e.Operand)
}

func (p *Printer) VisitBinary(e *Binary) (interface{}, error) {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitGrouping(e *Grouping) (interface{}, error) {
	return p.parenthesize("group", e.Inner)
}

func (p *Printer) VisitVariable(e *Variable) (interface{}, error) {
	p.buf.WriteString(e.Name.Lexeme)
	return nil, nil
}

func (p *Printer) VisitAssignment(e *Assignment) (interface{}, error) {
	return p.parenthesize(fmt.Sprintf("= %s", e.Name.Lexeme), e.Value)
}
