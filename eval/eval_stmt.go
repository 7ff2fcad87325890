/*
File    : loxgo/eval/eval_stmt.go
Package : eval
*/
package eval

import (
	"github.com/rverma-dev/loxgo/ast"
	"github.com/rverma-dev/loxgo/value"
)

// VisitExprStmt evaluates the expression and discards the result.
func (e *Evaluator) VisitExprStmt(stmt *ast.ExprStmt) error {
	_, err := e.Eval(stmt.Expression)
	return err
}

// VisitPrint evaluates the expression and writes its canonical form.
func (e *Evaluator) VisitPrint(stmt *ast.PrintStmt) error {
	v, err := e.Eval(stmt.Expression)
	if err != nil {
		return err
	}
	e.print(v)
	return nil
}

// VisitVarDecl evaluates the initializer (Nil when absent) and defines
// the name in the innermost scope — always the innermost, per spec.md
// §3's environment invariant (ii): declaration never reaches outward.
func (e *Evaluator) VisitVarDecl(stmt *ast.VarDecl) error {
	var v value.Value = value.Nil{}
	if stmt.Initializer != nil {
		var err error
		v, err = e.Eval(stmt.Initializer)
		if err != nil {
			return err
		}
	}
	e.env.Define(stmt.Name.Lexeme, v)
	return nil
}

// VisitBlock pushes a fresh inner scope, executes every statement in
// order, and pops the scope on every exit path — including an error
// partway through, which is why the pop happens in a defer rather than
// only at the end of the loop.
func (e *Evaluator) VisitBlock(stmt *ast.Block) (err error) {
	outer := e.env
	e.env = e.env.Push()
	defer func() { e.env = outer }()

	for _, s := range stmt.Statements {
		if err = e.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
