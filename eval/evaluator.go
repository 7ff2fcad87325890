/*
File    : loxgo/eval/evaluator.go
Package : eval
*/

// Package eval implements loxgo's tree-walking evaluator: expression
// semantics (numeric/string coercion, truthiness, cross-type equality,
// assignment-as-expression) and statement semantics (print, declaration,
// block scoping). Evaluation is strictly single-threaded and synchronous;
// a binary expression's left operand is always fully evaluated before the
// right (spec.md §5).
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/rverma-dev/loxgo/ast"
	"github.com/rverma-dev/loxgo/environment"
	"github.com/rverma-dev/loxgo/value"
)

// Evaluator holds the mutable execution state for one program run: the
// current environment frame and the writer `print` statements write to.
// Unlike the original source's process-wide singleton environment, the
// environment here is an explicit value owned by the Evaluator and
// threaded through every Eval/Exec call.
type Evaluator struct {
	env    *environment.Environment
	Writer io.Writer
}

// New creates and initializes a new Evaluator instance with default
// configuration: a fresh global environment and `print` output directed
// to os.Stdout.
//
// Returns:
//   - *Evaluator: a fully initialized evaluator ready to Run or Eval
//
// Example:
//
//	ev := eval.New()
//	err := ev.Run(stmts)
func New() *Evaluator {
	return &Evaluator{env: environment.New(), Writer: os.Stdout}
}

// SetWriter redirects `print` output, e.g. to a bytes.Buffer in tests or
// to a network connection in the REPL server mode.
//
// Parameters:
//   - w: the writer every subsequent `print` statement writes its
//     canonical-form output to
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Run executes an ordered sequence of top-level statements against the
// evaluator's environment, stopping at the first RuntimeError. This is
// the entry point the `run` driver stage and the REPL call.
//
// Parameters:
//   - stmts: the statement sequence produced by parser.Parse
//
// Returns:
//   - error: the first *RuntimeError encountered, or nil on success
//
// Example:
//
//	stmts, _ := parser.New(tokens).Parse()
//	err := eval.New().Run(stmts)
func (e *Evaluator) Run(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := e.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Exec executes a single statement for effect.
func (e *Evaluator) Exec(stmt ast.Stmt) error {
	return stmt.Accept(e)
}

// Eval evaluates a single expression and returns its Value.
func (e *Evaluator) Eval(expr ast.Expr) (value.Value, error) {
	result, err := expr.Accept(e)
	if err != nil {
		return nil, err
	}
	return result.(value.Value), nil
}

// print renders a Value using the canonical print form required by
// spec.md §4.4 and writes it followed by a newline.
func (e *Evaluator) print(v value.Value) {
	fmt.Fprintln(e.Writer, v.String())
}
