/*
File    : loxgo/eval/eval_expr.go
Package : eval
*/
package eval

import (
	"github.com/rverma-dev/loxgo/ast"
	"github.com/rverma-dev/loxgo/token"
	"github.com/rverma-dev/loxgo/value"
)

// VisitLiteral returns the constant value the scanner/parser already
// produced.
func (e *Evaluator) VisitLiteral(expr *ast.Literal) (interface{}, error) {
	return expr.Value, nil
}

// VisitGrouping evaluates the parenthesized inner expression.
func (e *Evaluator) VisitGrouping(expr *ast.Grouping) (interface{}, error) {
	return e.Eval(expr.Inner)
}

// VisitVariable looks the name up through the environment chain,
// innermost scope first.
func (e *Evaluator) VisitVariable(expr *ast.Variable) (interface{}, error) {
	v, err := e.env.Get(expr.Name.Lexeme)
	if err != nil {
		return nil, runtimeErrorf(expr.Name.Line, "%s", err.Error())
	}
	return v, nil
}

// VisitAssignment evaluates the right-hand side, assigns it into the
// innermost scope that already declares the name, and yields the
// assigned value (assignment is an expression, not just a statement).
func (e *Evaluator) VisitAssignment(expr *ast.Assignment) (interface{}, error) {
	v, err := e.Eval(expr.Value)
	if err != nil {
		return nil, err
	}
	if err := e.env.Assign(expr.Name.Lexeme, v); err != nil {
		return nil, runtimeErrorf(expr.Name.Line, "%s", err.Error())
	}
	return v, nil
}

// VisitUnary applies '-' (arithmetic negation, Number operand required)
// or '!' (logical negation via truthiness, any operand accepted).
func (e *Evaluator) VisitUnary(expr *ast.Unary) (interface{}, error) {
	operand, err := e.Eval(expr.Operand)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Kind {
	case token.MINUS:
		n, ok := operand.(value.Number)
		if !ok {
			return nil, runtimeErrorf(expr.Op.Line, "Operand must be a number.")
		}
		return value.Number{Value: -n.Value}, nil
	case token.BANG:
		return value.Bool{Value: !value.Truthy(operand)}, nil
	}
	return nil, runtimeErrorf(expr.Op.Line, "Unknown unary operator %s.", expr.Op.Lexeme)
}

// VisitBinary evaluates the left operand, then the right (strict
// left-to-right), then dispatches on the operator.
func (e *Evaluator) VisitBinary(expr *ast.Binary) (interface{}, error) {
	left, err := e.Eval(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(expr.Right)
	if err != nil {
		return nil, err
	}

	line := expr.Op.Line
	switch expr.Op.Kind {
	case token.PLUS:
		return evalPlus(left, right, line)
	case token.MINUS:
		return numericBinary(left, right, line, func(a, b float64) float64 { return a - b })
	case token.STAR:
		return numericBinary(left, right, line, func(a, b float64) float64 { return a * b })
	case token.SLASH:
		return numericBinary(left, right, line, func(a, b float64) float64 { return a / b })
	case token.GREATER:
		return numericCompare(left, right, line, func(a, b float64) bool { return a > b })
	case token.GREATER_EQUAL:
		return numericCompare(left, right, line, func(a, b float64) bool { return a >= b })
	case token.LESS:
		return numericCompare(left, right, line, func(a, b float64) bool { return a < b })
	case token.LESS_EQUAL:
		return numericCompare(left, right, line, func(a, b float64) bool { return a <= b })
	case token.EQUAL_EQUAL:
		return value.Bool{Value: value.Equal(left, right)}, nil
	case token.BANG_EQUAL:
		return value.Bool{Value: !value.Equal(left, right)}, nil
	}

	return nil, runtimeErrorf(line, "Unknown binary operator %s.", expr.Op.Lexeme)
}

// evalPlus implements the one overloaded operator in the language:
// number+number sums, string+string concatenates, anything else is a
// type error.
func evalPlus(left, right value.Value, line int) (value.Value, error) {
	if ln, ok := left.(value.Number); ok {
		if rn, ok := right.(value.Number); ok {
			return value.Number{Value: ln.Value + rn.Value}, nil
		}
	}
	if ls, ok := left.(value.String); ok {
		if rs, ok := right.(value.String); ok {
			return value.String{Value: ls.Value + rs.Value}, nil
		}
	}
	return nil, runtimeErrorf(line, "Operands must be two numbers or two strings.")
}

// numericBinary requires both operands be Number and applies op.
func numericBinary(left, right value.Value, line int, op func(a, b float64) float64) (value.Value, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return nil, runtimeErrorf(line, "Operands must be numbers.")
	}
	return value.Number{Value: op(ln.Value, rn.Value)}, nil
}

// numericCompare requires both operands be Number and applies an
// IEEE-754 ordered comparison.
func numericCompare(left, right value.Value, line int, op func(a, b float64) bool) (value.Value, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return nil, runtimeErrorf(line, "Operands must be numbers.")
	}
	return value.Bool{Value: op(ln.Value, rn.Value)}, nil
}
