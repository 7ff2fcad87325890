/*
File    : loxgo/driver/driver.go
Package : driver
*/

// Package driver selects and runs one of the four interpreter stages —
// tokenize, parse, evaluate, run — the way spec.md §4.5 describes. It is
// the thin, externally-facing orchestration layer: reading a source
// string and writing to the given stdout/stderr, never touching the
// filesystem itself (that belongs to the caller, e.g. cmd/loxgo).
package driver

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rverma-dev/loxgo/ast"
	"github.com/rverma-dev/loxgo/eval"
	"github.com/rverma-dev/loxgo/lexer"
	"github.com/rverma-dev/loxgo/parser"
	"github.com/rverma-dev/loxgo/token"
)

// Exit codes, per spec.md §6.
const (
	ExitSuccess = 0
	ExitSyntax  = 65
	ExitRuntime = 70
)

// Tokenize scans src and prints one line per token as "<KIND> <lexeme>
// <literal>", followed by a trailing "EOF  null". Returns ExitSyntax if
// any lexical error occurred, else ExitSuccess — regardless of how many
// tokens were produced either way.
func Tokenize(src string, stdout, stderr io.Writer) int {
	lex := lexer.New(src)
	tokens := lex.Scan()

	for _, tok := range tokens {
		fmt.Fprintln(stdout, formatToken(tok))
	}

	for _, msg := range lex.Errors() {
		fmt.Fprintln(stderr, msg)
	}
	if lex.HadError() {
		return ExitSyntax
	}
	return ExitSuccess
}

// formatToken renders a token for the tokenize stage. NUMBER literals are
// normalized to always carry a decimal point (42 -> "42.0"); every other
// kind uses the token's own String().
func formatToken(tok token.Token) string {
	if tok.Kind != token.NUMBER {
		return tok.String()
	}
	n, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return tok.String()
	}
	return fmt.Sprintf("%s %s %s", tok.Kind, tok.Lexeme, formatNumberWithPoint(n))
}

// formatNumberWithPoint renders n the way the tokenize stage wants:
// always at least one digit after the decimal point.
func formatNumberWithPoint(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Parse scans then parses src as a sequence of bare top-level expressions
// (no statement terminators), printing the parenthesized prefix form of
// each for debugging. Returns ExitSyntax on the first lexical or parse
// error.
func Parse(src string, stdout, stderr io.Writer) int {
	exprs, code := parseExpressions(src, stderr)
	if code != ExitSuccess {
		return code
	}
	for _, expr := range exprs {
		fmt.Fprintln(stdout, ast.Print(expr))
	}
	return ExitSuccess
}

// Evaluate scans, parses, and evaluates src as a sequence of bare
// top-level expressions, printing each result in canonical form. Returns
// ExitSyntax on a lexical/parse error, ExitRuntime on the first evaluation
// error.
func Evaluate(src string, stdout, stderr io.Writer) int {
	exprs, code := parseExpressions(src, stderr)
	if code != ExitSuccess {
		return code
	}

	ev := eval.New()
	ev.SetWriter(stdout)
	for _, expr := range exprs {
		v, err := ev.Eval(expr)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return ExitRuntime
		}
		fmt.Fprintln(stdout, v.String())
	}
	return ExitSuccess
}

// Run scans, parses as the full statement grammar, and executes the
// program for effect — the only stage the language's `print` statement
// and `var`/block semantics run under.
func Run(src string, stdout, stderr io.Writer) int {
	lex := lexer.New(src)
	tokens := lex.Scan()
	if lex.HadError() {
		for _, msg := range lex.Errors() {
			fmt.Fprintln(stderr, msg)
		}
		return ExitSyntax
	}

	stmts, err := parser.New(tokens).Parse()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitSyntax
	}

	ev := eval.New()
	ev.SetWriter(stdout)
	if err := ev.Run(stmts); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitRuntime
	}
	return ExitSuccess
}

// parseExpressions is shared by the parse and evaluate stages: scan,
// bail on lexical errors, then repeatedly parse one bare expression until
// EOF, bailing on the first parse error.
func parseExpressions(src string, stderr io.Writer) ([]ast.Expr, int) {
	lex := lexer.New(src)
	tokens := lex.Scan()
	if lex.HadError() {
		for _, msg := range lex.Errors() {
			fmt.Fprintln(stderr, msg)
		}
		return nil, ExitSyntax
	}

	p := parser.New(tokens)
	var exprs []ast.Expr
	for !p.AtEnd() {
		expr, err := p.ParseExpression()
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return nil, ExitSyntax
		}
		exprs = append(exprs, expr)
	}
	return exprs, ExitSuccess
}
