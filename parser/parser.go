/*
File    : loxgo/parser/parser.go
Package : parser
*/

// Package parser implements a recursive-descent parser for loxgo.
//
// The parser walks a fixed precedence ladder (lowest to highest):
//
//	assignment -> equality -> comparison -> term -> factor -> unary -> primary
//
// All infix operators are left-associative and are parsed by a loop that
// re-nests the left operand; unary '-' and '!' are right-associative,
// parsed by recursion into unary. There is no backtracking: each rule
// either consumes tokens and returns a node, or reports a fatal parse
// error. A single error aborts the whole parse (spec.md §7 — no local
// recovery in the parser).
package parser

import (
	"fmt"

	"github.com/rverma-dev/loxgo/ast"
	"github.com/rverma-dev/loxgo/token"
	"github.com/rverma-dev/loxgo/value"
)

// ParseError reports a fatal syntax error at a specific line/lexeme. The
// driver maps it to exit code 65.
type ParseError struct {
	Line    int
	Lexeme  string
	Message string
}

func (e *ParseError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Line, e.Lexeme, e.Message)
}

// Parser holds the token stream and lookahead cursor.
type Parser struct {
	tokens  []token.Token
	current int
}

// New creates and initializes a new Parser instance over an
// EOF-terminated token stream. This is the main entry point for creating
// a parser; call Parse or ParseExpression immediately after.
//
// Parameters:
//
//	tokens - the token stream produced by lexer.Scan, ending in one EOF
//
// Returns:
//
//	*Parser: a parser positioned at the first token, ready to parse
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse drives the parser to end-of-input using the full statement
// grammar (print, var declaration, block, expression statement) — the
// grammar the `run` driver stage executes.
//
// Returns:
//
//	[]ast.Stmt: the ordered sequence of top-level statements
//	error: the first *ParseError encountered; parsing aborts immediately,
//	there is no error-collection/resync the way some Pratt parsers do it
//
// Example:
//
//	stmts, err := parser.New(tokens).Parse()
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// ParseExpression parses a single expression, starting at the assignment
// level of the precedence ladder. Used by the `parse` and `evaluate`
// driver stages, which treat each top-level item as a bare expression
// with no semicolon terminator, in a loop driven by AtEnd.
//
// Returns:
//
//	ast.Expr: the parsed expression tree
//	error: the first *ParseError encountered
//
// Example:
//
//	p := parser.New(tokens)
//	for !p.AtEnd() {
//	    expr, err := p.ParseExpression()
//	}
func (p *Parser) ParseExpression() (ast.Expr, error) {
	return p.expression()
}

// AtEnd reports whether the parser has consumed every token up to EOF.
// The `parse`/`evaluate` driver stages use this to loop over a sequence
// of top-level expressions.
func (p *Parser) AtEnd() bool {
	return p.isAtEnd()
}

// --- statement grammar ---

// statement dispatches on the next token to pick a production: print,
// var declaration, block, or a bare expression statement.
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.VAR):
		return p.varDeclaration()
	case p.match(token.LEFT_BRACE):
		return p.blockStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: expr}, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: name, Initializer: initializer}, nil
}

// blockStatement parses statements until the closing '}'. The original
// source's block parser consumed two ';' tokens after the closing brace,
// which spec.md §9 flags as certainly wrong; this resolves to consuming
// the '}' only, the conventional Lox reading.
func (p *Parser) blockStatement() (ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(token.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return &ast.Block{Statements: stmts}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expression: expr}, nil
}

// --- expression grammar (precedence ladder) ---

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses an equality-level expression; if the next token is
// '=', the right-hand side is parsed recursively at assignment level and,
// only if the left-hand side is exactly a Variable, rewritten into an
// Assignment node. Any other left-hand side is a fatal "Invalid
// assignment target." — this validation happens here, never in the
// evaluator.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.match(token.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assignment{Name: variable.Name, Value: value}, nil
		}
		return nil, &ParseError{Line: equals.Line, Message: "Invalid assignment target."}
	}

	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssociative(p.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssociative(p.term, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssociative(p.factor, token.MINUS, token.PLUS)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssociative(p.unary, token.SLASH, token.STAR)
}

// leftAssociative implements one rung of the ladder: parse one operand at
// the next-higher precedence, then loop while the current token is one of
// ops, each time re-nesting the accumulated expression as the left operand
// of a new Binary node.
func (p *Parser) leftAssociative(next func() (ast.Expr, error), ops ...token.Kind) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// unary is right-associative: '-' and '!' recurse back into unary so that
// e.g. "!!true" nests two Unary nodes.
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Operand: operand}, nil
	}
	return p.primary()
}

// primary parses the leaves of the grammar: literals, groupings, and
// variable references.
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: value.Bool{Value: false}}, nil
	case p.match(token.TRUE):
		return &ast.Literal{Value: value.Bool{Value: true}}, nil
	case p.match(token.NIL):
		return &ast.Literal{Value: value.Nil{}}, nil
	case p.match(token.NUMBER):
		return p.numberLiteral()
	case p.match(token.STRING):
		return &ast.Literal{Value: value.String{Value: p.previous().Literal}}, nil
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(token.LEFT_PAREN):
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: inner}, nil
	}

	return nil, p.errorAtCurrent("Expect expression.")
}

// numberLiteral converts the raw digit text the scanner captured into a
// binary64, strictly requiring the digits-'.'-digits shape the scanner
// itself already enforced (spec.md §9 — no reliance on a permissive
// default float parse for edge forms the scanner wouldn't have produced
// anyway).
func (p *Parser) numberLiteral() (ast.Expr, error) {
	tok := p.previous()
	n, err := parseStrictFloat(tok.Literal)
	if err != nil {
		return nil, &ParseError{Line: tok.Line, Lexeme: tok.Lexeme, Message: "Invalid number literal."}
	}
	return &ast.Literal{Value: value.Number{Value: n}}, nil
}

// --- token cursor helpers ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAtCurrent(message)
}

func (p *Parser) errorAtCurrent(message string) error {
	tok := p.peek()
	if tok.Kind == token.EOF {
		return &ParseError{Line: tok.Line, Message: message}
	}
	return &ParseError{Line: tok.Line, Lexeme: tok.Lexeme, Message: message}
}
