/*
File    : loxgo/lexer/lexer.go
Package : lexer
*/

// Package lexer performs lexical analysis (tokenization) of loxgo source
// code. It scans the source text byte by byte, classifying runs of
// characters into token.Token values, and tracks line numbers for error
// reporting. The scanner is single-pass with one-character lookahead and
// never backtracks.
package lexer

import (
	"fmt"
	"strings"

	"github.com/rverma-dev/loxgo/token"
)

// Lexer holds the scanning state for one source string.
//
// Fields:
//   - Src: the entire source text
//   - Current: the byte at Position, or 0 past the end
//   - Position: current index into Src (0-indexed)
//   - Line: the current 1-indexed source line
type Lexer struct {
	Src      string
	Current  byte
	Position int
	Line     int

	errors []string
}

// New creates and initializes a new Lexer for the given source code. It
// sets up the initial scan state with the first byte of src already
// loaded into Current, positioned at line 1.
//
// Parameters:
//   - src: the complete source text to tokenize
//
// Returns:
//   - *Lexer: a lexer ready to produce tokens via Scan
//
// Example:
//
//	lex := lexer.New("var x = 42;")
//	tokens := lex.Scan()
func New(src string) *Lexer {
	lex := &Lexer{Src: src, Line: 1}
	if len(src) > 0 {
		lex.Current = src[0]
	}
	return lex
}

// Errors returns the lexical error messages accumulated so far, each
// already formatted as "[line L] Error: ...".
func (lex *Lexer) Errors() []string {
	return lex.errors
}

// HadError reports whether any lexical error has been recorded.
func (lex *Lexer) HadError() bool {
	return len(lex.errors) > 0
}

// Scan tokenizes the entire source in one pass and returns an
// EOF-terminated token stream. It handles:
//   - Single- and double-character operators and punctuation
//   - String and number literals
//   - Identifiers and reserved keywords
//   - Line comments (//) and the whitespace that separates tokens
//
// Lexical errors do not stop scanning — an unexpected character is
// recorded and skipped so the scanner can keep producing tokens after it.
// The caller inspects HadError()/Errors() afterward and decides the exit
// code (the tokenize stage returns 65 if any error occurred, regardless
// of how many valid tokens were also produced).
//
// Returns:
//   - []token.Token: every token scanned, always ending with one EOF
//
// Example:
//
//	tokens := lexer.New("1 + 2").Scan()
//	// tokens[0].Kind == token.NUMBER, tokens[len(tokens)-1].Kind == token.EOF
func (lex *Lexer) Scan() []token.Token {
	var tokens []token.Token
	for {
		tok, ok := lex.next()
		if ok {
			tokens = append(tokens, tok)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// peek looks at the next byte without consuming it, or 0 past the end.
func (lex *Lexer) peek() byte {
	if lex.Position+1 >= len(lex.Src) {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// advance moves the cursor forward by one byte, refreshing Current.
func (lex *Lexer) advance() {
	lex.Position++
	if lex.Position >= len(lex.Src) {
		lex.Current = 0
		lex.Position = len(lex.Src)
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

func (lex *Lexer) addError(format string, args ...interface{}) {
	msg := fmt.Sprintf("[line %d] Error: %s", lex.Line, fmt.Sprintf(format, args...))
	lex.errors = append(lex.errors, msg)
}

// next classifies the current character and returns the token it produces
// (ok == false when nothing should be emitted: an unexpected character or
// an unterminated string). Whitespace and comments are skipped first.
func (lex *Lexer) next() (token.Token, bool) {
	for {
		switch lex.Current {
		case ' ', '\t', '\r':
			lex.advance()
			continue
		case '\n':
			lex.Line++
			lex.advance()
			continue
		}
		if lex.Current == '/' && lex.peek() == '/' {
			for lex.Current != '\n' && lex.Current != 0 {
				lex.advance()
			}
			continue
		}
		break
	}

	line := lex.Line

	if lex.Current == 0 {
		return token.New(token.EOF, "", line), true
	}

	switch lex.Current {
	case '(':
		return lex.single(token.LEFT_PAREN, "(", line), true
	case ')':
		return lex.single(token.RIGHT_PAREN, ")", line), true
	case '{':
		return lex.single(token.LEFT_BRACE, "{", line), true
	case '}':
		return lex.single(token.RIGHT_BRACE, "}", line), true
	case ',':
		return lex.single(token.COMMA, ",", line), true
	case '.':
		return lex.single(token.DOT, ".", line), true
	case '-':
		return lex.single(token.MINUS, "-", line), true
	case '+':
		return lex.single(token.PLUS, "+", line), true
	case ';':
		return lex.single(token.SEMICOLON, ";", line), true
	case '*':
		return lex.single(token.STAR, "*", line), true
	case '/':
		return lex.single(token.SLASH, "/", line), true
	case '!':
		return lex.oneOrTwo(token.BANG, "!", token.BANG_EQUAL, "!=", line), true
	case '=':
		return lex.oneOrTwo(token.EQUAL, "=", token.EQUAL_EQUAL, "==", line), true
	case '<':
		return lex.oneOrTwo(token.LESS, "<", token.LESS_EQUAL, "<=", line), true
	case '>':
		return lex.oneOrTwo(token.GREATER, ">", token.GREATER_EQUAL, ">=", line), true
	case '"':
		return lex.readString(line)
	}

	if isDigit(lex.Current) {
		return lex.readNumber(line), true
	}
	if isAlpha(lex.Current) {
		return lex.readIdentifier(line), true
	}

	lex.addError("Unexpected character: %c", lex.Current)
	lex.advance()
	return token.Token{}, false
}

// single emits a fixed one-character token and advances past it.
func (lex *Lexer) single(kind token.Kind, lexeme string, line int) token.Token {
	lex.advance()
	return token.New(kind, lexeme, line)
}

// oneOrTwo emits either the one-character form or, when the current
// character is immediately followed by '=', the two-character form.
func (lex *Lexer) oneOrTwo(oneKind token.Kind, oneLexeme string, twoKind token.Kind, twoLexeme string, line int) token.Token {
	if lex.peek() == '=' {
		lex.advance()
		lex.advance()
		return token.New(twoKind, twoLexeme, line)
	}
	lex.advance()
	return token.New(oneKind, oneLexeme, line)
}

// readString consumes a "-delimited string literal. The lexeme includes
// the surrounding quotes; the literal is the interior text. Reaching
// end-of-input before the closing quote is a lexical error reported on
// the opening line, and no token is emitted.
func (lex *Lexer) readString(startLine int) (token.Token, bool) {
	var b strings.Builder
	lex.advance() // consume opening quote
	for lex.Current != '"' && lex.Current != 0 {
		if lex.Current == '\n' {
			lex.Line++
		}
		b.WriteByte(lex.Current)
		lex.advance()
	}
	if lex.Current == 0 {
		lex.Line = startLine
		lex.addError("Unterminated string.")
		return token.Token{}, false
	}
	lex.advance() // consume closing quote
	interior := b.String()
	return token.NewLiteral(token.STRING, `"`+interior+`"`, interior, startLine), true
}

// readNumber consumes a run of digits, optionally followed by a '.' and
// further digits. A trailing '.' not followed by a digit is left
// unconsumed — the scanner never swallows a dot that doesn't introduce a
// fractional part. Numeric conversion is deferred to the parser; the
// literal is the raw digit text.
func (lex *Lexer) readNumber(line int) token.Token {
	start := lex.Position
	for isDigit(lex.Current) {
		lex.advance()
	}
	if lex.Current == '.' && isDigit(lex.peek()) {
		lex.advance() // consume '.'
		for isDigit(lex.Current) {
			lex.advance()
		}
	}
	text := lex.Src[start:lex.Position]
	return token.NewLiteral(token.NUMBER, text, text, line)
}

// readIdentifier consumes a maximal alphanumeric-or-underscore run and
// classifies it as a keyword or a plain identifier.
func (lex *Lexer) readIdentifier(line int) token.Token {
	start := lex.Position
	for isAlphaNumeric(lex.Current) {
		lex.advance()
	}
	text := lex.Src[start:lex.Position]
	return token.New(token.LookupIdentifier(text), text, line)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
