/*
File    : loxgo/repl/repl.go
Package : repl
*/

// Package repl implements the interactive Read-Eval-Print Loop for
// loxgo, plus a TCP server mode that runs one REPL session per
// connection. It runs each line of input through the same scan, parse and
// execute pipeline as the `run` driver stage and keeps the evaluator's environment alive across lines within one
// session, so variables declared on one line are visible on the next —
// the REPL's one departure from the file-mode pipeline, where each file
// is a single, self-contained `run`.
//
// Line editing, history, and colorized output are adapted from the
// teacher interpreter's repl package: chzyer/readline drives the prompt
// and history file, fatih/color palettes separate errors (red) from
// banner chrome (blue/cyan); results are written uncolored.
package repl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/rverma-dev/loxgo/config"
	"github.com/rverma-dev/loxgo/eval"
	"github.com/rverma-dev/loxgo/lexer"
	"github.com/rverma-dev/loxgo/parser"
)

var (
	blueColor = color.New(color.FgBlue)
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

const banner = `
  _
 | | _____  ___ __ _  ___
 | |/ _ \ \/ / _` + "`" + ` |/ _ \
 | | (_) >  < (_| | (_) |
 |_|\___/_/\_\__, |\___/
             |___/
`

// Repl bundles the presentation configuration for one interactive
// session; Start runs the loop until '.exit' or EOF.
type Repl struct {
	cfg config.Config
}

// New creates a Repl configured by cfg. When cfg.Color is false, colored
// output is turned off process-wide.
func New(cfg config.Config) *Repl {
	if !cfg.Color {
		color.NoColor = true
	}
	return &Repl{cfg: cfg}
}

// printBanner writes the startup banner and usage hints to writer,
// skipped entirely when cfg.Banner is false.
func (r *Repl) printBanner(writer io.Writer) {
	if !r.cfg.Banner {
		return
	}
	line := strings.Repeat("-", 60)
	blueColor.Fprintln(writer, line)
	cyanColor.Fprintln(writer, banner)
	blueColor.Fprintln(writer, line)
	cyanColor.Fprintln(writer, "loxgo — type an expression or statement, or '.exit' to quit")
	blueColor.Fprintln(writer, line)
}

// Start runs the REPL loop, reading lines via readline (history + line
// editing) and evaluating each against one persistent environment.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.cfg.Prompt,
		HistoryFile: r.cfg.HistoryFile,
		Stdout:      writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(writer, "Good bye!")
			return
		}

		r.evalLine(writer, line, evaluator)
	}
}

// evalLine tokenizes, parses, and executes one line of REPL input against
// the session's running evaluator, reporting any error in red without
// tearing down the session — the REPL's recovery model is "keep going",
// unlike file mode's "abort with an exit code". A panic during evaluation
// is caught the same way go-mix's executeFileWithRecovery catches one, so
// one bad line never kills the session.
func (r *Repl) evalLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	lex := lexer.New(line)
	tokens := lex.Scan()
	if lex.HadError() {
		for _, msg := range lex.Errors() {
			redColor.Fprintln(writer, msg)
		}
		return
	}
	stmts, err := parser.New(tokens).Parse()
	if err != nil {
		redColor.Fprintln(writer, err.Error())
		return
	}
	if err := evaluator.Run(stmts); err != nil {
		redColor.Fprintln(writer, err.Error())
		return
	}
}

// Serve starts a TCP listener on port and runs one independent REPL
// session per accepted connection — direct adaptation of the teacher's
// server mode to loxgo's statement-oriented dialect.
func Serve(port string, cfg config.Config) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return err
	}
	defer listener.Close()

	cyanColor.Printf("loxgo REPL server listening on :%s\n", port)
	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Printf("[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleConn(conn, cfg)
	}
}

// handleConn runs one REPL session scoped to a single connection; the
// session's environment is never shared with any other connection.
func handleConn(conn net.Conn, cfg config.Config) {
	defer conn.Close()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "client %s connected\n", conn.RemoteAddr())
	conn.Write(buf.Bytes())

	New(cfg).startOnConn(conn)
}

// startOnConn mirrors Start but reads lines directly off the connection
// instead of driving readline, since readline expects a local terminal.
func (r *Repl) startOnConn(conn net.Conn) {
	r.printBanner(conn)
	evaluator := eval.New()
	evaluator.SetWriter(conn)

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(conn, "Good bye!")
			return
		}
		r.evalLine(conn, line, evaluator)
	}
}
