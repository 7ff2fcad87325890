/*
File    : loxgo/cmd/loxgo/main.go
Package : main
*/

// Command loxgo is the entry point for the loxgo interpreter. It
// supports four explicit stage subcommands plus an implicit REPL/server
// mode, modeled directly on the teacher interpreter's single-binary CLI:
//
//	loxgo                        start interactive REPL (default mode)
//	loxgo server <port>          start a REPL server on the given TCP port
//	loxgo tokenize <file>        scan the file and print its token stream
//	loxgo parse <file>           scan+parse bare expressions, print prefix form
//	loxgo evaluate <file>        scan+parse+evaluate bare expressions
//	loxgo run <file>             scan+parse+execute the full statement grammar
//	loxgo --help | -h            usage
//	loxgo --version | -v         version/license banner
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/rverma-dev/loxgo/config"
	"github.com/rverma-dev/loxgo/driver"
	"github.com/rverma-dev/loxgo/repl"
)

// Version and Author are reported by --version, following the teacher's
// convention of stamping interpreter identity straight into the binary.
var (
	Version = "v1.0.0"
	Author  = "rverma-dev"
	License = "MIT"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements main's logic with an explicit return code, so tests can
// drive it without depending on os.Exit.
func run(args []string) int {
	if len(args) == 0 {
		startRepl()
		return driver.ExitSuccess
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		return driver.ExitSuccess
	case "--version", "-v":
		showVersion()
		return driver.ExitSuccess
	case "server":
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "[USAGE ERROR] missing port. Usage: loxgo server <port>")
			return 1
		}
		return startServer(args[1])
	case "tokenize", "parse", "evaluate", "run":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing file. Usage: loxgo %s <file>\n", args[0])
			return 1
		}
		return runStage(args[0], args[1])
	default:
		// Bare filename with no stage keyword behaves like the teacher's
		// file-mode shortcut, running the config's default stage ("run"
		// unless the LOXGO_CONFIG file sets default_stage).
		cfg, err := config.Load(os.Getenv("LOXGO_CONFIG"))
		if err != nil {
			cfg = config.Default()
		}
		return runStage(cfg.DefaultStage, args[0])
	}
}

// runStage reads path and dispatches to the named driver stage, with a
// panic recovery net around the call — the same shape as go-mix's
// executeFileWithRecovery: a panic during scanning/parsing/evaluation is
// reported as a runtime error instead of crashing the process.
func runStage(stage, path string) (code int) {
	content, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", path, err)
		return 1
	}
	src := string(content)

	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			code = driver.ExitRuntime
		}
	}()

	switch stage {
	case "tokenize":
		return driver.Tokenize(src, os.Stdout, os.Stderr)
	case "parse":
		return driver.Parse(src, os.Stdout, os.Stderr)
	case "evaluate":
		return driver.Evaluate(src, os.Stdout, os.Stderr)
	default:
		return driver.Run(src, os.Stdout, os.Stderr)
	}
}

// startRepl loads the optional config file (LOXGO_CONFIG env var, falling
// back to defaults) and starts the interactive REPL on stdin/stdout.
func startRepl() {
	cfg, err := config.Load(os.Getenv("LOXGO_CONFIG"))
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		cfg = config.Default()
	}
	repl.New(cfg).Start(os.Stdout)
}

// startServer starts the TCP REPL server on port, returning a process
// exit code on failure to bind.
func startServer(port string) int {
	cfg, err := config.Load(os.Getenv("LOXGO_CONFIG"))
	if err != nil {
		cfg = config.Default()
	}
	if err := repl.Serve(port, cfg); err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] %v\n", err)
		return 1
	}
	return 0
}

func showHelp() {
	cyanColor.Println("loxgo - a tree-walking interpreter for the lox scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  loxgo                    start interactive REPL")
	fmt.Println("  loxgo server <port>      start a REPL server on the given TCP port")
	fmt.Println("  loxgo tokenize <file>    scan a file, print its token stream")
	fmt.Println("  loxgo parse <file>       scan+parse a file, print its AST in prefix form")
	fmt.Println("  loxgo evaluate <file>    scan+parse+evaluate a file's bare expressions")
	fmt.Println("  loxgo run <file>         scan+parse+execute a file's statements")
	fmt.Println("  loxgo --help             display this help message")
	fmt.Println("  loxgo --version          display version information")
}

func showVersion() {
	cyanColor.Println("loxgo - a tree-walking interpreter for the lox scripting language")
	cyanColor.Printf("Version: %s\n", Version)
	cyanColor.Printf("License: %s\n", License)
	cyanColor.Printf("Author : %s\n", Author)
}
