package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"monkey/config"
	"monkey/evaluator"
	"monkey/lexer"
	"monkey/object"
	"monkey/parser"
	"monkey/token"
	"os"
	"os/signal"
)

const (
	appName = "monkey"
	version = "0.1.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return cmdRepl(nil, stderr)
	}

	switch args[0] {
	case "repl":
		return cmdRepl(args[1:], stderr)
	case "run":
		return cmdRun(args[1:], stdout, stderr)
	case "tokens":
		return cmdTokens(args[1:], stdout, stderr)
	case "ast":
		return cmdAST(args[1:], stdout, stderr)
	case "version":
		fmt.Fprintln(stdout, version)
		return 0
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "%s: unknown command %q\n", appName, args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  %[1]s [repl] [-config file]        Start the interactive loop.
  %[1]s run [-config file] <file>    Evaluate a source file and print its value.
  %[1]s tokens <file>                Print the token stream of a file.
  %[1]s ast <file>                   Print the parsed program of a file.
  %[1]s version                      Print the version.
`, appName)
}

// loadSettings parses the common -config flag and returns the remaining
// positional arguments.
func loadSettings(name string, args []string, stderr io.Writer) (*config.Config, []string, bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file (default ~/"+config.DefaultFileName+")")
	if err := fs.Parse(args); err != nil {
		return nil, nil, false
	}
	cfg, err := config.Resolve(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return nil, nil, false
	}
	return cfg, fs.Args(), true
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()}))
}

func evaluatorOptions(cfg *config.Config, logger *slog.Logger) []evaluator.Option {
	return []evaluator.Option{
		evaluator.WithMaxDepth(cfg.MaxDepth),
		evaluator.WithLogger(logger),
	}
}

func readSource(name string, args []string, stderr io.Writer) (string, bool) {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "usage: %s %s <file>\n", appName, name)
		return "", false
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return "", false
	}
	return string(src), true
}

func cmdRun(args []string, stdout, stderr io.Writer) int {
	cfg, rest, ok := loadSettings("run", args, stderr)
	if !ok {
		return 2
	}
	src, ok := readSource("run", rest, stderr)
	if !ok {
		return 1
	}

	logger := newLogger(cfg, stderr)
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		for _, msg := range p.Errors() {
			fmt.Fprintf(stderr, "%s: %s\n", rest[0], msg)
		}
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result := evaluator.New(evaluatorOptions(cfg, logger)...).Eval(ctx, program, object.NewEnvironment())
	if object.IsError(result) {
		fmt.Fprintln(stderr, result.Inspect())
		return 1
	}
	if result != nil {
		fmt.Fprintln(stdout, result.Inspect())
	}
	return 0
}

func cmdTokens(args []string, stdout, stderr io.Writer) int {
	src, ok := readSource("tokens", args, stderr)
	if !ok {
		return 1
	}
	l := lexer.New(src)
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		fmt.Fprintln(stdout, tok.Type, tok.Literal)
	}
	return 0
}

func cmdAST(args []string, stdout, stderr io.Writer) int {
	src, ok := readSource("ast", args, stderr)
	if !ok {
		return 1
	}
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	for _, msg := range p.Errors() {
		fmt.Fprintf(stderr, "%s: %s\n", args[0], msg)
	}
	for _, stmt := range program.Statements {
		fmt.Fprintln(stdout, stmt.String())
	}
	if len(p.Errors()) != 0 {
		return 1
	}
	return 0
}
