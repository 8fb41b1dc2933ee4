package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"monkey/evaluator"
	"monkey/lexer"
	"monkey/object"
	"monkey/parser"
)

const PROMPT = ">> "

// Result is the outcome of one line. Value is nil when the line produced
// nothing to print or was not evaluated.
type Result struct {
	Diagnostics []string
	Value       object.Object
}

// Session owns the environment shared by every line of an interactive run,
// so let bindings persist from one line to the next.
type Session struct {
	env       *object.Environment
	evaluator *evaluator.Evaluator
}

func NewSession(opts ...evaluator.Option) *Session {
	return &Session{
		env:       object.NewEnvironment(),
		evaluator: evaluator.New(opts...),
	}
}

func (s *Session) Env() *object.Environment {
	return s.env
}

// Eval parses input and, only if parsing produced no diagnostics, evaluates
// it in the session environment.
func (s *Session) Eval(ctx context.Context, input string) Result {
	p := parser.New(lexer.New(input))
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		return Result{Diagnostics: p.Errors()}
	}
	return Result{Value: s.evaluator.Eval(ctx, program, s.env)}
}

// Render writes a result the way the loop displays it.
func Render(out io.Writer, r Result) error {
	if len(r.Diagnostics) != 0 {
		if _, err := io.WriteString(out, "Syntax errors!\n"); err != nil {
			return err
		}
		for _, msg := range r.Diagnostics {
			if _, err := io.WriteString(out, "\t"+msg+"\n"); err != nil {
				return err
			}
		}
		return nil
	}
	if r.Value == nil {
		return nil
	}
	_, err := io.WriteString(out, r.Value.Inspect()+"\n")
	return err
}

// Start reads lines from in until EOF or "exit", evaluating each in s.
func Start(ctx context.Context, in io.Reader, out io.Writer, s *Session, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		scanned := scanner.Scan()
		if !scanned {
			//err is nil if EOF
			return scanner.Err()
		}

		input := scanner.Text()
		if input == "exit" {
			return nil
		}

		if err := Render(out, s.Eval(ctx, input)); err != nil {
			return err
		}
	}
}
