package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"monkey/repl"
	"os"
	"os/signal"
	"strings"

	"github.com/peterh/liner"
)

const banner = "Monkey " + version + "\nCtrl+C cancels input, Ctrl+D exits."

func cmdRepl(args []string, stderr io.Writer) int {
	cfg, _, ok := loadSettings("repl", args, stderr)
	if !ok {
		return 2
	}
	logger := newLogger(cfg, stderr)
	session := repl.NewSession(evaluatorOptions(cfg, logger)...)

	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				logger.Warn("cannot save history", "path", histPath, "error", err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Error("read input", "error", err)
			}
			fmt.Println()
			return 0
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if code == "exit" {
			return 0
		}
		ln.AppendHistory(line)

		// Ctrl+C while a line is running cancels it through the evaluator's
		// context.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		result := session.Eval(ctx, code)
		stop()

		if err := repl.Render(os.Stdout, result); err != nil {
			logger.Error("write result", "error", err)
			return 1
		}
	}
}
