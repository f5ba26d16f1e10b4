package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/scriptandcompile/vb6parse/internal/vb6cfg"
)

// runREPL starts an interactive line-reading loop, the same chzyer/readline
// wrapper cmd/tqi's InteractiveCommandReader wraps for its own game shell:
// the user types a file path, vb6p parses it and prints the same summary
// parseFileAndReport would, and "QUIT" (or EOF) ends the session.
func runREPL(cfg vb6cfg.Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "vb6p> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "QUIT",
	})
	if err != nil {
		return fmt.Errorf("could not start readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), "vb6p interactive mode. Enter a file path to parse it, or QUIT to exit.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not read input: %w", err)
		}

		path := strings.TrimSpace(line)
		if path == "" {
			continue
		}
		if strings.EqualFold(path, "quit") || strings.EqualFold(path, "exit") {
			return nil
		}

		if _, err := parseFileAndReport(os.Stdout, cfg, path); err != nil {
			fmt.Fprintf(rl.Stderr(), "ERROR: %s\n", err.Error())
		}
	}
}
