/*
Vb6p parses VB6 source files and reports what it found.

Given one or more `.bas`, `.cls`, `.frm`, `.ctl`, or `.vbp` files on the
command line, it decodes each to UTF-8, parses it with the appropriate mode
for its extension, and prints a summary of the file along with any
diagnostics produced. With no files given and an interactive terminal, it
instead starts a readline-based REPL for loading and exploring files one at
a time.

Usage:

	vb6p [flags] [file ...]

The flags are:

	-v, --version
		Print the current version of vb6p and exit.

	-i, --interactive
		Start the interactive REPL even if files were also given on the
		command line, or even if stdin/stdout are not a terminal.

	-c, --config FILE
		Load configuration from the given TOML file instead of using
		built-in defaults. Of its settings, vb6p reads only
		server.jwt_secret_env, the name of the environment variable that
		holds the --serve JWT signing secret.

	-s, --serve ADDRESS
		Instead of parsing files, start the HTTP API on ADDRESS (e.g.
		":8080") and block until killed.

	--db PATH
		Directory to store vb6server's sqlite database in, when --serve is
		given. If empty, an in-memory store is used instead and all data is
		lost when the process exits.

Each file gets one summary line, followed by its diagnostics one per line as
"file:line:column: kind: message", indented by two spaces. Exit status is
non-zero if any file produced at least one diagnostic.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/scriptandcompile/vb6parse/internal/vb6cfg"
	"github.com/scriptandcompile/vb6parse/internal/vb6version"
)

const (
	// ExitSuccess indicates every file parsed with no diagnostics.
	ExitSuccess = iota
	// ExitDiagnostics indicates at least one file produced a diagnostic.
	ExitDiagnostics
	// ExitInitError indicates vb6p could not even start (bad config, bad
	// flags, an unreadable file).
	ExitInitError
)

var (
	returnCode        = ExitSuccess
	flagVersion       = pflag.BoolP("version", "v", false, "Print the current version of vb6p and exit")
	flagInteractive   = pflag.BoolP("interactive", "i", false, "Start the interactive REPL")
	flagConfig        = pflag.StringP("config", "c", "", "Load configuration from the given TOML file")
	flagServe         = pflag.StringP("serve", "s", "", "Start the HTTP API on this address instead of parsing files")
	flagServeDatabase = pflag.String("db", "", "sqlite storage directory for --serve; empty means in-memory")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", vb6version.Current)
		return
	}

	cfg := vb6cfg.Default()
	if *flagConfig != "" {
		loaded, err := vb6cfg.Load(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		cfg = loaded
	}

	if *flagServe != "" {
		if err := runServe(cfg, *flagServe, *flagServeDatabase); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
		}
		return
	}

	args := pflag.Args()

	if *flagInteractive || (len(args) == 0 && isInteractiveTerminal()) {
		if err := runREPL(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
		}
		return
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "ERROR: no files given (use -i for interactive mode)")
		returnCode = ExitInitError
		return
	}

	anyDiags := false
	for _, path := range args {
		diagCount, err := parseFileAndReport(os.Stdout, cfg, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s: %s\n", path, err.Error())
			returnCode = ExitInitError
			continue
		}
		if diagCount > 0 {
			anyDiags = true
		}
	}

	if anyDiags && returnCode == ExitSuccess {
		returnCode = ExitDiagnostics
	}
}
