package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/formheader"
	"github.com/scriptandcompile/vb6parse/internal/vb6/parser"
	"github.com/scriptandcompile/vb6parse/internal/vb6/vbp"
	"github.com/scriptandcompile/vb6parse/internal/vb6cfg"
	"github.com/scriptandcompile/vb6parse/internal/vb6enc"
)

// isInteractiveTerminal reports whether both stdin and stdout look like a
// real terminal, the same check cmd/tqi's readline-vs-direct split is
// grounded on — except performed with mattn/go-isatty here instead of
// letting the input layer decide for itself.
func isInteractiveTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// parseFileAndReport parses one file and writes a one-line summary plus
// its diagnostics to w. It returns the diagnostic count so the caller can
// decide the process's exit status.
func parseFileAndReport(w io.Writer, cfg vb6cfg.Config, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("could not read file: %w", err)
	}

	src, err := vb6enc.ToUTF8(raw)
	if err != nil {
		return 0, fmt.Errorf("could not decode file: %w", err)
	}

	diags, formName := parseByExtension(path, src)

	summary := humanize.Bytes(uint64(len(src)))
	if formName != "" {
		fmt.Fprintf(w, "%s: %s, form %q, %d diagnostic(s)\n", path, summary, formName, len(diags))
	} else {
		fmt.Fprintf(w, "%s: %s, %d diagnostic(s)\n", path, summary, len(diags))
	}

	colorize := isatty.IsTerminal(os.Stdout.Fd())
	for _, d := range diags {
		printDiagnostic(w, d, colorize)
	}

	return len(diags), nil
}

// parseByExtension routes a file to the parsing mode its extension calls
// for: formheader for the two form-shaped kinds, the generic parser for
// plain code modules, and vbp for project manifests, which never reach the
// lexer at all.
func parseByExtension(path string, src []byte) ([]diag.Diagnostic, string) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".frm", ".ctl":
		result, diags := formheader.Parse(path, src)
		return diags, result.Form.Name
	case ".vbp":
		_, diags := vbp.Parse(path, src)
		return diags, ""
	default:
		_, diags := parser.Parse(path, src)
		return diags, ""
	}
}

// printDiagnostic writes one diagnostic in "file:line:column: kind: message"
// form, indented by two spaces, coloring the kind label red when writing to a terminal.
func printDiagnostic(w io.Writer, d diag.Diagnostic, colorize bool) {
	kind := d.Kind.String()
	if colorize {
		kind = "\x1b[31m" + kind + "\x1b[0m"
	}
	fmt.Fprintf(w, "  %s:%d:%d: %s: %s\n", d.File, d.Line, d.Column, kind, d.Message)
}
