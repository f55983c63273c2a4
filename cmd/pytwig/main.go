// Command pytwig is the CLI entry point: it reads a source file, runs it
// through internal/interp, and reports errors, or drops into an
// interactive REPL.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"

	"pytwig/internal/interp"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.Red(err.Error()))
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		printUsage()
		return nil
	}
	switch args[1] {
	case "run":
		if len(args) != 3 {
			printUsage()
			return fmt.Errorf("run: expected exactly one script path")
		}
		return runFile(args[2])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[1])
	}
}

func runFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}
	source, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	ctx := interp.NewWriterContext(os.Stdout)
	result := interp.Run(string(source), ctx, interp.Options{SourcePath: absPath})
	if !result.Ok() {
		interp.FormatError(os.Stderr, result)
		return fmt.Errorf("%s: execution failed", filepath.Base(absPath))
	}
	return nil
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s run <script>\n", prog)
	fmt.Fprintf(os.Stderr, "       %s repl\n", prog)
}
