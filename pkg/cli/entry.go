package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/funvibe/golox/internal/analyzer"
	"github.com/funvibe/golox/internal/ast"
	"github.com/funvibe/golox/internal/backend"
	"github.com/funvibe/golox/internal/config"
	"github.com/funvibe/golox/internal/lexer"
	"github.com/funvibe/golox/internal/parser"
	"github.com/funvibe/golox/internal/pipeline"
	"github.com/funvibe/golox/internal/prettyprinter"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1 // static or runtime error
	ExitUsage = 2
)

const usage = `Usage:
  lox [flags] [file]         run a file (stdin when piped, REPL on a terminal)
  lox [flags] run <file>     run a file
  lox [flags] repl           start the REPL
  lox check <file>           lex, parse and validate only
  lox fmt <file>             print the file reformatted
  lox ast <file>             print the syntax tree
  lox -e '<source>'          run source given on the command line
  lox version | help

Flags:
  -trace    log pipeline stages and calls to stderr
`

// Run is the process entry point. It returns the exit code.
func Run() int {
	return Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// runner holds the streams and settings of one invocation.
type runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	settings *config.Settings
	logger   *slog.Logger
	color    bool
	trace    bool
}

// Main parses args and runs the selected command.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	trace := fs.Bool("trace", false, "log pipeline stages and calls")
	source := fs.String("e", "", "run source given on the command line")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	evalMode := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "e" {
			evalMode = true
		}
	})

	r := &runner{stdin: stdin, stdout: stdout, stderr: stderr, trace: *trace}
	rest := fs.Args()

	if evalMode {
		if len(rest) > 0 {
			fmt.Fprintf(stderr, "unexpected arguments after -e: %s\n", strings.Join(rest, " "))
			return ExitUsage
		}
		if err := r.setup("."); err != nil {
			return r.fail(err)
		}
		return r.runSource(*source, "")
	}

	if len(rest) == 0 {
		if err := r.setup("."); err != nil {
			return r.fail(err)
		}
		if isTerminal(stdin) {
			return r.repl()
		}
		input, err := io.ReadAll(stdin)
		if err != nil {
			return r.fail(fmt.Errorf("reading stdin: %w", err))
		}
		return r.runSource(string(input), "")
	}

	command, operands := rest[0], rest[1:]
	switch command {
	case "help":
		fmt.Fprint(stdout, usage)
		return ExitOK
	case "version":
		fmt.Fprintf(stdout, "lox %s\n", config.Version)
		return ExitOK
	case "repl":
		if len(operands) != 0 {
			fmt.Fprint(stderr, usage)
			return ExitUsage
		}
		if err := r.setup("."); err != nil {
			return r.fail(err)
		}
		return r.repl()
	case "run", "check", "fmt", "ast":
		if len(operands) != 1 {
			fmt.Fprintf(stderr, "%s: expected exactly one file\n", command)
			fmt.Fprint(stderr, usage)
			return ExitUsage
		}
		return r.fileCommand(command, operands[0])
	}

	if len(rest) == 1 && (hasSourceExt(command) || fileExists(command)) {
		return r.fileCommand("run", command)
	}
	fmt.Fprintf(stderr, "unknown command %q\n", command)
	fmt.Fprint(stderr, usage)
	return ExitUsage
}

// setup resolves settings for scripts in dir and builds the logger.
func (r *runner) setup(dir string) error {
	settings, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	if r.trace {
		settings.Trace = true
	}
	r.settings = settings

	level := slog.LevelWarn
	if settings.Trace {
		level = slog.LevelDebug
	}
	r.logger = slog.New(slog.NewTextHandler(r.stderr, &slog.HandlerOptions{Level: level}))
	r.color = colorEnabled(settings.Color, r.stderr)
	return nil
}

func (r *runner) fileCommand(command, path string) int {
	if err := r.setup(filepath.Dir(path)); err != nil {
		return r.fail(err)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return r.fail(fmt.Errorf("reading input: %w", err))
	}

	switch command {
	case "check":
		ctx := r.frontEnd(string(source), path, true)
		if r.report(ctx) {
			return ExitError
		}
		fmt.Fprintf(r.stdout, "%s: ok\n", path)
		return ExitOK
	case "fmt":
		ctx := r.frontEnd(string(source), path, false)
		if r.report(ctx) {
			return ExitError
		}
		fmt.Fprint(r.stdout, prettyprinter.NewCodePrinter().Print(ctx.AstRoot))
		return ExitOK
	case "ast":
		ctx := r.frontEnd(string(source), path, false)
		if r.report(ctx) {
			return ExitError
		}
		fmt.Fprint(r.stdout, prettyprinter.NewTreePrinter().Print(ctx.AstRoot))
		return ExitOK
	}
	return r.runSource(string(source), path)
}

func (r *runner) newContext(source, path string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = path
	ctx.Out = r.stdout
	ctx.Settings = r.settings
	ctx.Log = r.logger
	ctx.IsTestMode = config.IsTestMode
	return ctx
}

// frontEnd lexes and parses source, and validates it when analyze is set.
func (r *runner) frontEnd(source, path string, analyze bool) *pipeline.PipelineContext {
	stages := []pipeline.Processor{&lexer.LexerProcessor{}, &parser.ParserProcessor{}}
	if analyze {
		stages = append(stages, &analyzer.SemanticAnalyzerProcessor{})
	}
	return pipeline.New(stages...).Run(r.newContext(source, path))
}

// runSource runs a whole program with fresh globals. Ctrl-C cancels it.
func (r *runner) runSource(source, path string) int {
	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx := r.newContext(source, path)
	ctx.Context = signalCtx
	ctx = pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{},
		backend.NewExecutionProcessor(backend.NewTreeWalk()),
	).Run(ctx)

	if r.report(ctx) {
		return ExitError
	}
	return ExitOK
}

// report prints the diagnostics of ctx and says whether there were any.
func (r *runner) report(ctx *pipeline.PipelineContext) bool {
	for _, err := range ctx.Errors {
		fmt.Fprintln(r.stderr, r.paint(colorRed, err.Error()))
	}
	if ctx.Failed() {
		return true
	}
	if _, ok := ctx.AstRoot.(*ast.Program); !ok {
		fmt.Fprintln(r.stderr, r.paint(colorRed, "internal error: no program was produced"))
		return true
	}
	return false
}

func (r *runner) fail(err error) int {
	fmt.Fprintln(r.stderr, r.paint(colorRed, "Error: "+err.Error()))
	return ExitError
}

func hasSourceExt(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
