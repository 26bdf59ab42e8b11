package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/funvibe/golox/internal/analyzer"
	"github.com/funvibe/golox/internal/ast"
	"github.com/funvibe/golox/internal/backend"
	"github.com/funvibe/golox/internal/config"
	"github.com/funvibe/golox/internal/evaluator"
	"github.com/funvibe/golox/internal/lexer"
	"github.com/funvibe/golox/internal/parser"
	"github.com/funvibe/golox/internal/pipeline"
)

const (
	promptCont = "... "
	replHelp   = `Enter Lox declarations and statements. A lone expression prints its value.
Commands:
  :env     show the variables in scope
  :help    show this help
  :quit    leave (Ctrl-D also works)
`
)

// session is the state the REPL keeps between inputs.
type session struct {
	r       *runner
	backend *backend.TreeWalkBackend
	exec    *backend.ExecutionProcessor
}

func (r *runner) newSession() *session {
	b := backend.NewSession()
	return &session{r: r, backend: b, exec: backend.NewExecutionProcessor(b)}
}

// eval runs one complete input against the session globals. A lone
// expression statement echoes its value.
func (s *session) eval(code string) {
	ctx := s.r.newContext(code, "")
	ctx = pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{},
		s.exec,
	).Run(ctx)

	if s.r.report(ctx) {
		return
	}
	if isLoneExpression(ctx.AstRoot) && s.exec.Result != nil {
		fmt.Fprintln(s.r.stdout, s.r.paint(colorCyan, evaluator.Repr(s.exec.Result)))
	}
}

func isLoneExpression(node ast.Node) bool {
	program, ok := node.(*ast.Program)
	if !ok || len(program.Statements) != 1 {
		return false
	}
	_, ok = program.Statements[0].(*ast.ExpressionStatement)
	return ok
}

// command handles a ':' line and reports whether the REPL should exit.
func (s *session) command(line string) (exit bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case ":quit", ":q", ":exit":
		return true
	case ":env":
		fmt.Fprint(s.r.stdout, s.backend.Globals().Pretty())
	case ":help":
		fmt.Fprint(s.r.stdout, replHelp)
	default:
		fmt.Fprintf(s.r.stdout, "unknown command %s. Type :help for a list.\n", strings.TrimSpace(line))
	}
	return false
}

func (r *runner) repl() int {
	fmt.Fprintf(r.stdout, "lox %s. Type :help for help.\n", config.Version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := r.settings.HistoryPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		} else {
			r.logger.Warn("cannot save history", "path", histPath, "err", err)
		}
	}()

	s := r.newSession()
	for {
		code, ok := readByParseProbe(ln, r.settings.Prompt, promptCont)
		if !ok {
			fmt.Fprintln(r.stdout)
			break
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			if s.command(code) {
				break
			}
			continue
		}
		s.eval(code)
	}
	return ExitOK
}

// prompter is the part of liner.State the input loop needs.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// readByParseProbe reads lines until they form input that is not merely
// incomplete. It returns false at end of input.
func readByParseProbe(ln prompter, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C drops the pending input.
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, errs := parser.Parse(src); parser.IsIncomplete(errs) && strings.TrimSpace(line) != "" {
			continue
		}
		return src, true
	}
}
