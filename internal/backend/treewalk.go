package backend

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/funvibe/golox/internal/ast"
	"github.com/funvibe/golox/internal/evaluator"
	"github.com/funvibe/golox/internal/pipeline"
)

// TreeWalkBackend runs programs on the tree-walk evaluator.
type TreeWalkBackend struct {
	// eval is reused across runs when set, so globals persist.
	eval *evaluator.Evaluator
}

// NewTreeWalk creates a backend that starts every run with fresh globals.
func NewTreeWalk() *TreeWalkBackend {
	return &TreeWalkBackend{}
}

// NewSession creates a backend whose global environment survives between
// runs, as the REPL needs.
func NewSession() *TreeWalkBackend {
	return &TreeWalkBackend{eval: evaluator.New()}
}

// Globals returns the session's global environment, or nil for a
// backend without a session.
func (b *TreeWalkBackend) Globals() *evaluator.Environment {
	if b.eval == nil {
		return nil
	}
	return b.eval.GlobalEnv
}

func (b *TreeWalkBackend) Run(ctx *pipeline.PipelineContext) (evaluator.Object, error) {
	if ctx.AstRoot == nil {
		return nil, fmt.Errorf("no AST to execute")
	}
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok {
		return nil, fmt.Errorf("cannot execute %T", ctx.AstRoot)
	}
	if ctx.Failed() {
		return nil, ctx.Errors[0]
	}

	eval := b.eval
	if eval == nil {
		eval = evaluator.New()
	}
	logger := ctx.Logger()
	eval.SetLogger(logger)
	eval.Context = ctx.Context
	eval.Out = ctx.Out
	eval.CurrentFile = ctx.FilePath
	if ctx.Settings != nil {
		eval.MaxCallDepth = ctx.Settings.MaxCallDepth
	}

	start := time.Now()
	result := eval.Run(program)
	logger.Debug("run done",
		slog.String("backend", b.Name()),
		slog.Duration("elapsed", time.Since(start)),
		slog.Bool("failed", result != nil && result.Type() == evaluator.ERROR_OBJ))
	return result, nil
}

// Name returns the backend name
func (b *TreeWalkBackend) Name() string {
	return "tree-walk"
}
