package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/funvibe/golox/internal/ast"
	"github.com/funvibe/golox/internal/config"
	"github.com/funvibe/golox/internal/diagnostics"
	"github.com/funvibe/golox/internal/token"
)

// PipelineContext carries the state of one run through the pipeline.
type PipelineContext struct {
	// RunID identifies the run in log output.
	RunID      string
	SourceCode string
	FilePath   string

	TokenStream *token.Stream
	AstRoot     ast.Node
	Errors      []*diagnostics.DiagnosticError

	// Out receives program output (print statements). Defaults to stdout.
	Out io.Writer
	// Settings are the resolved interpreter settings.
	Settings *config.Settings
	// Log is the structured logger for this run. Nil means slog.Default().
	Log *slog.Logger
	// Context cancels execution when done. Nil means the run is not
	// interruptible.
	Context context.Context

	IsTestMode bool
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{
		RunID:      uuid.NewString(),
		SourceCode: sourceCode,
		Out:        os.Stdout,
		Settings:   config.DefaultSettings(),
	}
}

// Logger returns the run logger tagged with the run id.
func (ctx *PipelineContext) Logger() *slog.Logger {
	l := ctx.Log
	if l == nil {
		l = slog.Default()
	}
	if ctx.RunID != "" {
		l = l.With(slog.String("run", ctx.RunID))
	}
	return l
}

// Failed reports whether any stage has recorded an error.
func (ctx *PipelineContext) Failed() bool {
	return len(ctx.Errors) > 0
}

// AddError records a diagnostic, filling in the file path when missing.
func (ctx *PipelineContext) AddError(err *diagnostics.DiagnosticError) {
	if err.File == "" {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, err)
}

func stageName(p Processor) string {
	return fmt.Sprintf("%T", p)
}
