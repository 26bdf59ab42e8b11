package backend

import (
	"github.com/funvibe/golox/internal/diagnostics"
	"github.com/funvibe/golox/internal/evaluator"
	"github.com/funvibe/golox/internal/pipeline"
	"github.com/funvibe/golox/internal/token"
)

// ExecutionProcessor is the last pipeline stage: it runs a Backend and
// turns runtime errors into diagnostics.
type ExecutionProcessor struct {
	Backend Backend
	// Result holds the value of the last statement of the last successful run.
	Result evaluator.Object
}

// NewExecutionProcessor creates a new pipeline step for the given backend
func NewExecutionProcessor(b Backend) *ExecutionProcessor {
	return &ExecutionProcessor{Backend: b}
}

func (p *ExecutionProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	p.Result = nil
	// If previous steps failed, don't run execution
	if ctx.AstRoot == nil || ctx.Failed() {
		return ctx
	}

	result, err := p.Backend.Run(ctx)
	if err != nil {
		ctx.AddError(diagnostics.NewError(diagnostics.ErrR001, token.Token{}, "%s", err.Error()))
		return ctx
	}

	if errObj, ok := result.(*evaluator.Error); ok {
		p.handleEvaluatorError(ctx, errObj)
		return ctx
	}
	p.Result = result
	return ctx
}

func (p *ExecutionProcessor) handleEvaluatorError(ctx *pipeline.PipelineContext, err *evaluator.Error) {
	tok := token.Token{Line: err.Line, Column: err.Column}
	msg := err.Message
	if trace := err.FormatStackTrace(ctx.FilePath); trace != "" {
		msg += "\n" + trace
	}
	ctx.AddError(diagnostics.NewError(err.Kind.Code(), tok, "%s", msg))
}
