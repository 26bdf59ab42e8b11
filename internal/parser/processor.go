package parser

import (
	"github.com/funvibe/golox/internal/diagnostics"
	"github.com/funvibe/golox/internal/pipeline"
	"github.com/funvibe/golox/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		// Only reachable when the lexer stage was left out of the pipeline.
		ctx.AddError(diagnostics.NewError(diagnostics.ErrP001, token.Token{}, "parser: token stream is nil"))
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	program := parser.ParseProgram()
	program.File = ctx.FilePath
	ctx.AstRoot = program

	return ctx
}
