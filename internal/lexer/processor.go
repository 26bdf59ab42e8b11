package lexer

import (
	"github.com/funvibe/golox/internal/pipeline"
	"github.com/funvibe/golox/internal/token"
)

// LexerProcessor turns ctx.SourceCode into ctx.TokenStream.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	tokens, errs := Tokenize(ctx.SourceCode)
	for _, err := range errs {
		ctx.AddError(err)
	}
	ctx.TokenStream = token.NewStream(tokens)
	return ctx
}
