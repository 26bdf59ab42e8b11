package analyzer

import (
	"github.com/funvibe/golox/internal/pipeline"
)

type SemanticAnalyzerProcessor struct{}

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// A tree with syntax errors is incomplete; checking it would only add noise.
	if ctx.AstRoot == nil || ctx.Failed() {
		return ctx
	}

	for _, err := range New().Analyze(ctx.AstRoot) {
		ctx.AddError(err)
	}
	return ctx
}
