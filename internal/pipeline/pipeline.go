package pipeline

import "log/slog"

// Processor is one stage of the pipeline. Stages read what earlier stages
// left in the context and append their own results and diagnostics.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Later stages skip themselves when they find errors, but they still
		// run so every stage gets a chance to look at the context.
		ctx.Logger().Debug("pipeline stage done",
			slog.String("stage", stageName(processor)),
			slog.Int("errors", len(ctx.Errors)))
	}
	return ctx
}
