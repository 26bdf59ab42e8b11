package pipeline_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/funvibe/golox/internal/diagnostics"
	"github.com/funvibe/golox/internal/pipeline"
	"github.com/funvibe/golox/internal/token"
)

func TestRunOrderAndErrors(t *testing.T) {
	var order []string
	stage := func(name string, fail bool) pipeline.Processor {
		return pipeline.ProcessorFunc(func(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
			order = append(order, name)
			if fail {
				ctx.AddError(diagnostics.NewError(diagnostics.ErrP001, token.Token{Line: 1, Column: 2}, "failed in %s", name))
			}
			return ctx
		})
	}

	ctx := pipeline.NewPipelineContext("source")
	ctx.FilePath = "main.lox"
	ctx = pipeline.New(stage("a", false), stage("b", true), stage("c", false)).Run(ctx)

	if strings.Join(order, ",") != "a,b,c" {
		t.Errorf("unexpected stage order %v", order)
	}
	if !ctx.Failed() || len(ctx.Errors) != 1 {
		t.Fatalf("expected one error, got %v", ctx.Errors)
	}
	if got := ctx.Errors[0].Error(); got != "main.lox:1:2: [P001] failed in b" {
		t.Errorf("unexpected error %q", got)
	}
}

func TestLoggerCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	ctx := pipeline.NewPipelineContext("")
	ctx.Log = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	pipeline.New(pipeline.ProcessorFunc(func(c *pipeline.PipelineContext) *pipeline.PipelineContext { return c })).Run(ctx)

	if ctx.RunID == "" {
		t.Fatal("expected a run id")
	}
	out := buf.String()
	if !strings.Contains(out, "run="+ctx.RunID) || !strings.Contains(out, "pipeline stage done") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestNewContextDefaults(t *testing.T) {
	a := pipeline.NewPipelineContext("x")
	b := pipeline.NewPipelineContext("x")
	if a.RunID == b.RunID {
		t.Error("run ids must differ between runs")
	}
	if a.Settings == nil || a.Out == nil || a.Context != nil {
		t.Errorf("unexpected defaults: %+v", a)
	}
}
