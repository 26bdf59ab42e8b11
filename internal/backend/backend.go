// Package backend runs validated programs. The tree-walk interpreter is
// the only backend; the interface keeps the pipeline independent of it.
package backend

import (
	"github.com/funvibe/golox/internal/evaluator"
	"github.com/funvibe/golox/internal/pipeline"
)

// Backend is the interface for execution backends
type Backend interface {
	// Run executes ctx.AstRoot. A Lox runtime error comes back as an
	// *evaluator.Error result; the error return is for host failures.
	Run(ctx *pipeline.PipelineContext) (evaluator.Object, error)

	// Name returns the backend name for display
	Name() string
}
