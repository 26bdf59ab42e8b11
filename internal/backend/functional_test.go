package backend_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/golox/internal/analyzer"
	"github.com/funvibe/golox/internal/backend"
	"github.com/funvibe/golox/internal/config"
	"github.com/funvibe/golox/internal/lexer"
	"github.com/funvibe/golox/internal/parser"
	"github.com/funvibe/golox/internal/pipeline"
)

func runSource(t *testing.T, name, source string, b backend.Backend) (string, *pipeline.PipelineContext) {
	t.Helper()
	var out bytes.Buffer
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = name
	ctx.Out = &out
	ctx.IsTestMode = true

	runWith(ctx, backend.NewExecutionProcessor(b))
	return out.String(), ctx
}

func runWith(ctx *pipeline.PipelineContext, exec *backend.ExecutionProcessor) *pipeline.PipelineContext {
	return pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.SemanticAnalyzerProcessor{},
		exec,
	).Run(ctx)
}

// TestFunctional runs each testdata program through the whole pipeline
// and compares program output plus diagnostics with the .want file.
func TestFunctional(t *testing.T) {
	var testFiles []string
	for _, ext := range config.SourceFileExtensions {
		matches, err := filepath.Glob(filepath.Join("testdata", "*"+ext))
		if err != nil {
			t.Fatalf("glob: %v", err)
		}
		testFiles = append(testFiles, matches...)
	}
	if len(testFiles) == 0 {
		t.Fatal("no test programs found in testdata")
	}

	for _, testFile := range testFiles {
		ext := filepath.Ext(testFile)
		testName := strings.TrimSuffix(filepath.Base(testFile), ext)

		t.Run(testName, func(t *testing.T) {
			source, err := os.ReadFile(testFile)
			if err != nil {
				t.Fatalf("Failed to read source: %v", err)
			}
			wantBytes, err := os.ReadFile(strings.TrimSuffix(testFile, ext) + ".want")
			if err != nil {
				t.Fatalf("Failed to read .want file: %v", err)
			}

			stdout, ctx := runSource(t, filepath.Base(testFile), string(source), backend.NewTreeWalk())

			lines := []string{strings.TrimSpace(stdout)}
			for _, e := range ctx.Errors {
				lines = append(lines, e.Error())
			}
			got := strings.TrimSpace(strings.Join(lines, "\n"))
			want := strings.TrimSpace(strings.ReplaceAll(string(wantBytes), "\r\n", "\n"))

			if got != want {
				t.Errorf("Output mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, got)
			}
		})
	}
}
