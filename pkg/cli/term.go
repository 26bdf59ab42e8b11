package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/golox/internal/config"
)

const (
	colorRed   = "\x1b[31m"
	colorCyan  = "\x1b[36m"
	colorReset = "\x1b[0m"
)

// isTerminal reports whether the stream is an interactive terminal.
func isTerminal(stream interface{}) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorEnabled resolves the configured colour mode for output going to w.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return isTerminal(w)
}

func (r *runner) paint(color, s string) string {
	if !r.color {
		return s
	}
	return color + s + colorReset
}
