package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func TestParseSettingsDefaults(t *testing.T) {
	s, err := ParseSettings([]byte("trace: true\n"), "lox.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Settings{
		MaxCallDepth: DefaultMaxCallDepth,
		Trace:        true,
		Color:        ColorAuto,
		HistoryFile:  "~/.lox_history",
		Prompt:       "> ",
		Path:         "lox.yaml",
	}
	if diff := deep.Equal(s, want); diff != nil {
		t.Error(diff)
	}
}

func TestParseSettingsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bad color", "color: rainbow\n", "unknown mode"},
		{"negative depth", "max_call_depth: -3\n", "must not be negative"},
		{"bad yaml", "max_call_depth: [1\n", "parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings([]byte(tt.input), "lox.yaml")
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(root, "lox.yml")
	if err := os.WriteFile(cfg, []byte("max_call_depth: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("FindConfig = %q, want %q", got, cfg)
	}

	s, err := LoadSettings(got)
	if err != nil {
		t.Fatal(err)
	}
	if s.MaxCallDepth != 50 {
		t.Errorf("MaxCallDepth = %d, want 50", s.MaxCallDepth)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvMaxCallDepth: "64",
		EnvTrace:        "1",
		EnvNoColor:      "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	s := DefaultSettings()
	if err := s.ApplyEnv(lookup); err != nil {
		t.Fatal(err)
	}
	if s.MaxCallDepth != 64 || !s.Trace || s.Color != ColorNever {
		t.Errorf("unexpected settings after env: %+v", s)
	}

	env[EnvMaxCallDepth] = "zero"
	if err := DefaultSettings().ApplyEnv(lookup); err == nil {
		t.Error("expected error for non-numeric depth")
	}
	env[EnvMaxCallDepth] = "0"
	if err := DefaultSettings().ApplyEnv(lookup); err == nil {
		t.Error("expected error for zero depth")
	}
}

func TestZeroDepthFallsBackToDefault(t *testing.T) {
	s, err := ParseSettings([]byte("max_call_depth: 0\n"), "lox.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if s.MaxCallDepth != DefaultMaxCallDepth {
		t.Errorf("MaxCallDepth = %d, want %d", s.MaxCallDepth, DefaultMaxCallDepth)
	}
}
