package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color modes for diagnostics output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings represents a lox.yaml configuration.
type Settings struct {
	// MaxCallDepth is the deepest Lox call nesting before a stack overflow error.
	MaxCallDepth int `yaml:"max_call_depth"`

	// Trace enables debug logging of pipeline stages and calls.
	Trace bool `yaml:"trace"`

	// Color is one of auto, always, never.
	Color string `yaml:"color"`

	// HistoryFile is where the REPL keeps its line history.
	// A leading "~/" is expanded to the home directory.
	HistoryFile string `yaml:"history_file"`

	Prompt string `yaml:"prompt"`

	// Path is the file the settings were loaded from, empty for defaults.
	Path string `yaml:"-"`
}

func DefaultSettings() *Settings {
	s := &Settings{}
	s.setDefaults()
	return s
}

// LoadSettings reads and parses a lox.yaml file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseSettings(data, path)
}

// ParseSettings parses lox.yaml content from bytes.
// The path argument is used only for error messages.
func ParseSettings(data []byte, path string) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	s.setDefaults()
	if err := s.validate(path); err != nil {
		return nil, err
	}
	s.Path = path
	return &s, nil
}

// FindConfig searches for lox.yaml starting from dir and walking up
// to parent directories.
// Returns the path to the config file, or empty string if none is found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve finds and loads the settings that apply to scripts in dir, then
// applies environment overrides. Missing config files are not an error.
func Resolve(dir string) (*Settings, error) {
	s := DefaultSettings()
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if s, err = LoadSettings(path); err != nil {
			return nil, err
		}
	}
	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyEnv overrides settings from environment variables.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMaxCallDepth); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s: expected a positive integer, got %q", EnvMaxCallDepth, v)
		}
		s.MaxCallDepth = n
	}
	if v, ok := lookup(EnvTrace); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTrace, err)
		}
		s.Trace = b
	}
	// NO_COLOR disables colour whatever its value.
	if _, ok := lookup(EnvNoColor); ok {
		s.Color = ColorNever
	}
	return nil
}

// HistoryPath returns HistoryFile with "~/" expanded.
func (s *Settings) HistoryPath() string {
	if rest, ok := strings.CutPrefix(s.HistoryFile, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return rest
		}
		return filepath.Join(home, rest)
	}
	return s.HistoryFile
}

func (s *Settings) validate(path string) error {
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color: unknown mode %q (want auto, always or never)", path, s.Color)
	}
	if s.MaxCallDepth < 0 {
		return fmt.Errorf("%s: max_call_depth must not be negative", path)
	}
	return nil
}

// setDefaults fills in default values for omitted fields.
func (s *Settings) setDefaults() {
	if s.MaxCallDepth == 0 {
		s.MaxCallDepth = DefaultMaxCallDepth
	}
	if s.Color == "" {
		s.Color = ColorAuto
	}
	if s.HistoryFile == "" {
		s.HistoryFile = "~/.lox_history"
	}
	if s.Prompt == "" {
		s.Prompt = "> "
	}
}
