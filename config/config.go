package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"monkey/evaluator"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the home directory when no -config flag
// is given.
const DefaultFileName = ".monkey.yaml"

// Config holds the settings of the monkey command. Every key is optional.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	MaxDepth    int    `yaml:"max_depth"`
	LogLevel    string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Prompt:      ">> ",
		HistoryFile: "~/.monkey_history",
		MaxDepth:    evaluator.DefaultMaxDepth,
		LogLevel:    "warn",
	}
}

// ValidationError aggregates every problem found in a configuration.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load reads and validates the YAML file at path. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration document. Unknown keys are rejected and an
// empty document yields the defaults.
func Parse(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	cfg := Default()
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads path when set. Otherwise it loads DefaultFileName from the
// home directory if present, falling back to Default.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	candidate := filepath.Join(home, DefaultFileName)
	if _, err := os.Stat(candidate); err != nil {
		return Default(), nil
	}
	return Load(candidate)
}

func (c *Config) Validate() error {
	var errs ValidationError
	if c.MaxDepth < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_depth must not be negative, got %d", c.MaxDepth))
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		errs.Issues = append(errs.Issues, fmt.Sprintf("log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if strings.ContainsAny(c.Prompt, "\n\r") {
		errs.Issues = append(errs.Issues, "prompt must be a single line")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// HistoryPath expands a leading ~ in HistoryFile. An empty result disables
// history.
func (c *Config) HistoryPath() string {
	path := c.HistoryFile
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
