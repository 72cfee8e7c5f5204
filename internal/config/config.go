package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Neev4n/nixu/pkg/shell"
)

const cwdPlaceholder = "{cwd}"

// File is the on-disk shape of the nixu configuration.
type File struct {
	Prompt      string            `yaml:"prompt"`
	PromptColor string            `yaml:"promptColor"`
	Aliases     map[string]string `yaml:"aliases"`
	Startup     []string          `yaml:"startup"`
	HistoryCap  *int              `yaml:"historyCap"`
	LogLevel    string            `yaml:"logLevel"`
	LogFormat   string            `yaml:"logFormat"`
}

// Loader reads the configuration file and environment overrides. It satisfies
// shell.ConfigSource.
type Loader struct {
	// Path of the YAML file. Empty means defaults only.
	Path string
	// Required makes a missing file an error.
	Required bool

	getwd func() (string, error)
}

// NewLoader resolves path against the current working directory once, so a
// later cd does not change which file is read.
func NewLoader(path string, required bool) *Loader {
	if path != "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return &Loader{Path: path, Required: required, getwd: os.Getwd}
}

func defaults() *File {
	historyCap := 100
	return &File{
		Prompt:     cwdPlaceholder + "$ ",
		Aliases:    map[string]string{"ls": "ls --color=auto"},
		Startup:    []string{},
		HistoryCap: &historyCap,
		LogLevel:   "warn",
		LogFormat:  "text",
	}
}

// Read returns the merged file contents without rendering the prompt.
func (l *Loader) Read() (*File, error) {
	cfg := defaults()

	if l.Path != "" {
		data, err := os.ReadFile(l.Path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist) && !l.Required:
		default:
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if historyCap := os.Getenv("NIXU_HISTORY_CAP"); historyCap != "" {
		n, err := strconv.Atoi(historyCap)
		if err != nil {
			return nil, fmt.Errorf("parse NIXU_HISTORY_CAP: %w", err)
		}
		cfg.HistoryCap = &n
	}
	if logLevel := os.Getenv("NIXU_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if cfg.HistoryCap == nil {
		return nil, errors.New("historyCap must be set")
	}
	if *cfg.HistoryCap < 0 {
		return nil, fmt.Errorf("historyCap must not be negative: %d", *cfg.HistoryCap)
	}

	return cfg, nil
}

// Load builds a snapshot with the prompt rendered for the current working
// directory.
func (l *Loader) Load() (shell.Config, error) {
	cfg, err := l.Read()
	if err != nil {
		return shell.Config{}, err
	}

	getwd := l.getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	cwd, err := getwd()
	if err != nil {
		return shell.Config{}, fmt.Errorf("get working directory: %w", err)
	}

	return shell.Config{
		Prompt:     RenderPrompt(cfg.Prompt, cfg.PromptColor, cwd),
		Aliases:    cfg.Aliases,
		Startup:    cfg.Startup,
		HistoryCap: *cfg.HistoryCap,
	}, nil
}

// RenderPrompt substitutes cwd into the prompt template and applies the
// optional foreground color.
func RenderPrompt(template, color, cwd string) string {
	prompt := strings.ReplaceAll(template, cwdPlaceholder, cwd)
	if color == "" {
		return prompt
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(prompt)
}

// DefaultPath returns the location of the config file when no flag is given.
func DefaultPath() string {
	if path := os.Getenv("NIXU_CONFIG"); path != "" {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "nixu", "config.yaml")
}
