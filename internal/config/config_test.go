package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NIXU_HISTORY_CAP", "")
	t.Setenv("NIXU_LOG_LEVEL", "")
	t.Setenv("NIXU_CONFIG", "")
}

func fixedWd(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	loader := NewLoader("", false)
	loader.getwd = fixedWd("/home/user")

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Prompt != "/home/user$ " {
		t.Fatalf("unexpected prompt %q", cfg.Prompt)
	}
	if cfg.Aliases["ls"] != "ls --color=auto" {
		t.Fatalf("expected default ls alias, got %v", cfg.Aliases)
	}
	if len(cfg.Startup) != 0 {
		t.Fatalf("expected no startup commands, got %q", cfg.Startup)
	}
	if cfg.HistoryCap != 100 {
		t.Fatalf("expected history cap 100, got %d", cfg.HistoryCap)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	optional := NewLoader(missing, false)
	optional.getwd = fixedWd("/")
	if _, err := optional.Load(); err != nil {
		t.Fatalf("missing default file should fall back to defaults: %v", err)
	}

	required := NewLoader(missing, true)
	required.getwd = fixedWd("/")
	_, err := required.Load()
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
prompt: "[{cwd}] > "
aliases:
  ll: ls -l
startup:
  - colorscript --random
  - echo ready
historyCap: 5
logLevel: debug
logFormat: json
`)
	loader := NewLoader(path, true)
	loader.getwd = fixedWd("/srv")

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Prompt != "[/srv] > " {
		t.Fatalf("unexpected prompt %q", cfg.Prompt)
	}
	if cfg.Aliases["ll"] != "ls -l" || cfg.Aliases["ls"] != "ls --color=auto" {
		t.Fatalf("expected file aliases merged over defaults, got %v", cfg.Aliases)
	}
	if !slices.Equal(cfg.Startup, []string{"colorscript --random", "echo ready"}) {
		t.Fatalf("unexpected startup %q", cfg.Startup)
	}
	if cfg.HistoryCap != 5 {
		t.Fatalf("expected history cap 5, got %d", cfg.HistoryCap)
	}

	file, err := loader.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.LogLevel != "debug" || file.LogFormat != "json" {
		t.Fatalf("unexpected logging settings %q %q", file.LogLevel, file.LogFormat)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     string
		want    string
	}{
		{name: "negative capacity", content: "historyCap: -1\n", want: "must not be negative"},
		{name: "null capacity", content: "historyCap: null\n", want: "must be set"},
		{name: "malformed yaml", content: "aliases: [\n", want: "parse config"},
		{name: "bad env capacity", content: "", env: "many", want: "NIXU_HISTORY_CAP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.env != "" {
				t.Setenv("NIXU_HISTORY_CAP", tt.env)
			}

			loader := NewLoader(writeConfig(t, tt.content), true)
			loader.getwd = fixedWd("/")

			_, err := loader.Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("NIXU_HISTORY_CAP", "7")
	t.Setenv("NIXU_LOG_LEVEL", "error")

	loader := NewLoader(writeConfig(t, "historyCap: 3\n"), true)
	loader.getwd = fixedWd("/")

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HistoryCap != 7 {
		t.Fatalf("expected env to win, got %d", cfg.HistoryCap)
	}

	file, _ := loader.Read()
	if file.LogLevel != "error" {
		t.Fatalf("expected env log level, got %q", file.LogLevel)
	}
}

func TestLoadRelativePathSurvivesDirectoryChange(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nixu.yaml"), []byte("prompt: \"nixu {cwd}> \"\nhistoryCap: 4\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)

	loader := NewLoader("nixu.yaml", true)
	if _, err := loader.Load(); err != nil {
		t.Fatalf("first load: %v", err)
	}

	if err := os.Chdir(sub); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("load after cd: %v", err)
	}

	wd, _ := os.Getwd()
	if cfg.Prompt != "nixu "+wd+"> " || cfg.HistoryCap != 4 {
		t.Fatalf("expected file settings with new directory %q, got prompt %q cap %d", wd, cfg.Prompt, cfg.HistoryCap)
	}
}

func TestDefaultPathResolvesRelativeEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NIXU_CONFIG", "nixu.yaml")

	got := DefaultPath()
	if !filepath.IsAbs(got) || filepath.Base(got) != "nixu.yaml" {
		t.Fatalf("expected absolute path, got %q", got)
	}
}

func TestLoadWorkingDirectoryFailure(t *testing.T) {
	clearEnv(t)
	loader := NewLoader("", false)
	loader.getwd = func() (string, error) { return "", errors.New("removed") }

	if _, err := loader.Load(); err == nil || !strings.Contains(err.Error(), "get working directory") {
		t.Fatalf("expected working directory error, got %v", err)
	}
}

func TestLoadReflectsDirectoryChange(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := NewLoader("", false).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wd, _ := os.Getwd()
	if cfg.Prompt != wd+"$ " {
		t.Fatalf("expected prompt for %q, got %q", wd, cfg.Prompt)
	}
}

func TestRenderPrompt(t *testing.T) {
	if got := RenderPrompt("{cwd}$ ", "", "/tmp"); got != "/tmp$ " {
		t.Fatalf("unexpected plain prompt %q", got)
	}

	if got := RenderPrompt("{cwd}$ ", "12", "/tmp"); !strings.Contains(got, "/tmp$") {
		t.Fatalf("styled prompt lost its text: %q", got)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("NIXU_CONFIG", "/etc/nixu.yaml")
	if got := DefaultPath(); got != "/etc/nixu.yaml" {
		t.Fatalf("expected env path, got %q", got)
	}

	t.Setenv("NIXU_CONFIG", "")
	if got := DefaultPath(); !strings.HasSuffix(got, filepath.Join(".config", "nixu", "config.yaml")) {
		t.Fatalf("unexpected default path %q", got)
	}
}
