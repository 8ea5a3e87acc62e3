package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Setenv("PATTERNS_SERVER_NAME", "")
	t.Setenv("PATTERNS_LOG_LEVEL", "")
	t.Setenv("PATTERNS_DEBUG", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load without a file = %+v; want %+v", cfg, Default())
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
server:
  name: Test Patterns
log:
  level: warn
demo:
  x: 3
  y: 4
  selector: "+"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Name != "Test Patterns" {
		t.Errorf("Server.Name = %q", cfg.Server.Name)
	}
	if cfg.Server.Version != "dev" {
		t.Errorf("Server.Version = %q; want the default", cfg.Server.Version)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Demo != (DemoConfig{X: 3, Y: 4, Selector: "+"}) {
		t.Errorf("Demo = %+v", cfg.Demo)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "server: [unterminated")
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for a malformed config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PATTERNS_SERVER_NAME", "From Env")
	t.Setenv("PATTERNS_LOG_LEVEL", "error")

	cfg := Default()
	ApplyEnvOverrides(&cfg)
	if cfg.Server.Name != "From Env" || cfg.Log.Level != "error" {
		t.Errorf("Overrides not applied: %+v", cfg)
	}

	t.Setenv("PATTERNS_DEBUG", "1")
	ApplyEnvOverrides(&cfg)
	if cfg.Log.Level != "debug" {
		t.Errorf("PATTERNS_DEBUG did not force debug, level = %q", cfg.Log.Level)
	}
}
