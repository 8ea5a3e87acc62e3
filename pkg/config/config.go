// Package config loads the settings of the pattern tool server and demo CLI.
//
// Values come from Default, then an optional YAML file, then environment
// overrides:
//   PATTERNS_SERVER_NAME  server name reported over MCP
//   PATTERNS_LOG_LEVEL    debug, info, warn or error
//   PATTERNS_DEBUG        any value except "", "0" or "false" forces debug
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sunfmin/mcp-go-patterns/pkg/logger"
	"gopkg.in/yaml.v3"
)

// DefaultPath is tried when no explicit path is given.
const DefaultPath = "configs/config.yaml"

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Demo   DemoConfig   `yaml:"demo"`
}

type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DemoConfig is the calculation the demo CLI runs.
type DemoConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Selector string  `yaml:"selector"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{Name: "Go Patterns MCP", Version: "dev"},
		Log:    LogConfig{Level: "info"},
		Demo:   DemoConfig{X: 12, Y: 2, Selector: "-"},
	}
}

// Load returns Default merged with the first config file found. A missing
// file is skipped; a file that cannot be parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	candidates := make([]string, 0, 2)
	if path != "" {
		candidates = append(candidates, path)
	}
	candidates = append(candidates, DefaultPath)

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", p, err)
		}

		var parsed Config
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", p, err)
		}
		Merge(&cfg, parsed)
		logger.Debug("Loaded config file", "path", p)
		break
	}

	ApplyEnvOverrides(&cfg)
	return cfg, nil
}

// Merge copies every non-empty field of src into dst.
func Merge(dst *Config, src Config) {
	if v := strings.TrimSpace(src.Server.Name); v != "" {
		dst.Server.Name = v
	}
	if v := strings.TrimSpace(src.Server.Version); v != "" {
		dst.Server.Version = v
	}
	if v := strings.TrimSpace(src.Log.Level); v != "" {
		dst.Log.Level = v
	}
	if src.Demo.Selector != "" {
		dst.Demo = src.Demo
	}
}

func ApplyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PATTERNS_SERVER_NAME")); v != "" {
		cfg.Server.Name = v
	}
	if v := strings.TrimSpace(os.Getenv("PATTERNS_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if logger.DebugEnabled(os.Getenv("PATTERNS_DEBUG")) {
		cfg.Log.Level = "debug"
	}
}
