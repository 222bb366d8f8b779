package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fmizzell/todo"
)

// FileName is the optional per-workspace config file
const FileName = "todo.yaml"

// Environment variables consulted by Load
const (
	EnvWorkspace = "TODO_WORKSPACE"
	EnvBackend   = "TODO_BACKEND"
	EnvDebug     = "DEBUG"
)

// Config holds the resolved runtime settings
type Config struct {
	WorkspaceDir string
	Backend      todo.Backend
	Debug        bool
}

// fileConfig mirrors todo.yaml
type fileConfig struct {
	Backend string `yaml:"backend"`
	Debug   *bool  `yaml:"debug"`
}

// LoadDotEnv loads .env from the working directory if present.
// It reports whether a file was loaded.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Load resolves configuration. Precedence: flags, environment, todo.yaml in
// the workspace, defaults. Empty flag values count as unset.
func Load(workspaceFlag, backendFlag string) (*Config, error) {
	cfg := &Config{Backend: todo.BackendFile}

	workspace := firstNonEmpty(workspaceFlag, os.Getenv(EnvWorkspace))
	if workspace == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		workspace = wd
	}
	abs, err := filepath.Abs(workspace)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace %s: %w", workspace, err)
	}
	cfg.WorkspaceDir = abs

	fc, err := readFile(filepath.Join(cfg.WorkspaceDir, FileName))
	if err != nil {
		return nil, err
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}

	backend := firstNonEmpty(backendFlag, os.Getenv(EnvBackend), fc.Backend)
	if backend != "" {
		b, err := todo.ParseBackend(strings.ToLower(strings.TrimSpace(backend)))
		if err != nil {
			return nil, err
		}
		cfg.Backend = b
	}

	if v, ok := os.LookupEnv(EnvDebug); ok {
		cfg.Debug = v == "true"
	}

	return cfg, nil
}

// readFile parses todo.yaml; a missing file yields an empty config
func readFile(path string) (fileConfig, error) {
	var fc fileConfig

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return fc, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
