// Package config handles configuration loading and defaults for pipup.
// It supports a YAML-based `.pipup.yml` file that sets defaults for paths,
// the python command, and timeouts; command-line flags override these values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/pipup/pkg/verbose"
)

// DefaultTimeoutSeconds is the per-command timeout applied when the config
// file does not specify one.
const DefaultTimeoutSeconds = 300

// Config holds the effective configuration for a pipup run.
//
// Fields:
//   - Requirements: Path to the requirements manifest
//   - SkipFile: Path to the skip list file
//   - BackupDir: Directory for manifest backups (empty = alongside manifest)
//   - Python: Python interpreter command used for `-m pip` invocations
//   - TimeoutSeconds: Per-command timeout in seconds (0 disables timeouts)
//   - RewritePins: Whether to rewrite == pins to >= after a successful run
//   - WorkingDir: Directory relative paths are resolved against
type Config struct {
	Requirements   string `yaml:"requirements"`
	SkipFile       string `yaml:"skip_file"`
	BackupDir      string `yaml:"backup_dir"`
	Python         string `yaml:"python"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	RewritePins    bool   `yaml:"rewrite_pins"`
	WorkingDir     string `yaml:"-"`
}

// Default returns the built-in default configuration.
//
// Returns:
//   - *Config: Defaults matching the documented CLI behavior
func Default() *Config {
	return &Config{
		Requirements:   "requirements.txt",
		SkipFile:       "skip_packages.txt",
		Python:         defaultPython(),
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// defaultPython picks the interpreter command for the current platform.
func defaultPython() string {
	if strings.EqualFold(os.Getenv("OS"), "Windows_NT") {
		return "python"
	}
	return "python3"
}

// Load loads configuration from the specified path or defaults.
//
// If configPath is provided, that file must exist and parse. Otherwise
// `.pipup.yml` in the working directory is used when present, and the
// built-in defaults when not.
//
// Parameters:
//   - configPath: Explicit config file path, or empty to auto-discover
//   - workDir: Working directory for discovery and relative path resolution
//
// Returns:
//   - *Config: The effective configuration with defaults filled in
//   - error: When an explicit config file cannot be read or parsed
func Load(configPath, workDir string) (*Config, error) {
	cfg := Default()
	cfg.WorkingDir = workDir

	path := configPath
	if path == "" {
		candidate := filepath.Join(workDir, ".pipup.yml")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	if path == "" {
		verbose.ConfigLoaded("")
		return cfg, nil
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	content, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", expanded, err)
	}

	applyDefaults(cfg)
	cfg.WorkingDir = workDir
	verbose.ConfigLoaded(expanded)
	return cfg, nil
}

// applyDefaults fills empty fields after YAML decoding.
//
// A config file that sets only some keys still gets working values for the
// rest. TimeoutSeconds 0 is preserved: the file can disable timeouts.
func applyDefaults(cfg *Config) {
	def := Default()
	if strings.TrimSpace(cfg.Requirements) == "" {
		cfg.Requirements = def.Requirements
	}
	if strings.TrimSpace(cfg.SkipFile) == "" {
		cfg.SkipFile = def.SkipFile
	}
	if strings.TrimSpace(cfg.Python) == "" {
		cfg.Python = def.Python
	}
	if cfg.TimeoutSeconds < 0 {
		cfg.TimeoutSeconds = 0
	}
}

// ExpandPath expands a leading ~ and returns a cleaned path.
//
// Parameters:
//   - path: Path that may start with ~ or ~user
//
// Returns:
//   - string: The expanded path
//   - error: When the home directory cannot be resolved
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(expanded), nil
}

// ResolvePath resolves a possibly relative path against the working directory.
//
// Absolute paths and paths starting with ~ are expanded and returned as-is;
// relative paths are joined onto the config working directory.
//
// Parameters:
//   - cfg: Configuration providing the working directory
//   - path: Path to resolve
//
// Returns:
//   - string: The resolved path
//   - error: When ~ expansion fails
func ResolvePath(cfg *Config, path string) (string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) || cfg == nil || cfg.WorkingDir == "" {
		return expanded, nil
	}
	return filepath.Join(cfg.WorkingDir, expanded), nil
}
