// Package config loads and validates the cronjobctl configuration.
//
// Configuration lives in a TOML file. Values of the form ${VAR} are
// expanded from the environment after loading, and a .env file next to
// the config file is loaded first when present, so secrets stay out of
// the TOML file itself.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads the TOML file at path, loads a sibling .env file if one
// exists, applies defaults and expands ${VAR} references.
func Load(path string) (*Config, error) {
	if err := loadDotenv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := expandEnvVars(&cfg); err != nil {
		return nil, fmt.Errorf("failed to expand environment variables: %w", err)
	}

	return &cfg, nil
}

// DefaultPath returns the conventional config location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cronjobctl.toml"
	}
	return filepath.Join(home, ".cronjobctl", "config.toml")
}

// ExpandPath resolves a leading ~/ against the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

func loadDotenv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

var envVarRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} references in string fields. A
// reference to an unset variable is an error rather than a silent
// empty string.
func expandEnvVars(cfg *Config) error {
	fields := []*string{
		&cfg.API.BaseURL,
		&cfg.API.Token,
		&cfg.Upload.DefaultGithubOwner,
		&cfg.Logging.Output,
		&cfg.Metrics.ListenAddr,
		&cfg.State.Path,
	}

	for _, field := range fields {
		expanded, err := expandString(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}

func expandString(s string) (string, error) {
	var missing []string
	out := envVarRef.ReplaceAllStringFunc(s, func(ref string) string {
		name := envVarRef.FindStringSubmatch(ref)[1]
		value, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
			return ref
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("environment variable not set: %s", strings.Join(missing, ", "))
	}
	return out, nil
}
