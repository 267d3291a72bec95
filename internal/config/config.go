// Package config assembles the Zotero connection settings. Environment
// variables take precedence, with an optional .env file in the working
// directory and an optional ~/.zotmcp/config.yaml for values the environment
// leaves unset. Credentials are opaque here; validation of which fields each
// mode requires belongs to the client constructor.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvLibraryID   = "ZOTERO_LIBRARY_ID"
	EnvLibraryType = "ZOTERO_LIBRARY_TYPE"
	EnvAPIKey      = "ZOTERO_API_KEY"
	EnvLocal       = "ZOTERO_LOCAL"
)

// FileName is the optional YAML config file under ~/.zotmcp/.
const FileName = "config.yaml"

// Config holds the library connection settings.
type Config struct {
	LibraryID   string `yaml:"library_id,omitempty"`
	LibraryType string `yaml:"library_type,omitempty"`
	APIKey      string `yaml:"api_key,omitempty"`
	Local       bool   `yaml:"local,omitempty"`
}

// Load assembles configuration from the config file, then overlays .env and
// process environment variables. Returns an error only for an unreadable or
// malformed config file; missing credentials are diagnosed later, at client
// construction.
func Load() (Config, error) {
	// godotenv never overrides variables already set in the environment.
	_ = godotenv.Load()

	cfg, err := loadFile()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv(EnvLibraryID); v != "" {
		cfg.LibraryID = v
	}
	if v := os.Getenv(EnvLibraryType); v != "" {
		cfg.LibraryType = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvLocal); v != "" {
		cfg.Local = isTruthy(v)
	}

	if cfg.LibraryType == "" {
		cfg.LibraryType = "user"
	}
	return cfg, nil
}

// loadFile reads ~/.zotmcp/config.yaml if it exists. A missing file or an
// undeterminable home directory is not an error - file config is optional.
func loadFile() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, nil
	}

	path := filepath.Join(home, ".zotmcp", FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// isTruthy mirrors the values accepted for ZOTERO_LOCAL: "true", "yes", "1".
func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "true", "yes", "1":
		return true
	}
	return false
}
