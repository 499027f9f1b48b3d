// Package config loads the event gate configuration from YAML, JSON or TOML files.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	pkgconfig "github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"gopkg.in/yaml.v3"
)

type format string

const (
	formatYAML format = "YAML"
	formatJSON format = "JSON"
	formatTOML format = "TOML"
)

// LoadFromFile loads configuration from a file, auto-detecting the format by extension.
// Supported formats: .yaml, .yml, .json, .toml
func LoadFromFile(path string) (*pkgconfig.Config, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return load(path, formatYAML)
	case ".json":
		return load(path, formatJSON)
	case ".toml":
		return load(path, formatTOML)
	default:
		return nil, fmt.Errorf("unsupported config file format: %s (supported: .yaml, .yml, .json, .toml)", ext)
	}
}

// LoadFromYAML loads configuration from a YAML file.
func LoadFromYAML(path string) (*pkgconfig.Config, error) {
	return load(path, formatYAML)
}

// LoadFromJSON loads configuration from a JSON file.
func LoadFromJSON(path string) (*pkgconfig.Config, error) {
	return load(path, formatJSON)
}

// LoadFromTOML loads configuration from a TOML file.
func LoadFromTOML(path string) (*pkgconfig.Config, error) {
	return load(path, formatTOML)
}

// load expands ${VAR} and ${VAR:-default} references before decoding, so
// credentials such as the AMQP URL can come from the environment.
func load(path string, f format) (*pkgconfig.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	data = []byte(os.Expand(string(data), expandEnv))

	var cfg pkgconfig.Config
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case formatJSON:
		err = json.Unmarshal(data, &cfg)
	case formatTOML:
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", f, err)
	}

	return processConfig(&cfg)
}

func expandEnv(key string) string {
	name, fallback, hasDefault := strings.Cut(key, ":-")
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}
	if hasDefault {
		return fallback
	}

	return ""
}

// processConfig applies defaults and validates the configuration.
func processConfig(cfg *pkgconfig.Config) (*pkgconfig.Config, error) {
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
