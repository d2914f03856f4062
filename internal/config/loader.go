package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadCatch.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

// localConfigDir is relative to the working directory.
const localConfigDir = "configs"

// LoadCatch loads the catch game configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/catch.yaml -> ./configs/catch.yaml -> embedded default.
// Files only override the keys they set; everything else keeps the default.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when broken.
func LoadCatch(customPath string) (CatchConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CatchConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCatch(data)
		if err != nil {
			return CatchConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath("catch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCatch(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join(localConfigDir, "catch.yaml")); err == nil {
		if cfg, err := parseCatch(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	if cfg, err := parseCatch(defaultCatchYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultCatchConfig(), SourceBuiltin, nil
}

// parseCatch decodes YAML over the built-in defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func parseCatch(data []byte) (CatchConfig, error) {
	cfg := DefaultCatchConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return CatchConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CatchConfig{}, err
	}
	return cfg, nil
}

// MarshalCatch renders a configuration as YAML.
func MarshalCatch(cfg CatchConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := userHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
