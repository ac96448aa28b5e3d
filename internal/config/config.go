package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for piggy, stored in ~/.piggy/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// Currency is the symbol prefixed to displayed amounts. Purely
	// cosmetic; stored amounts are symbolic integers.
	Currency string `json:"currency"`
	// SpinMillis is the duration of the draw "spinning" delay in
	// milliseconds.
	SpinMillis int `json:"spin_millis"`
}

const (
	// DefaultCurrency is the display symbol used when none is configured.
	DefaultCurrency = "¥"
	// DefaultSpinMillis is the draw spin duration used when none is
	// configured.
	DefaultSpinMillis = 1500
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Currency:   DefaultCurrency,
		SpinMillis: DefaultSpinMillis,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// piggy configuration – ~/.piggy/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise piggy behaviour.
{
  // Symbol shown before amounts, e.g. "¥", "€", "$". Display only.
  "currency": "¥",

  // How long the draw "spins" before revealing the amount, in milliseconds.
  "spin_millis": 1500
}
`

// configFilePath returns the path to ~/.piggy/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".piggy", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.piggy/config.json, creating it with annotated defaults on
// first run. Lines starting with // are treated as comments and stripped
// before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.SpinMillis <= 0 {
		cfg.SpinMillis = DefaultSpinMillis
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
