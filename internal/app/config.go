package app

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"keywarden/internal/ss58"
)

// Config holds runtime defaults. Values come from <home>/config.yaml when
// it exists; flags override per invocation. There is no process-global
// state: the home path is threaded through explicitly.
type Config struct {
	KeysDir    string `yaml:"keys_dir"`
	Network    string `yaml:"network"`
	Scheme     string `yaml:"scheme"`
	SS58Prefix uint8  `yaml:"ss58_prefix"`
}

// DefaultHome returns ~/.keywarden.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".keywarden"), nil
}

// LoadConfig reads <home>/config.yaml, falling back to defaults for a
// missing file or absent fields.
func LoadConfig(home string) (Config, error) {
	cfg := Config{
		KeysDir:    filepath.Join(home, "keys"),
		Network:    "substrate",
		Scheme:     "sr25519",
		SS58Prefix: ss58.DefaultPrefix,
	}
	raw, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	if cfg.KeysDir == "" {
		cfg.KeysDir = filepath.Join(home, "keys")
	}
	return cfg, nil
}
