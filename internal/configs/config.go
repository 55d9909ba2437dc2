package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds user-level settings for fluxvet, loaded from
// ~/.config/fluxvet/config.toml. Every field has a working default so
// the file is optional.
type Config struct {
	// SopsBinary is the sops executable name or path.
	SopsBinary string `toml:"sops_binary"`

	// Pattern is the manifest glob, relative to the scanned directory.
	Pattern string `toml:"pattern"`

	// DefaultKMSARN is used for rotation when neither the --kms flag
	// nor the SOPS_KMS_ARN environment variable is set.
	DefaultKMSARN string `toml:"default_kms_arn"`
}

const (
	defaultSopsBinary = "sops"
	defaultPattern    = "**/*-sops.yml"
)

// Dir returns the fluxvet user configuration directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(base, "fluxvet"), nil
}

// Path returns the path of the user config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the user config, falling back to defaults when the file
// does not exist. A file that exists but cannot be parsed is an error.
func Load() (*Config, error) {
	cfg := &Config{}

	path, err := Path()
	if err != nil {
		cfg.applyDefaults()
		return cfg, nil
	}

	if err := LoadTOML(path, cfg); err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to the user config file.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTOML(path, cfg)
}

func (c *Config) applyDefaults() {
	if c.SopsBinary == "" {
		c.SopsBinary = defaultSopsBinary
	}
	if c.Pattern == "" {
		c.Pattern = defaultPattern
	}
}
