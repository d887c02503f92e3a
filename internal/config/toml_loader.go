package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ludo-technologies/treedist/domain"
)

// Config file names searched in order.
var configFileNames = []string{
	".treedist.toml",
	"treedist.toml",
}

// FindConfigFile searches for a configuration file in the start
// directory and its ancestors, nearest first. Returns "" when none
// exists.
func FindConfigFile(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadTomlConfig loads a .treedist.toml file on top of the defaults.
func LoadTomlConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to read config file: "+path, err)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewConfigError("failed to parse TOML config: "+path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefaultConfig writes a starter configuration file, refusing to
// overwrite an existing one.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return domain.NewConfigError("config file already exists: "+path, nil)
	}
	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return domain.NewConfigError("failed to marshal default config", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.NewConfigError("failed to write config file: "+path, err)
	}
	return nil
}
