package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ludo-technologies/treedist/domain"
)

// Config holds all tool configuration.
type Config struct {
	Costs  domain.CostWeights `toml:"costs" mapstructure:"costs"`
	Output OutputConfig       `toml:"output" mapstructure:"output"`
	Batch  BatchConfig        `toml:"batch" mapstructure:"batch"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format      string `toml:"format" mapstructure:"format"`
	ShowMapping bool   `toml:"show_mapping" mapstructure:"show_mapping"`
}

// BatchConfig controls file collection for batch comparisons.
type BatchConfig struct {
	IncludePatterns []string `toml:"include_patterns" mapstructure:"include_patterns"`
	ExcludePatterns []string `toml:"exclude_patterns" mapstructure:"exclude_patterns"`
	Recursive       bool     `toml:"recursive" mapstructure:"recursive"`
}

// DefaultConfig returns the built-in defaults: unit costs, text
// output, recursive *.tree collection.
func DefaultConfig() *Config {
	return &Config{
		Costs: domain.DefaultCostWeights(),
		Output: OutputConfig{
			Format:      string(domain.OutputFormatText),
			ShowMapping: false,
		},
		Batch: BatchConfig{
			IncludePatterns: []string{"**/*.tree"},
			Recursive:       true,
		},
	}
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if err := c.Costs.Validate(); err != nil {
		return err
	}
	switch domain.OutputFormat(c.Output.Format) {
	case domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML, domain.OutputFormatCSV:
		return nil
	default:
		return domain.NewUnsupportedFormatError(c.Output.Format)
	}
}

// LoadConfig loads configuration from the given file, or from the
// first discovered default location when path is empty. With no config
// file present, the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = FindConfigFile(".")
		if path == "" {
			return cfg, nil
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("config file not found: %s", path), err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("failed to read config file %s", path), err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, domain.NewConfigError("failed to unmarshal config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
