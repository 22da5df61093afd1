package config

import "github.com/itsmealinn/transaction-simulator/internal/constants"

type Config struct {
	Output     OutputConfig `mapstructure:"output"`
	Audit      AuditConfig  `mapstructure:"audit"`
	ConfigPath string       `mapstructure:"-"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type AuditConfig struct {
	Path string `mapstructure:"path"`
}

func NewDefault() *Config {
	return &Config{
		Output: OutputConfig{Format: constants.FormatCSV},
		Audit:  AuditConfig{Path: ""},
	}
}
