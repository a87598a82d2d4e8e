package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int   `mapstructure:"port"`
	DefaultQuantum int64 `mapstructure:"default_quantum"` // used when a request omits quantum
	MaxProcesses   int   `mapstructure:"max_processes"`   // largest process set accepted per request
	MaxTotalBurst  int64 `mapstructure:"max_total_burst"` // bounds run time and segment count per request
}

// LoadServerConfig reads server settings from an optional YAML file, overridden by
// SCHEDSIM_* environment variables (e.g. SCHEDSIM_PORT).
func LoadServerConfig(path string) (*ServerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("default_quantum", 3)
	v.SetDefault("max_processes", 10000)
	v.SetDefault("max_total_burst", 1000000)
	v.SetEnvPrefix("SCHEDSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading server config: %w", err)
		}
	}

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing server config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that all fields in the config are usable.
func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in [1, 65535], got %d", c.Port)
	}
	if c.DefaultQuantum <= 0 {
		return fmt.Errorf("default_quantum must be positive, got %d", c.DefaultQuantum)
	}
	if c.MaxProcesses <= 0 {
		return fmt.Errorf("max_processes must be positive, got %d", c.MaxProcesses)
	}
	if c.MaxTotalBurst <= 0 {
		return fmt.Errorf("max_total_burst must be positive, got %d", c.MaxTotalBurst)
	}
	return nil
}
