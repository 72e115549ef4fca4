package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"

	"github.com/iho/trialbalance/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Ledger
	LockedDeposits string `env:"LOCKED_DEPOSITS" envDefault:"reject"`

	// Output
	OutputPrecision int32  `env:"OUTPUT_PRECISION" envDefault:"-1"`
	MetricsFile     string `env:"METRICS_FILE"     envDefault:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LockPolicy parses LockedDeposits.
func (c *Config) LockPolicy() (domain.LockPolicy, error) {
	policy, err := domain.ParseLockPolicy(c.LockedDeposits)
	if err != nil {
		return policy, fmt.Errorf("LOCKED_DEPOSITS: %w", err)
	}
	return policy, nil
}
