// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ChainSafe/aleph-finality/internal/log"
	"github.com/ChainSafe/aleph-finality/lib/justification"
	"github.com/ChainSafe/aleph-finality/lib/utils"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

const (
	// DefaultName is the default node name.
	DefaultName = "aleph-finality"
	// DefaultSessionPeriod is the default number of blocks per session.
	DefaultSessionPeriod = 900
	// DefaultMetricsAddress is the default listening address of the metrics server.
	DefaultMetricsAddress = "localhost:9876"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is a collection of configurations throughout the system
type Config struct {
	Global        GlobalConfig        `toml:"global"`
	Log           LogConfig           `toml:"log"`
	Justification JustificationConfig `toml:"justification"`
	Network       NetworkConfig       `toml:"network"`
	Metrics       MetricsConfig       `toml:"metrics"`
}

// GlobalConfig is used for every node command
type GlobalConfig struct {
	Name     string `toml:"name" validate:"required"`
	BasePath string `toml:"basepath" validate:"required"`
	LogLvl   string `toml:"log" validate:"loglevel"`
	InMemory bool   `toml:"in-memory"`
	// LogCaller adds the caller file and line to log lines.
	LogCaller bool `toml:"log-caller"`
}

// LogConfig represents the log levels for individual packages.
// An empty level uses the global level.
type LogConfig struct {
	JustificationLvl string `toml:"justification" validate:"omitempty,loglevel"`
	StateLvl         string `toml:"state" validate:"omitempty,loglevel"`
	SyncLvl          string `toml:"sync" validate:"omitempty,loglevel"`
	MetricsLvl       string `toml:"metrics" validate:"omitempty,loglevel"`
}

// JustificationConfig is the configuration of the justification handler
type JustificationConfig struct {
	SessionPeriod      uint32   `toml:"session-period" validate:"gt=0"`
	RequestCooldown    Duration `toml:"request-cooldown" validate:"gt=0"`
	StaleRequestsAfter Duration `toml:"stale-requests-after" validate:"gte=0"`
	TickInterval       Duration `toml:"tick-interval" validate:"gt=0"`
	RequestPolicy      string   `toml:"request-policy" validate:"oneof=allow deny"`
}

// NetworkConfig is the configuration of justification requests sent to peers
type NetworkConfig struct {
	RequestTimeout Duration `toml:"request-timeout" validate:"gt=0"`
}

// MetricsConfig is the configuration of the prometheus metrics server
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address" validate:"hostname_port"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Global: GlobalConfig{
			Name:     DefaultName,
			BasePath: utils.BasePath(DefaultName),
			LogLvl:   log.Info.String(),
		},
		Justification: JustificationConfig{
			SessionPeriod:      DefaultSessionPeriod,
			RequestCooldown:    Duration(5 * time.Second),
			StaleRequestsAfter: Duration(time.Minute),
			TickInterval:       Duration(time.Second),
			RequestPolicy:      justification.AllowRequests.String(),
		},
		Network: NetworkConfig{
			RequestTimeout: Duration(10 * time.Second),
		},
		Metrics: MetricsConfig{
			Address: DefaultMetricsAddress,
		},
	}
}

// Load reads the TOML configuration file on top of the default
// configuration and validates the result.
func Load(path string) (*Config, error) {
	fp, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("finding configuration file: %w", err)
	}

	/* #nosec */
	data, err := os.ReadFile(filepath.Clean(fp))
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}

	cfg := Default()
	err = toml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding configuration file %s: %w", fp, err)
	}

	cfg.Global.BasePath = utils.ExpandDir(cfg.Global.BasePath)

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal returns the TOML encoding of the configuration.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(*c)
}

// Export writes the configuration to a TOML file.
func (c *Config) Export(path string) error {
	raw, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	validate := validator.New()
	err := validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("registering log level validation: %w", err)
	}

	err = validate.Struct(c)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}

// HandlerConfig returns the justification handler configuration.
func (c *Config) HandlerConfig() (justification.Config, error) {
	policy, err := justification.ParseRequestPolicy(c.Justification.RequestPolicy)
	if err != nil {
		return justification.Config{}, err
	}

	return justification.Config{
		SessionPeriod:      justification.SessionPeriod(c.Justification.SessionPeriod),
		RequestCooldown:    c.Justification.RequestCooldown.Std(),
		StaleRequestsAfter: c.Justification.StaleRequestsAfter.Std(),
		TickInterval:       c.Justification.TickInterval.Std(),
		RequestPolicy:      policy,
	}, nil
}

// PackageLevel returns the log level of a package, falling back on the
// global log level if the package level is not set.
func (c *Config) PackageLevel(packageLevel string) (log.Level, error) {
	if packageLevel == "" {
		packageLevel = c.Global.LogLvl
	}
	return log.ParseLevel(packageLevel)
}
