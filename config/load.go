// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "CHEMBAL"

// ErrValidation is wrapped by Load when the merged configuration is invalid.
var ErrValidation = errors.New("config: validation failed")

// FlagKeys maps configuration keys to the command-line flags that override them.
var FlagKeys = map[string]string{
	"log.level":                "log-level",
	"log.format":               "log-format",
	"output.color":             "color",
	"output.unit_coefficients": "unit",
	"output.steps":             "steps",
	"engine.pivot":             "pivot",
	"engine.workers":           "workers",
}

// Load merges defaults, the optional file at path, CHEMBAL_* environment
// variables and the flags of fs that were explicitly set, then validates
// the result. path may be empty and fs may be nil.
//
// Errors:
//   - a read error for path (missing file, unsupported extension, bad syntax).
//   - ErrValidation wrapping the validator's field errors.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("output.color", false)
	v.SetDefault("output.unit_coefficients", false)
	v.SetDefault("output.steps", false)
	v.SetDefault("engine.pivot", DefaultPivot)
	v.SetDefault("engine.workers", DefaultWorkers)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range FlagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrValidation)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}
