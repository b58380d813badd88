// SPDX-License-Identifier: MIT

package config

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Output OutputConfig `mapstructure:"output" validate:"required"`
	Engine EngineConfig `mapstructure:"engine" validate:"required"`
}

// LogConfig controls the diagnostic logger on stderr.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// OutputConfig controls how results are rendered on stdout.
type OutputConfig struct {
	Color            bool `mapstructure:"color"`
	UnitCoefficients bool `mapstructure:"unit_coefficients"`
	Steps            bool `mapstructure:"steps"`
}

// EngineConfig tunes the balancing engine.
type EngineConfig struct {
	Pivot   string `mapstructure:"pivot" validate:"required,oneof=least-abs first-nonzero"`
	Workers int    `mapstructure:"workers" validate:"required,gt=0,lte=256"`
}

// Defaults used when neither a file, the environment nor a flag sets a key.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultPivot     = "least-abs"
	DefaultWorkers   = 4
)
