// Package config loads CLI configuration from file, environment, and
// defaults, in that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full CLI configuration tree.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Run     RunConfig     `mapstructure:"run" yaml:"run"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

// LoggerConfig controls console and rotating-file log output.
type LoggerConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" yaml:"format"`
	// LogFile, when set, adds a JSON file sink with rotation.
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// RunConfig carries the evolution parameters shared by every scenario
// command. Flags override file and environment values.
type RunConfig struct {
	PopulationSize int     `mapstructure:"population_size" yaml:"population_size"`
	MaxGenerations uint64  `mapstructure:"max_generations" yaml:"max_generations"`
	MutationRate   float64 `mapstructure:"mutation_rate" yaml:"mutation_rate"`
	Elitism        int     `mapstructure:"elitism" yaml:"elitism"`
	EvalWorkers    int     `mapstructure:"eval_workers" yaml:"eval_workers"`
	// Seed 0 means derive one from the clock.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// MetricsConfig controls the optional Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Listen  string `mapstructure:"listen" yaml:"listen"`
}

// setDefaults registers every key so partial config files work.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size_mb", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age_days", 14)
	v.SetDefault("logger.compress", true)

	v.SetDefault("run.population_size", 50)
	v.SetDefault("run.max_generations", 200)
	v.SetDefault("run.mutation_rate", 0.05)
	v.SetDefault("run.elitism", 1)
	v.SetDefault("run.eval_workers", 1)
	v.SetDefault("run.seed", 0)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.listen", ":9090")
}

// Load reads configuration from path (or ./evolve.yaml when empty) plus
// EVOLVE_* environment variables. A missing config file is not an error;
// defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("evolve")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("EVOLVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named file must exist; the default search may miss.
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if path != "" || !notFound {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Run.PopulationSize < 1 {
		return fmt.Errorf("run.population_size must be at least 1, got %d", c.Run.PopulationSize)
	}
	if c.Run.MutationRate < 0 || c.Run.MutationRate > 1 {
		return fmt.Errorf("run.mutation_rate must be in [0, 1], got %g", c.Run.MutationRate)
	}
	if c.Run.Elitism < 0 || c.Run.Elitism >= c.Run.PopulationSize {
		return fmt.Errorf("run.elitism must be in [0, population_size), got %d", c.Run.Elitism)
	}
	return nil
}
