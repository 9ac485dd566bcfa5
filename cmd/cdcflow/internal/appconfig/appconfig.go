// Package appconfig loads cdcflow CLI settings from built-in defaults, an
// optional YAML file, and environment variables layered on top, via
// github.com/spf13/viper. No command-line flags are bound here.
package appconfig

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/fastcut/cdcflow/config"
)

// Config is the resolved set of options the cdcflow CLI runs with.
type Config struct {
	MinSize       int    `mapstructure:"min_size"`
	AvgSize       int    `mapstructure:"avg_size"`
	MaxSize       int    `mapstructure:"max_size"`
	HashAlgorithm string `mapstructure:"hash_algorithm"`
	StoreRoot     string `mapstructure:"store_root"`
	IndexBackend  string `mapstructure:"index_backend"` // "memory", "json", or "pebble"
	LogLevel      string `mapstructure:"log_level"`
	MetricsAddr   string `mapstructure:"metrics_addr"`
}

// defaults mirrors config.Default()'s bounds so a CLI run with no
// preset file behaves identically to the library default.
func defaults() Config {
	return Config{
		MinSize:       config.DefaultMinSize,
		AvgSize:       config.DefaultAvgSize,
		MaxSize:       config.DefaultMaxSize,
		HashAlgorithm: "blake3",
		StoreRoot:     ".cdcflow/store",
		IndexBackend:  "memory",
		LogLevel:      "info",
		MetricsAddr:   ":9090",
	}
}

// Load resolves a Config from (in increasing precedence): built-in
// defaults, an optional YAML preset file at path (skipped if path is
// empty; a path that cannot be read is an error), and CDCFLOW_-prefixed
// environment variables.
func Load(path string) (Config, error) {
	v := viper.New()
	def := defaults()

	v.SetDefault("min_size", def.MinSize)
	v.SetDefault("avg_size", def.AvgSize)
	v.SetDefault("max_size", def.MaxSize)
	v.SetDefault("hash_algorithm", def.HashAlgorithm)
	v.SetDefault("store_root", def.StoreRoot)
	v.SetDefault("index_backend", def.IndexBackend)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("metrics_addr", def.MetricsAddr)

	v.SetEnvPrefix("cdcflow")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("appconfig: read %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("appconfig: unmarshal: %w", err)
	}
	return cfg, nil
}

// ChunkerConfig builds the library config.Config this CLI config
// describes.
func (c Config) ChunkerConfig() (config.Config, error) {
	cfg, err := config.New(c.MinSize, c.AvgSize, c.MaxSize)
	if err != nil {
		return config.Config{}, err
	}
	return cfg.WithHashEnabled(true), nil
}
