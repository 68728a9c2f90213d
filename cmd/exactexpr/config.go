package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/zephyrtronium/exactexpr"
)

// Config holds settings read from a TOML file. Flags given on the command
// line override it.
type Config struct {
	Format    string `toml:"format"`
	MaxLength int    `toml:"max_length"`
	MaxDepth  int    `toml:"max_depth"`
}

// LoadConfig loads configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", keys[0].String(), path)
	}
	cfg.applyDefaults()
	return &cfg, cfg.validate()
}

// DefaultConfig is the configuration used when no file is given.
func DefaultConfig() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = "all"
	}
	if c.MaxLength == 0 {
		c.MaxLength = exactexpr.DefaultMaxLength
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = exactexpr.DefaultMaxDepth
	}
}

func (c *Config) validate() error {
	if _, ok := formats[c.Format]; !ok {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("max length (%d) must not be negative", c.MaxLength)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth (%d) must not be negative", c.MaxDepth)
	}
	return nil
}

// options converts the configuration to evaluator options.
func (c *Config) options() []exactexpr.Option {
	return []exactexpr.Option{
		exactexpr.WithMaxLength(c.MaxLength),
		exactexpr.WithMaxDepth(c.MaxDepth),
	}
}
