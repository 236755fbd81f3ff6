// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package config holds the settings of the robdd command, read from a YAML
// file and from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dalzilio/robdd"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = ".robdd.yaml"

// Config holds all the robdd configuration.
type Config struct {
	// Base name of the generated files
	Output string `yaml:"output"`
	// Output format: png, svg, pdf, dot, aut or none
	Format string `yaml:"format"`

	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
}

// EngineConfig gives the options of the engines used by the command.
type EngineConfig struct {
	NodeSize  int  `yaml:"node_size"`
	MaxNodes  int  `yaml:"max_nodes"`  // 0 for no limit
	MaxVars   int  `yaml:"max_vars"`   // 0 for no limit
	Memoize   bool `yaml:"memoize"`
	CacheSize int  `yaml:"cache_size"` // 0 for no limit
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// RenderConfig configures the conversion of DOT files.
type RenderConfig struct {
	DotBinary      string `yaml:"dot_binary"`
	OnlineFallback bool   `yaml:"online_fallback"`
	OnlineURL      string `yaml:"online_url"`
}

// Formats lists the accepted values for Format.
var Formats = []string{"png", "svg", "pdf", "dot", "aut", "none"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: "robdd_output",
		Format: "png",
		Engine: EngineConfig{
			NodeSize: 1024,
			Memoize:  true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Render: RenderConfig{
			DotBinary:      "dot",
			OnlineFallback: true,
			OnlineURL:      "https://dreampuf.github.io/GraphvizOnline/#",
		},
	}
}

// Load loads configuration from a YAML file. We return the default
// configuration if the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("ROBDD_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if dot := os.Getenv("ROBDD_DOT"); dot != "" {
		c.Render.DotBinary = dot
	}
	if output := os.Getenv("ROBDD_OUTPUT"); output != "" {
		c.Output = output
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("empty output name")
	}
	validFormat := false
	for _, f := range Formats {
		if c.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid format: %s (valid: %v)", c.Format, Formats)
	}
	if c.Engine.MaxNodes < 0 || c.Engine.MaxVars < 0 || c.Engine.CacheSize < 0 {
		return fmt.Errorf("engine limits must be non-negative")
	}
	return nil
}

// EngineOptions returns the options used to create engines.
func (c *Config) EngineOptions(logger *zap.Logger) []robdd.Option {
	return []robdd.Option{
		robdd.Nodesize(c.Engine.NodeSize),
		robdd.Maxnodesize(c.Engine.MaxNodes),
		robdd.Maxvarnum(c.Engine.MaxVars),
		robdd.Memoize(c.Engine.Memoize),
		robdd.Cachesize(c.Engine.CacheSize),
		robdd.Logger(logger),
	}
}
