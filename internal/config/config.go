// Package config loads and validates the .shd.yaml configuration file.
// Everything has a default, so shd works with no config file at all.
package config

import "time"

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".shd.yaml"
	// GlobalConfigDir is the directory for global config, relative to home.
	GlobalConfigDir = ".config/shd"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// DefaultEndpoint is the metrics stream address used when none is configured.
// It matches the default bind of the system health service's dev server.
const DefaultEndpoint = "ws://127.0.0.1:8000/metrics/stream"

const (
	// DefaultReconnectDelay is the fixed pause between reconnect attempts.
	DefaultReconnectDelay = time.Second

	// DefaultHistorySize is how many readings the dashboard retains,
	// 15 minutes at the producer's 1Hz sample rate.
	DefaultHistorySize = 900
)

// Config represents the complete .shd.yaml configuration file.
type Config struct {
	// Endpoint is the websocket address of the metrics stream.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// ReconnectDelay is the fixed pause before redialing after a disconnect.
	ReconnectDelay time.Duration `yaml:"reconnect_delay" mapstructure:"reconnect_delay"`

	// History is how many readings the dashboard retains for the sparkline.
	History int `yaml:"history" mapstructure:"history"`
}

// Defaults returns a config populated with default values.
func Defaults() *Config {
	return &Config{
		Endpoint:       DefaultEndpoint,
		ReconnectDelay: DefaultReconnectDelay,
		History:        DefaultHistorySize,
	}
}

// applyDefaults fills any unset field with its default value.
func (c *Config) applyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.ReconnectDelay == 0 {
		c.ReconnectDelay = DefaultReconnectDelay
	}
	if c.History == 0 {
		c.History = DefaultHistorySize
	}
}
