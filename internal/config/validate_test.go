package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "wss scheme",
			mutate: func(c *Config) { c.Endpoint = "wss://metrics.example.com/stream" },
		},
		{
			name:    "empty endpoint",
			mutate:  func(c *Config) { c.Endpoint = "" },
			wantErr: "No endpoint configured",
		},
		{
			name:    "unparseable endpoint",
			mutate:  func(c *Config) { c.Endpoint = "://bad" },
			wantErr: "valid endpoint",
		},
		{
			name:    "http scheme",
			mutate:  func(c *Config) { c.Endpoint = "http://example.com/stream" },
			wantErr: "not a websocket scheme",
		},
		{
			name:    "no host",
			mutate:  func(c *Config) { c.Endpoint = "ws:///stream" },
			wantErr: "has no host",
		},
		{
			name:    "negative reconnect delay",
			mutate:  func(c *Config) { c.ReconnectDelay = -time.Second },
			wantErr: "reconnect_delay cannot be negative",
		},
		{
			name:    "negative history",
			mutate:  func(c *Config) { c.History = -1 },
			wantErr: "history cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, time.Second, cfg.ReconnectDelay)
	assert.Equal(t, 900, cfg.History)
}
