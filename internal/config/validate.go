package config

import (
	"fmt"
	"net/url"

	"github.com/dley18/System-Health-Dashboard/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Endpoint == "" {
		return errors.New(errors.ErrConfig,
			"No endpoint configured",
			"Set 'endpoint' to the websocket address of the metrics stream, e.g. "+DefaultEndpoint)
	}

	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid endpoint", cfg.Endpoint),
			"Use a websocket URL like "+DefaultEndpoint)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Endpoint scheme '%s' is not a websocket scheme", u.Scheme),
			"Use ws:// for plaintext or wss:// for TLS")
	}
	if u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Endpoint '%s' has no host", cfg.Endpoint),
			"Use a websocket URL like "+DefaultEndpoint)
	}

	if cfg.ReconnectDelay < 0 {
		return errors.New(errors.ErrConfig,
			"reconnect_delay cannot be negative",
			"Use a duration like 1s or 500ms")
	}
	if cfg.History < 0 {
		return errors.New(errors.ErrConfig,
			"history cannot be negative",
			fmt.Sprintf("Use a positive sample count, e.g. %d", DefaultHistorySize))
	}

	return nil
}
