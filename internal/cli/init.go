package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/dley18/System-Health-Dashboard/internal/config"
	"github.com/dley18/System-Health-Dashboard/internal/errors"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Endpoint       string // Pre-specified stream endpoint
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// fileConfig is the on-disk shape written by init. The delay is written as a
// duration string ("1s") rather than the nanosecond integer yaml would emit
// for time.Duration; viper parses it back on load.
type fileConfig struct {
	Endpoint       string `yaml:"endpoint"`
	ReconnectDelay string `yaml:"reconnect_delay"`
	History        int    `yaml:"history"`
}

// Init creates a new .shd.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Collect the endpoint
	endpoint := opts.Endpoint
	if endpoint == "" {
		if opts.NonInteractive {
			endpoint = config.DefaultEndpoint
		} else {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Metrics stream endpoint").
						Description("Websocket address of the system health service").
						Placeholder(config.DefaultEndpoint).
						Value(&endpoint),
				),
			)
			if err := form.Run(); err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig,
					"Failed to get user input",
					"Try running with --endpoint to skip prompts")
			}
			if endpoint == "" {
				endpoint = config.DefaultEndpoint
			}
		}
	}

	cfg := config.Defaults()
	cfg.Endpoint = endpoint
	if err := config.Validate(cfg); err != nil {
		return err
	}

	out := fileConfig{
		Endpoint:       cfg.Endpoint,
		ReconnectDelay: cfg.ReconnectDelay.String(),
		History:        cfg.History,
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config", "")
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+configPath,
			"Check directory permissions")
	}

	fmt.Printf("Wrote %s\n", configPath)
	return nil
}
