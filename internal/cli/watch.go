package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dley18/System-Health-Dashboard/internal/config"
	"github.com/dley18/System-Health-Dashboard/internal/dashboard"
	"github.com/dley18/System-Health-Dashboard/internal/stream"
)

// watchCommand starts the TUI dashboard: load config, subscribe to the
// stream, hand the subscription to the Bubble Tea model.
func watchCommand(cfgPath, endpoint, delayFlag string, history int) error {
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}

	// Flags override config file values
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if delayFlag != "" {
		delay, err := ParseDelay(delayFlag)
		if err != nil {
			return err
		}
		cfg.ReconnectDelay = delay
	}
	if history > 0 {
		cfg.History = history
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	sub := stream.Subscribe(cfg.Endpoint,
		stream.WithReconnectDelay(cfg.ReconnectDelay))

	model := dashboard.NewModel(sub, cfg.History)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()

	// Graceful shutdown: stop reconnects and release the connection.
	sub.Close()

	return err
}
