package cli

import (
	"fmt"
	"time"

	"github.com/dley18/System-Health-Dashboard/internal/config"
	"github.com/dley18/System-Health-Dashboard/internal/errors"
	"github.com/dley18/System-Health-Dashboard/internal/stream"
)

// nowCommand connects to the stream, prints the first valid reading, and
// disconnects.
func nowCommand(cfgPath, endpoint string, timeout time.Duration) error {
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	sub := stream.Subscribe(cfg.Endpoint,
		stream.WithReconnectDelay(cfg.ReconnectDelay))
	defer sub.Close()

	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case reading, ok := <-sub.Updates():
		if !ok {
			return errors.New(errors.ErrStream,
				"Stream closed before a reading arrived",
				"Check the system health service is running.")
		}
		fmt.Printf("%.1f%%\n", reading.Total)
		return nil

	case <-t.C:
		return errors.New(errors.ErrStream,
			fmt.Sprintf("No reading within %s from %s", timeout, cfg.Endpoint),
			"Check the system health service is running and the endpoint is correct.")
	}
}
