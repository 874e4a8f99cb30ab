package cli

import (
	"fmt"
	"time"

	"github.com/dley18/System-Health-Dashboard/internal/errors"
)

// ParseDelay parses a duration flag value.
func ParseDelay(flag string) (time.Duration, error) {
	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid duration", flag),
			"Try something like 1s, 500ms, or 2m.")
	}
	if duration <= 0 {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("Duration must be positive, got '%s'", flag),
			"Try something like 1s, 500ms, or 2m.")
	}
	return duration, nil
}
