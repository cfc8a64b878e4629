package bridge

import (
	"github.com/BrainDriveAI/pagecontext/internal/logging"
	"github.com/BrainDriveAI/pagecontext/internal/pagecontext"
)

// Option configures a Client.
type Option func(*config)

type config struct {
	historyLimit int
	logger       *logging.Logger
}

// WithHistoryLimit sets the number of change events retained in the client's
// history. A zero or negative value is replaced with the default (10).
func WithHistoryLimit(limit int) Option {
	return func(c *config) {
		c.historyLimit = limit
	}
}

// WithLogger sets the logger for the client.
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func defaultConfig() *config {
	return &config{
		historyLimit: pagecontext.DefaultHistoryLimit,
		logger:       logging.NopLogger(),
	}
}
