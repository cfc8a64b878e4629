package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/BrainDriveAI/pagecontext/internal/pagecontext"
)

// Config represents the complete plugin configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Client  ClientConfig  `mapstructure:"client"`
	Host    HostConfig    `mapstructure:"host"`
}

// LoggingConfig controls diagnostic logging behavior
type LoggingConfig struct {
	// Enabled controls whether diagnostic logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory for the plugin.log file; empty means stderr
	Dir string `mapstructure:"dir"`
}

// ClientConfig controls the page-context client
type ClientConfig struct {
	// OwnerID labels diagnostics emitted by the client (default: "braindrive")
	OwnerID string `mapstructure:"owner_id"`
	// HistoryLimit is the number of change events retained (default: 10)
	HistoryLimit int `mapstructure:"history_limit"`
}

// HostConfig controls the simulated host used by the watch command
type HostConfig struct {
	// Pages is the set of pages the simulated host navigates through.
	// Empty falls back to a built-in demo set.
	Pages []PageConfig `mapstructure:"pages"`
	// NavigateIntervalMs is the pause between simulated navigations (default: 500)
	NavigateIntervalMs int `mapstructure:"navigate_interval_ms"`
	// Cycles is how many passes over the page set the watch command makes (default: 1)
	Cycles int `mapstructure:"cycles"`
}

// PageConfig describes one page of the simulated host
type PageConfig struct {
	ID    string `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Route string `mapstructure:"route"`
}

// Context converts a configured page into a page-context record.
func (p PageConfig) Context() pagecontext.Context {
	return pagecontext.Context{ID: p.ID, Name: p.Name, Route: p.Route}
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
		Client: ClientConfig{
			OwnerID:      "braindrive",
			HistoryLimit: pagecontext.DefaultHistoryLimit,
		},
		Host: HostConfig{
			Pages: []PageConfig{
				{ID: "home", Name: "Home", Route: "/"},
				{ID: "dashboard", Name: "Dashboard", Route: "/dashboard"},
				{ID: "settings", Name: "Settings", Route: "/settings"},
			},
			NavigateIntervalMs: 500,
			Cycles:             1,
		},
	}
}

// SetDefaults registers default values with viper. The page set is not
// registered here: viper cannot default a list of structs cleanly, so Load
// falls back to the built-in pages when none are configured.
func SetDefaults() {
	defaults := Default()

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)

	// Client defaults
	viper.SetDefault("client.owner_id", defaults.Client.OwnerID)
	viper.SetDefault("client.history_limit", defaults.Client.HistoryLimit)

	// Host defaults
	viper.SetDefault("host.navigate_interval_ms", defaults.Host.NavigateIntervalMs)
	viper.SetDefault("host.cycles", defaults.Host.Cycles)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if len(cfg.Host.Pages) == 0 {
		cfg.Host.Pages = Default().Host.Pages
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pagectx")
	}
	// Fall back to ~/.config/pagectx
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pagectx"
	}
	return filepath.Join(home, ".config", "pagectx")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
