package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BrainDriveAI/pagecontext/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify pagectx configuration",
	Long: `View or modify pagectx configuration.

Without arguments, displays the current configuration.
Use subcommands to create a config file or locate it.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/pagectx/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	// Logging settings
	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	if cfg.Logging.Dir != "" {
		fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.Dir)
	} else {
		fmt.Fprintf(out, "  dir: (stderr)\n")
	}

	// Client settings
	fmt.Fprintln(out, "client:")
	fmt.Fprintf(out, "  owner_id: %s\n", cfg.Client.OwnerID)
	fmt.Fprintf(out, "  history_limit: %d\n", cfg.Client.HistoryLimit)

	// Host settings
	fmt.Fprintln(out, "host:")
	fmt.Fprintf(out, "  navigate_interval_ms: %d\n", cfg.Host.NavigateIntervalMs)
	fmt.Fprintf(out, "  cycles: %d\n", cfg.Host.Cycles)
	fmt.Fprintf(out, "  pages: %d configured\n", len(cfg.Host.Pages))
	for _, p := range cfg.Host.Pages {
		fmt.Fprintf(out, "    - %s (%s) %s\n", p.ID, p.Name, p.Route)
	}

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Generate a commented config file
	configContent := `# Pagectx Configuration

# Diagnostic logging
logging:
  enabled: true
  # Log level: debug, info, warn, error
  level: info
  # Directory for plugin.log; empty logs to stderr
  dir: ""

# Page-context client settings
client:
  # Label attached to every log record the client emits
  owner_id: braindrive
  # Number of change events retained in history
  history_limit: 10

# Simulated host used by the watch command
host:
  # Pause between simulated navigations in milliseconds
  navigate_interval_ms: 500
  # Passes over the page set
  cycles: 1
  pages:
    - id: home
      name: Home
      route: /
    - id: dashboard
      name: Dashboard
      route: /dashboard
    - id: settings
      name: Settings
      route: /settings
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/pagectx/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: PAGECTX_* (e.g., PAGECTX_LOGGING_LEVEL)")

	return nil
}
