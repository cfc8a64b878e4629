package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrainDriveAI/pagecontext/internal/bridge"
	"github.com/BrainDriveAI/pagecontext/internal/config"
	"github.com/BrainDriveAI/pagecontext/internal/host"
	"github.com/BrainDriveAI/pagecontext/internal/logging"
	"github.com/BrainDriveAI/pagecontext/internal/pagecontext"
)

var (
	watchCycles   int
	watchInterval int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Attach to a simulated host and watch page changes",
	Long: `Watch runs a simulated host bridge through its configured pages,
attaches a page-context client to it, and prints every change event
the client observes along with its classification.

The page set, navigation interval, and cycle count come from the
host section of the configuration.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntVar(&watchCycles, "cycles", 0, "passes over the page set (overrides config)")
	watchCmd.Flags().IntVar(&watchInterval, "interval-ms", 0, "pause between navigations in milliseconds (overrides config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	cycles := cfg.Host.Cycles
	if watchCycles > 0 {
		cycles = watchCycles
	}
	interval := cfg.Host.NavigateIntervalMs
	if watchInterval > 0 {
		interval = watchInterval
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Close()
	}

	pages := make([]pagecontext.Context, 0, len(cfg.Host.Pages))
	for _, p := range cfg.Host.Pages {
		pages = append(pages, p.Context())
	}
	sim := host.NewSimulator(pages...)

	client := bridge.New(cfg.Client.OwnerID, "",
		bridge.WithHistoryLimit(cfg.Client.HistoryLimit),
		bridge.WithLogger(logger),
	)

	if err := client.Attach(sim); err != nil {
		return fmt.Errorf("failed to attach to host bridge: %w", err)
	}
	defer client.Detach()

	current, err := client.CurrentContext()
	if err != nil {
		return fmt.Errorf("failed to read initial page context: %w", err)
	}
	if current != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Starting on %s\n", current)
	}

	out := cmd.OutOrStdout()
	stop, err := client.Subscribe(func(ctx pagecontext.Context) {
		fmt.Fprintf(out, "  -> %s\n", ctx.String())
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to page changes: %w", err)
	}
	defer stop()

	pause := time.Duration(interval) * time.Millisecond
	for cycle := 0; cycle < cycles; cycle++ {
		for range pages {
			if pause > 0 {
				time.Sleep(pause)
			}
			sim.Advance()
		}
	}

	printHistory(cmd, client.History())
	return nil
}

func printHistory(cmd *cobra.Command, events []pagecontext.ChangeEvent) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	if len(events) == 0 {
		fmt.Fprintln(out, "No change events recorded.")
		return
	}

	fmt.Fprintf(out, "Change history (%d events, newest first):\n", len(events))
	for i, ev := range events {
		from := "(none)"
		if ev.Previous != nil {
			from = ev.Previous.Route
		}
		fmt.Fprintf(out, "  %2d. [%s] %s -> %s (%s)\n",
			i+1, ev.Kind, from, ev.Current.Route, ev.Current.Name)
	}
}
