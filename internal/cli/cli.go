package cli

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/ihcc-events/internal/classify"
	"github.com/pfrederiksen/ihcc-events/internal/event"
	"github.com/pfrederiksen/ihcc-events/internal/importer"
	"github.com/pfrederiksen/ihcc-events/internal/logger"
	"github.com/pfrederiksen/ihcc-events/internal/pricing"
	"github.com/pfrederiksen/ihcc-events/internal/storage"
)

var (
	flagFormat  string
	flagVerbose bool
	flagDataDir string
	flagRules   string
	flagPrices  string
	flagSeed    int64
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ihcc-events",
		Short: "Import and classify club calendar events",
		Long: `Turns raw club calendar data (CSV exports or the club website's events
page) into normalized, categorized, priced event records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logger.LevelInfo
			if flagVerbose {
				level = logger.LevelDebug
			}
			logger.SetDefault(logger.New(level, os.Stderr))

			format := OutputFormat(strings.ToLower(flagFormat))
			if format != FormatText && format != FormatJSON {
				return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", storage.DefaultDataDir, "Data directory for the event snapshot")
	cmd.PersistentFlags().StringVar(&flagRules, "rules", "", "YAML file overriding the classification rules")
	cmd.PersistentFlags().StringVar(&flagPrices, "prices", "", "YAML file overriding the per-category price ranges")
	cmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed for default pricing (0 = random)")

	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

// Execute runs the CLI and returns a process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newParser builds the record parser from the shared flags.
func newParser() (*importer.Parser, error) {
	rules := classify.DefaultRuleset()
	if flagRules != "" {
		loaded, err := classify.LoadRuleset(flagRules)
		if err != nil {
			return nil, fmt.Errorf("loading rules: %w", err)
		}
		rules = loaded
	}

	var ranges map[event.Category]pricing.Range
	if flagPrices != "" {
		loaded, err := pricing.LoadRanges(flagPrices)
		if err != nil {
			return nil, fmt.Errorf("loading price ranges: %w", err)
		}
		ranges = loaded
	}

	var rng *rand.Rand
	if flagSeed != 0 {
		rng = rand.New(rand.NewSource(flagSeed))
	}

	return importer.NewParser(rules, ranges, rng), nil
}

// openStorage initializes the snapshot store from the shared flags.
func openStorage() (*storage.Storage, error) {
	store, err := storage.New(flagDataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	return store, nil
}

// outputFormat returns the validated format flag.
func outputFormat() OutputFormat {
	return OutputFormat(strings.ToLower(flagFormat))
}

// waitForInterrupt blocks until SIGINT or SIGTERM.
func waitForInterrupt() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
