package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/handiism/travel-discovery/internal/config"
	"github.com/handiism/travel-discovery/internal/loader"
)

var (
	configPath  string
	baseURL     string
	verbose     bool
	jsonOutput  bool
	concurrency int

	settings *config.Settings
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "travel-cli",
		Short:        "Browse travel categories and destinations from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultPath()
			}
			s, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			if baseURL != "" {
				s.BaseURL = baseURL
			}
			if concurrency > 0 {
				s.MaxConcurrentLoads = concurrency
			}
			settings = s
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/travel-discovery/config.json)")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (overrides config)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show verbose output")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	root.PersistentFlags().IntVarP(&concurrency, "concurrency", "c", 0, "loads in flight at once (overrides config)")

	root.AddCommand(categoryCmd(), destinationCmd(), catalogCmd())
	return root
}

// printEvent writes a loader event with a level prefix.
func printEvent(w io.Writer, event loader.Event) {
	if event.Level == loader.LevelVerbose && !verbose {
		return
	}

	prefix := ""
	switch event.Level {
	case loader.LevelError:
		prefix = "❌ "
	case loader.LevelWarning:
		prefix = "⚠️  "
	case loader.LevelSuccess:
		prefix = "✅ "
	case loader.LevelInfo:
		prefix = "ℹ️  "
	default:
		prefix = "   "
	}

	fmt.Fprintln(w, prefix+event.Message)
}
