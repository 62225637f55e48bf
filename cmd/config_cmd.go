package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgie/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	set := active
	cfg := set.cfg

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data file: %s\n", set.dataFile)
	if set.plain {
		fmt.Println("    Renderer:  plain")
	} else {
		fmt.Println("    Renderer:  color")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [History]")
	if cfg.History.Enabled {
		fmt.Printf("    Journal: %s\n", config.HistoryPath())
	} else {
		fmt.Println("    Journal: disabled")
	}
	fmt.Printf("    Limit:   %d\n", cfg.History.Limit)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    File:  %s\n", cfg.LogPath())
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Println("  Run `budgie setup` to reconfigure.")
	return nil
}
