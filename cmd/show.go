package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgie/internal/cli"
	"github.com/theirongolddev/budgie/internal/logger"
	"github.com/theirongolddev/budgie/internal/model"
	"github.com/theirongolddev/budgie/internal/session"
	"github.com/theirongolddev/budgie/internal/store"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print budget details without starting a session",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	set := active
	state, found := store.LoadState(set.dataFile, logger.FromContext(cmd.Context()))

	if !found && state.Len() == 0 {
		fmt.Printf("\n  No budget recorded in %s yet.\n", set.dataFile)
		fmt.Println("  Run `budgie` to set one up.")
		return nil
	}

	fmt.Println()
	fmt.Println(session.Details(set.renderer, &state))

	sum := model.Summarize(&state)
	if !set.plain && sum.Budget > 0 {
		fmt.Printf("  Used %s\n", cli.RenderUsageBar(sum.UsedPercent, 30))
	}
	return nil
}
