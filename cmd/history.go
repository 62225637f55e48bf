package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/budgie/internal/cli"
	"github.com/theirongolddev/budgie/internal/config"
	"github.com/theirongolddev/budgie/internal/store"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently saved sessions",
	RunE:  runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "Number of sessions to show (default from config)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	set := active

	limit := historyLimit
	if limit <= 0 {
		limit = set.cfg.History.Limit
	}

	h, err := store.OpenHistory(config.HistoryPath())
	if err != nil {
		return err
	}
	defer h.Close()

	snaps, err := h.Recent(limit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	if len(snaps) == 0 {
		fmt.Println("\n  No saved sessions recorded yet.")
		return nil
	}

	total, err := h.Count()
	if err != nil {
		return fmt.Errorf("counting history: %w", err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET HISTORY  (showing %d of %d)", len(snaps), total)))
	fmt.Println()

	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		balance := cli.FormatAmount(s.Balance)
		if s.Balance < 0 {
			balance = set.renderer.Colorize(cli.Red, balance)
		}
		rows = append(rows, []string{
			cli.FormatTime(s.SavedAt),
			truncate(filepath.Base(s.DataFile), 20),
			cli.FormatAmount(s.Budget),
			cli.FormatAmount(s.Spent),
			balance,
			cli.FormatNumber(int64(s.Count)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Saved", "File", "Budget", "Spent", "Balance", "Expenses"},
		Rows:    rows,
	}))

	return nil
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
