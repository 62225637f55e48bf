package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/budgie/internal/cli"
	"github.com/theirongolddev/budgie/internal/config"
	"github.com/theirongolddev/budgie/internal/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose the data file, output style and theme",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	dataFile := cfg.General.DataFile
	renderer := cfg.General.Renderer
	themeName := cfg.Appearance.Theme
	keepHistory := cfg.History.Enabled

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Budget data file").
				Description("Relative paths are resolved from the directory budgie runs in.").
				Value(&dataFile).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("a file name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Output style").
				Options(
					huh.NewOption("Color", cli.RendererColor),
					huh.NewOption("Plain (no colors)", cli.RendererPlain),
				).
				Value(&renderer),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&themeName),
			huh.NewConfirm().
				Title("Keep a history of saved sessions?").
				Value(&keepHistory),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing changed.")
			return nil
		}
		return fmt.Errorf("running setup: %w", err)
	}

	cfg.General.DataFile = strings.TrimSpace(dataFile)
	cfg.General.Renderer = renderer
	cfg.Appearance.Theme = themeName
	cfg.History.Enabled = keepHistory

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `budgie setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
