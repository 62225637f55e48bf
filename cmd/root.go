// Package cmd implements the budgie CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/budgie/internal/cli"
	"github.com/theirongolddev/budgie/internal/config"
	"github.com/theirongolddev/budgie/internal/logger"
	"github.com/theirongolddev/budgie/internal/session"
	"github.com/theirongolddev/budgie/internal/store"
	"github.com/theirongolddev/budgie/internal/term"
	"github.com/theirongolddev/budgie/internal/theme"

	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagFile      string
	flagPlain     bool
	flagTheme     string
	flagNoHistory bool
	flagLogFile   string
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:              "budgie",
	Short:            "Terminal budget tracker",
	Long:             "Keep a budget and its expenses from an interactive terminal menu.",
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRun: prepare,
	RunE:             runSession,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the selected command and closes the log on every path,
// including a failed RunE.
func execute() error {
	defer closeLog()
	return rootCmd.Execute()
}

// reportError prints err unless the session already told the user about it.
func reportError(w io.Writer, err error) {
	if errors.Is(err, session.ErrInputClosed) || errors.Is(err, session.ErrNotSaved) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Budget data file (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Plain output without colors")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (terminal, flexoki-dark, catppuccin-mocha, tokyo-night)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path, - for stderr (default in the cache dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this session in the history journal")
}

// active holds the settings resolved for the running command.
var active settings

var logCloser io.Closer = io.NopCloser(nil)

func closeLog() {
	_ = logCloser.Close()
	logCloser = io.NopCloser(nil)
}

// prepare resolves settings and attaches the session logger to the
// command context.
func prepare(cmd *cobra.Command, _ []string) {
	active = loadSettings()

	log, closer := openLogger(active.cfg)
	logCloser = closer
	cmd.SetContext(logger.WithContext(cmd.Context(), log))
}

// settings is the effective configuration after flags are applied.
type settings struct {
	cfg      config.Config
	dataFile string
	plain    bool
	renderer cli.Renderer
}

// loadSettings merges the config file with command-line flags and
// activates the chosen theme.
func loadSettings() settings {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Ignoring config (%v), using defaults\n", err)
	}

	if flagFile != "" {
		cfg.General.DataFile = flagFile
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	theme.SetActive(cfg.Appearance.Theme)

	name := cfg.General.Renderer
	if flagPlain || termenv.EnvNoColor() {
		name = cli.RendererPlain
	}

	return settings{
		cfg:      cfg,
		dataFile: cfg.General.DataFile,
		plain:    name == cli.RendererPlain,
		renderer: cli.NewRenderer(name, theme.Active),
	}
}

// openLogger opens the session log file; a failure disables logging.
func openLogger(cfg config.Config) (zerolog.Logger, io.Closer) {
	log, closer, err := logger.Open(cfg.LogPath(), cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Logging disabled: %v\n", err)
	}
	return log, closer
}

func runSession(cmd *cobra.Command, _ []string) error {
	set := active
	log := logger.FromContext(cmd.Context())

	state, found := store.LoadState(set.dataFile, log)

	var journal session.Journal
	if set.cfg.History.Enabled && !flagNoHistory {
		h, err := store.OpenHistory(config.HistoryPath())
		if err != nil {
			log.Warn().Err(err).Msg("history journal unavailable")
		} else {
			defer h.Close()
			journal = h
		}
	}

	t := term.New(os.Stdin, os.Stdout, set.renderer)
	sess := session.New(&state, t, session.Options{
		DataFile:  set.dataFile,
		HasBudget: found,
		Journal:   journal,
		SessionID: uuid.NewString(),
		Logger:    log,
	})

	if err := sess.Run(); err != nil {
		if errors.Is(err, session.ErrInputClosed) {
			fmt.Fprintln(os.Stderr, "\n  Input closed; changes were not saved.")
		}
		return err
	}
	return nil
}
