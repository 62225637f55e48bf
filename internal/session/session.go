// Package session runs the interactive budget menu: it owns the budget state
// for the lifetime of one run, dispatches menu choices to the record store
// and saves the result on exit.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/budgie/internal/cli"
	"github.com/theirongolddev/budgie/internal/model"
	"github.com/theirongolddev/budgie/internal/store"
	"github.com/theirongolddev/budgie/internal/term"

	"github.com/rs/zerolog"
)

// ErrInputClosed is returned by Run when the input ends before the user
// chooses to exit. Nothing is saved in that case.
var ErrInputClosed = errors.New("input closed before exit")

// ErrNotSaved wraps the save failure returned by Run. The failure has
// already been shown on the terminal when Run returns it.
var ErrNotSaved = errors.New("budget not saved")

// SaveFunc persists the final state to path.
type SaveFunc func(path string, s model.BudgetState) error

// Journal records a snapshot of every saved session.
type Journal interface {
	Record(model.Snapshot) error
}

// Options configures a session.
type Options struct {
	DataFile  string
	HasBudget bool // false prompts for an initial budget at startup
	Save      SaveFunc
	Journal   Journal // optional
	SessionID string
	Logger    zerolog.Logger
	Now       func() time.Time
}

// Session is one run of the menu loop.
type Session struct {
	state *model.BudgetState
	term  *term.Terminal
	r     cli.Renderer
	opts  Options
	log   zerolog.Logger
}

type menuItem struct {
	key   string
	label string
}

var menuItems = []menuItem{
	{"1", "Add an expense"},
	{"2", "Show budget details"},
	{"3", "Delete an expense"},
	{"4", "Edit an expense"},
	{"5", "Edit budget"},
	{"6", "Exit and Save"},
}

// New returns a session operating on state. The session is the only writer
// of state until Run returns.
func New(state *model.BudgetState, t *term.Terminal, opts Options) *Session {
	if opts.Save == nil {
		opts.Save = store.SaveState
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DataFile == "" {
		opts.DataFile = "budget_data.json"
	}

	return &Session{
		state: state,
		term:  t,
		r:     t.Renderer(),
		opts:  opts,
		log: opts.Logger.With().
			Str("session_id", opts.SessionID).
			Str("data_file", opts.DataFile).
			Logger(),
	}
}

// Run drives the session until the user exits. It returns nil after a
// successful save, ErrInputClosed if the input ends first, or the save error.
func (s *Session) Run() error {
	s.log.Info().
		Float64("budget", s.state.Budget).
		Int("expenses", s.state.Len()).
		Bool("has_budget", s.opts.HasBudget).
		Msg("session started")

	s.term.ClearScreen()
	s.term.Println(s.r.Colorize(cli.Cyan, "Welcome to the Budget App"))

	if !s.opts.HasBudget {
		budget, err := s.askFloat("Please enter your initial budget: ")
		if err != nil {
			return s.abort(err)
		}
		s.state.Budget = budget
	}

	for {
		choice, err := s.showMenu()
		if err != nil {
			return s.abort(err)
		}
		s.term.ClearScreen()

		done, err := s.dispatch(strings.TrimSpace(choice))
		if err != nil {
			return s.abort(err)
		}
		if done {
			return nil
		}
	}
}

func (s *Session) showMenu() (string, error) {
	s.term.SaveCursor()
	s.term.Print("\n\n")
	for _, item := range menuItems {
		s.term.Println(s.r.HighlightItem(item.key) + ". " + item.label)
	}
	s.term.RestoreCursor()
	return s.read("Enter the # your choice: ")
}

// dispatch runs the action for choice and reports whether the session ended.
func (s *Session) dispatch(choice string) (bool, error) {
	switch choice {
	case "1":
		return false, s.addExpense()
	case "2":
		s.showDetails()
		return false, nil
	case "3":
		return false, s.deleteExpense()
	case "4":
		return false, s.editExpense()
	case "5":
		return false, s.editBudget()
	case "6":
		return true, s.exit()
	default:
		s.term.Println(s.r.Colorize(cli.Red, "Invalid choice, please choose again."))
		return false, nil
	}
}

func (s *Session) exit() error {
	if err := s.opts.Save(s.opts.DataFile, *s.state); err != nil {
		s.term.Println(s.r.Colorize(cli.Red, "Could not save your budget: "+err.Error()))
		return fmt.Errorf("%w: saving budget data: %w", ErrNotSaved, err)
	}
	s.log.Info().
		Float64("budget", s.state.Budget).
		Int("expenses", s.state.Len()).
		Float64("balance", s.state.Balance()).
		Msg("budget saved")

	s.record()
	s.term.Println("Saving changes and exiting Budget App. Goodbye!")
	return nil
}

func (s *Session) record() {
	if s.opts.Journal == nil {
		return
	}
	snap := model.NewSnapshot(s.opts.SessionID, s.opts.DataFile, s.opts.Now(), s.state)
	if err := s.opts.Journal.Record(snap); err != nil {
		s.log.Warn().Err(err).Msg("could not record history snapshot")
	}
}

func (s *Session) abort(err error) error {
	if errors.Is(err, ErrInputClosed) {
		s.log.Warn().Msg("input closed, session ended without saving")
	} else {
		s.log.Error().Err(err).Msg("session ended")
	}
	return err
}
