package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/theirongolddev/budgie/internal/model"

	"github.com/rs/zerolog"
)

// stateFile mirrors the on-disk document. InitialBudget is a pointer so that
// a file without a budget can be told apart from one holding 0.
type stateFile struct {
	InitialBudget *float64        `json:"initial_budget"`
	Expenses      []model.Expense `json:"expenses"`
}

// ReadState decodes the budget document at path. The bool reports whether
// the document recorded a budget. Any failure yields the default state
// together with the error that caused it.
func ReadState(path string) (model.BudgetState, bool, error) {
	state := model.NewBudgetState(0)

	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return state, false, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc stateFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return state, false, fmt.Errorf("parsing %s: %w", path, err)
	}

	if doc.Expenses != nil {
		state.Expenses = doc.Expenses
	}
	if doc.InitialBudget == nil {
		return state, false, nil
	}
	state.Budget = *doc.InitialBudget
	return state, true, nil
}

// LoadState reads the budget document at path, falling back to an empty
// state with no budget when the file is missing or unreadable. The reason
// for a fallback goes to log only: debug for a missing file, warn otherwise.
func LoadState(path string, log zerolog.Logger) (model.BudgetState, bool) {
	state, found, err := ReadState(path)
	if err != nil {
		ev := log.Warn()
		if errors.Is(err, fs.ErrNotExist) {
			ev = log.Debug()
		}
		ev.Err(err).Str("data_file", path).Msg("using an empty budget")
	}
	return state, found
}

// SaveState writes s to path as an indented JSON document, replacing any
// previous content.
func SaveState(path string, s model.BudgetState) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}

	expenses := s.Expenses
	if expenses == nil {
		expenses = []model.Expense{}
	}
	budget := s.Budget
	doc := stateFile{InitialBudget: &budget, Expenses: expenses}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding budget data: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
