package session

import (
	"fmt"
	"strings"
	"testing"

	"github.com/theirongolddev/budgie/internal/cli"
	"github.com/theirongolddev/budgie/internal/model"
)

// tagRenderer marks colors with readable tags so tests can see them.
type tagRenderer struct {
	cli.Plain
}

func (tagRenderer) Colorize(c cli.Color, text string) string {
	return fmt.Sprintf("<%d>%s</%d>", c, text, c)
}

func (tagRenderer) RenderBox(lines []string) string {
	return strings.Join(lines, "\n")
}

func TestDetails_BalanceColor(t *testing.T) {
	under := model.NewBudgetState(100)
	under.AddExpense("Rent", 30)
	out := Details(tagRenderer{}, &under)
	if !strings.Contains(out, fmt.Sprintf("Remaining Budget: <%d>70.00</%d>", cli.Green, cli.Green)) {
		t.Fatalf("non-negative balance not green:\n%s", out)
	}

	over := model.NewBudgetState(100)
	over.AddExpense("Rent", 150)
	out = Details(tagRenderer{}, &over)
	if !strings.Contains(out, fmt.Sprintf("Remaining Budget: <%d>-50.00</%d>", cli.Red, cli.Red)) {
		t.Fatalf("negative balance not red:\n%s", out)
	}
}

func TestDetails_Lines(t *testing.T) {
	st := model.NewBudgetState(20)
	st.AddExpense("Tea", 2.5)
	st.AddExpense("", 1)

	got := strings.Split(Details(tagRenderer{}, &st), "\n")
	want := []string{
		fmt.Sprintf("<%d>Total Budget: 20.00</%d>", cli.Yellow, cli.Yellow),
		"Expenses:",
		"- Tea: 2.50",
		"- : 1.00",
		"Total Spent: 3.50",
		fmt.Sprintf("Remaining Budget: <%d>16.50</%d>", cli.Green, cli.Green),
	}
	if len(got) != len(want) {
		t.Fatalf("Details has %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
