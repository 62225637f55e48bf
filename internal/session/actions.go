package session

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/budgie/internal/cli"
	"github.com/theirongolddev/budgie/internal/model"
)

func (s *Session) addExpense() error {
	if s.state.OverBudget() {
		ok, err := s.confirm("You are already over the budget. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			s.term.Println("Expense not added.")
			return nil
		}
	}

	description, err := s.read("Enter expense description: ")
	if err != nil {
		return err
	}
	amount, err := s.askFloat(fmt.Sprintf("Enter expense amount (You have %s balance left): ",
		cli.FormatAmount(s.state.Balance())))
	if err != nil {
		return err
	}
	if amount <= 0 {
		s.term.Println(s.r.Colorize(cli.Yellow, "Note: this amount is not positive."))
	}

	if s.state.BalanceAfter(amount) < 0 {
		ok, err := s.confirm("Adding this will put you over the budget. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			s.term.Println("Expense not added.")
			return nil
		}
	}

	s.state.AddExpense(description, amount)
	s.log.Info().Str("description", description).Float64("amount", amount).Msg("expense added")
	s.term.Printf("Added expense: %s, Amount: %s\n", description, cli.FormatExact(amount))
	return nil
}

func (s *Session) showDetails() {
	s.term.Println(Details(s.r, s.state))
}

// Details renders the budget, every expense, the total spent and the
// remaining balance in a box. The balance is green when it is not negative
// and red otherwise.
func Details(r cli.Renderer, st *model.BudgetState) string {
	lines := []string{
		r.Colorize(cli.Yellow, "Total Budget: "+cli.FormatAmount(st.Budget)),
		"Expenses:",
	}
	for _, e := range st.Expenses {
		lines = append(lines, fmt.Sprintf("- %s: %s", e.Description, cli.FormatAmount(e.Amount)))
	}
	lines = append(lines, "Total Spent: "+cli.FormatAmount(st.TotalSpent()))

	balance := st.Balance()
	color := cli.Green
	if balance < 0 {
		color = cli.Red
	}
	lines = append(lines, "Remaining Budget: "+r.Colorize(color, cli.FormatAmount(balance)))

	return r.RenderBox(lines)
}

// selectExpense lists the expenses and asks for a position until a valid
// one is given.
func (s *Session) selectExpense(msg string) (int, error) {
	for i, e := range s.state.Expenses {
		s.term.Printf("%s - %s: %s\n", s.r.HighlightItem(fmt.Sprint(i)), e.Description, cli.FormatAmount(e.Amount))
	}

	for {
		choice, err := s.askInt(msg)
		if err != nil {
			return 0, err
		}
		if choice >= 0 && choice < s.state.Len() {
			return choice, nil
		}
		s.term.Replace(s.r.Colorize(cli.Red, "That's not one of the items!"))
	}
}

func (s *Session) deleteExpense() error {
	if s.state.Len() == 0 {
		s.term.Println("You have no expenses. Add one first.")
		return nil
	}

	index, err := s.selectExpense("Enter the # of the item you want to delete: ")
	if err != nil {
		return err
	}
	deleted, err := s.state.RemoveExpense(index)
	if err != nil {
		return err
	}

	s.log.Info().Int("index", index).Str("description", deleted.Description).Msg("expense deleted")
	s.term.Printf("\"%s - %s\" has been deleted.\n", deleted.Description, cli.FormatExact(deleted.Amount))
	return nil
}

func (s *Session) editExpense() error {
	if s.state.Len() == 0 {
		s.term.Println("You have no expenses. Add one first.")
		return nil
	}

	index, err := s.selectExpense("Enter the # of the item you want to edit: ")
	if err != nil {
		return err
	}
	updated, err := s.state.Expense(index)
	if err != nil {
		return err
	}

	s.term.Println(s.r.HighlightItem("1") + ". Edit description")
	s.term.Println(s.r.HighlightItem("2") + ". Edit amount")

	for {
		mode, err := s.read("What do you want to edit? ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(mode) {
		case "1":
			s.term.ClearLine()
			text, err := s.read(updated.Description + " -> ")
			if err != nil {
				return err
			}
			if err := s.state.UpdateDescription(index, text); err != nil {
				return err
			}
			updated.Description = text
		case "2":
			s.term.ClearLine()
			amount, err := s.askFloat(cli.FormatExact(updated.Amount) + " -> ")
			if err != nil {
				return err
			}
			if err := s.state.UpdateAmount(index, amount); err != nil {
				return err
			}
			updated.Amount = amount
		default:
			s.term.Replace(s.r.Colorize(cli.Red, "That's not one of the options!"))
			continue
		}
		break
	}

	s.log.Info().Int("index", index).Str("description", updated.Description).Float64("amount", updated.Amount).Msg("expense edited")
	s.term.Printf("Updated expense %d: %s, Amount: %s\n", index, updated.Description, cli.FormatExact(updated.Amount))
	return nil
}

func (s *Session) editBudget() error {
	s.term.Printf("Your current budget is: %s\n", s.r.Colorize(cli.Yellow, cli.FormatAmount(s.state.Budget)))
	budget, err := s.askFloat("Enter your new budget: ")
	if err != nil {
		return err
	}

	s.log.Info().Float64("from", s.state.Budget).Float64("to", budget).Msg("budget changed")
	s.state.Budget = budget
	s.term.Printf("Budget set to %s\n", cli.FormatAmount(budget))
	return nil
}
