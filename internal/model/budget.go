// Package model defines the budget state and the records derived from it.
package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrIndexOutOfRange is returned when an expense position does not exist.
var ErrIndexOutOfRange = errors.New("expense index out of range")

// Expense is one spending entry. Its identity is its position in the list.
type Expense struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// BudgetState holds the budget figure and the ordered expense list.
type BudgetState struct {
	Budget   float64   `json:"initial_budget"`
	Expenses []Expense `json:"expenses"`
}

// NewBudgetState returns a state with the given budget and no expenses.
func NewBudgetState(budget float64) BudgetState {
	return BudgetState{Budget: budget, Expenses: []Expense{}}
}

// Len returns the number of recorded expenses.
func (s *BudgetState) Len() int {
	return len(s.Expenses)
}

// Expense returns a copy of the expense at index.
func (s *BudgetState) Expense(index int) (Expense, error) {
	if err := s.checkIndex(index); err != nil {
		return Expense{}, err
	}
	return s.Expenses[index], nil
}

// AddExpense appends an expense. Empty descriptions and non-positive amounts
// are accepted; callers decide whether to warn.
func (s *BudgetState) AddExpense(description string, amount float64) {
	s.Expenses = append(s.Expenses, Expense{Description: description, Amount: amount})
}

// RemoveExpense deletes the expense at index and returns it.
func (s *BudgetState) RemoveExpense(index int) (Expense, error) {
	if err := s.checkIndex(index); err != nil {
		return Expense{}, err
	}
	removed := s.Expenses[index]
	s.Expenses = append(s.Expenses[:index], s.Expenses[index+1:]...)
	return removed, nil
}

// UpdateDescription replaces the description of the expense at index.
func (s *BudgetState) UpdateDescription(index int, text string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.Expenses[index].Description = text
	return nil
}

// UpdateAmount replaces the amount of the expense at index.
func (s *BudgetState) UpdateAmount(index int, value float64) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.Expenses[index].Amount = value
	return nil
}

// TotalSpent sums all expense amounts. The sum is taken in decimal so that
// entered amounts like 0.1 and 0.2 add up to 0.3. A sum too large for a
// float64 is reported as +Inf or -Inf.
func (s *BudgetState) TotalSpent() float64 {
	return s.totalDecimal().InexactFloat64()
}

// Balance is the budget minus everything spent. It may be negative.
func (s *BudgetState) Balance() float64 {
	return s.balanceDecimal().InexactFloat64()
}

// BalanceAfter reports what the balance would be once amount is spent.
func (s *BudgetState) BalanceAfter(amount float64) float64 {
	return s.balanceDecimal().Sub(decimal.NewFromFloat(amount)).InexactFloat64()
}

// OverBudget reports whether the balance is below zero.
func (s *BudgetState) OverBudget() bool {
	return s.balanceDecimal().IsNegative()
}

// totalDecimal and balanceDecimal stay in decimal throughout; only finite
// stored amounts are ever converted, so no intermediate float can overflow.
func (s *BudgetState) totalDecimal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total
}

func (s *BudgetState) balanceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(s.Budget).Sub(s.totalDecimal())
}

func (s *BudgetState) checkIndex(index int) error {
	if index < 0 || index >= len(s.Expenses) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.Expenses))
	}
	return nil
}
