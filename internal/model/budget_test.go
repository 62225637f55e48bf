package model

import (
	"errors"
	"math"
	"testing"
	"time"
)

func stateOf(budget float64, expenses ...Expense) BudgetState {
	s := NewBudgetState(budget)
	s.Expenses = append(s.Expenses, expenses...)
	return s
}

func TestTotalSpent(t *testing.T) {
	empty := NewBudgetState(0)
	if got := empty.TotalSpent(); got != 0 {
		t.Fatalf("TotalSpent(empty) = %v, want 0", got)
	}

	s := stateOf(0, Expense{"a", 10}, Expense{"b", 5.5})
	if got := s.TotalSpent(); got != 15.5 {
		t.Fatalf("TotalSpent = %v, want 15.5", got)
	}
}

func TestTotalSpent_DecimalSum(t *testing.T) {
	s := stateOf(1, Expense{"a", 0.1}, Expense{"b", 0.2})
	if got := s.TotalSpent(); got != 0.3 {
		t.Fatalf("TotalSpent = %v, want 0.3", got)
	}
	if got := s.Balance(); got != 0.7 {
		t.Fatalf("Balance = %v, want 0.7", got)
	}
}

func TestBalance(t *testing.T) {
	s := stateOf(100, Expense{"rent", 30})
	if got := s.Balance(); got != 70 {
		t.Fatalf("Balance = %v, want 70", got)
	}

	over := stateOf(100, Expense{"rent", 150})
	if got := over.Balance(); got != -50 {
		t.Fatalf("Balance = %v, want -50", got)
	}
	if !over.OverBudget() {
		t.Fatal("OverBudget() = false for negative balance")
	}
}

func TestTotals_SumPastFloatRange(t *testing.T) {
	s := stateOf(100, Expense{"a", 1e308}, Expense{"b", 1e308})

	if got := s.TotalSpent(); !math.IsInf(got, 1) {
		t.Fatalf("TotalSpent = %v, want +Inf", got)
	}
	if got := s.Balance(); !math.IsInf(got, -1) {
		t.Fatalf("Balance = %v, want -Inf", got)
	}
	if got := s.BalanceAfter(1e308); !math.IsInf(got, -1) {
		t.Fatalf("BalanceAfter = %v, want -Inf", got)
	}
	if !s.OverBudget() {
		t.Fatal("OverBudget() = false for an overflowing total")
	}

	// the exact decimal balance is still used internally
	back := stateOf(0, Expense{"a", 1e308}, Expense{"b", 1e308}, Expense{"refund", -1e308}, Expense{"refund", -1e308})
	if got := back.Balance(); got != 0 {
		t.Fatalf("Balance = %v, want 0", got)
	}
}

func TestBalanceAfter(t *testing.T) {
	s := stateOf(100, Expense{"food", 70})
	if got := s.BalanceAfter(40); got != -10 {
		t.Fatalf("BalanceAfter(40) = %v, want -10", got)
	}
	if s.Len() != 1 {
		t.Fatalf("BalanceAfter mutated state: len = %d", s.Len())
	}
}

func TestAddExpense_AllowsEmptyAndNegative(t *testing.T) {
	s := NewBudgetState(10)
	s.AddExpense("", 0)
	s.AddExpense("refund", -4)

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if s.Expenses[1] != (Expense{"refund", -4}) {
		t.Fatalf("last expense = %+v", s.Expenses[1])
	}
	if got := s.Balance(); got != 14 {
		t.Fatalf("Balance = %v, want 14", got)
	}
}

func TestRemoveExpense(t *testing.T) {
	s := stateOf(0, Expense{"A", 1}, Expense{"B", 2}, Expense{"C", 3})

	removed, err := s.RemoveExpense(1)
	if err != nil {
		t.Fatalf("RemoveExpense: %v", err)
	}
	if removed != (Expense{"B", 2}) {
		t.Fatalf("removed = %+v, want {B 2}", removed)
	}
	want := []Expense{{"A", 1}, {"C", 3}}
	if len(s.Expenses) != len(want) {
		t.Fatalf("expenses = %+v, want %+v", s.Expenses, want)
	}
	for i := range want {
		if s.Expenses[i] != want[i] {
			t.Fatalf("expenses[%d] = %+v, want %+v", i, s.Expenses[i], want[i])
		}
	}
}

func TestRemoveExpense_OutOfRange(t *testing.T) {
	s := stateOf(0, Expense{"A", 1})

	for _, idx := range []int{-1, 1, 5} {
		if _, err := s.RemoveExpense(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("RemoveExpense(%d) err = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
	if s.Len() != 1 {
		t.Fatalf("failed removal mutated state: len = %d", s.Len())
	}
}

func TestUpdateAmount(t *testing.T) {
	s := stateOf(0, Expense{"A", 1})

	if err := s.UpdateAmount(0, 9); err != nil {
		t.Fatalf("UpdateAmount: %v", err)
	}
	if s.Expenses[0] != (Expense{"A", 9}) {
		t.Fatalf("expense = %+v, want {A 9}", s.Expenses[0])
	}
	if err := s.UpdateAmount(1, 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("UpdateAmount(1) err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestUpdateDescription(t *testing.T) {
	s := stateOf(0, Expense{"A", 1})

	if err := s.UpdateDescription(0, "Groceries"); err != nil {
		t.Fatalf("UpdateDescription: %v", err)
	}
	if s.Expenses[0] != (Expense{"Groceries", 1}) {
		t.Fatalf("expense = %+v", s.Expenses[0])
	}
	if err := s.UpdateDescription(-1, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("UpdateDescription(-1) err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestSummarize(t *testing.T) {
	s := stateOf(200, Expense{"a", 50}, Expense{"b", 100})
	sum := Summarize(&s)

	if sum.Spent != 150 || sum.Balance != 50 || sum.Count != 2 {
		t.Fatalf("Summarize = %+v", sum)
	}
	if sum.UsedPercent != 0.75 {
		t.Fatalf("UsedPercent = %v, want 0.75", sum.UsedPercent)
	}

	zero := NewBudgetState(0)
	if got := Summarize(&zero).UsedPercent; got != 0 {
		t.Fatalf("UsedPercent with no budget = %v, want 0", got)
	}
}

func TestNewSnapshot(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := stateOf(100, Expense{"a", 120})
	snap := NewSnapshot("sid", "budget_data.json", at, &s)

	if snap.SessionID != "sid" || snap.DataFile != "budget_data.json" || !snap.SavedAt.Equal(at) {
		t.Fatalf("snapshot identity = %+v", snap)
	}
	if snap.Balance != -20 || snap.Spent != 120 || snap.Count != 1 {
		t.Fatalf("snapshot figures = %+v", snap)
	}
}
