package model

import "time"

// Summary holds the headline figures for a budget state.
type Summary struct {
	Budget      float64
	Spent       float64
	Balance     float64
	UsedPercent float64 // 0-1, 0 when no budget is set
	Count       int
}

// Summarize computes the headline figures of s.
func Summarize(s *BudgetState) Summary {
	sum := Summary{
		Budget:  s.Budget,
		Spent:   s.TotalSpent(),
		Balance: s.Balance(),
		Count:   s.Len(),
	}
	if s.Budget > 0 {
		sum.UsedPercent = sum.Spent / s.Budget
	}
	return sum
}

// Snapshot is one recorded save of a budget state.
type Snapshot struct {
	ID        int64
	SessionID string
	DataFile  string
	SavedAt   time.Time
	Budget    float64
	Spent     float64
	Balance   float64
	Count     int
}

// NewSnapshot captures s as saved by sessionID to dataFile at savedAt.
func NewSnapshot(sessionID, dataFile string, savedAt time.Time, s *BudgetState) Snapshot {
	sum := Summarize(s)
	return Snapshot{
		SessionID: sessionID,
		DataFile:  dataFile,
		SavedAt:   savedAt,
		Budget:    sum.Budget,
		Spent:     sum.Spent,
		Balance:   sum.Balance,
		Count:     sum.Count,
	}
}
