package trialbalance

import (
	"time"
)

// Batch is the header of one imported trial balance. There is at most one
// batch per (company, month, year).
type Batch struct {
	ID          int64
	CompanyID   int64
	CompanyName string
	Month       int
	Year        int
	User        string
	ImportedAt  time.Time
	ItemCount   int
}

type Item struct {
	ID      int64
	BatchID int64
	ItemParams
}

// ItemParams is one account line as read from the file. Balances are already
// sign-adjusted; debit and credit totals are stored as printed.
type ItemParams struct {
	AccountCode    string
	AccountName    string
	ReducedCode    *int
	PriorBalance   float64
	Debit          float64
	Credit         float64
	CurrentBalance float64
	CostCenterCode *int
	CostCenterName *string
}

// HasMovement reports whether any of the four monetary fields is non-zero.
func (p ItemParams) HasMovement() bool {
	return p.PriorBalance != 0 || p.Debit != 0 || p.Credit != 0 || p.CurrentBalance != 0
}
