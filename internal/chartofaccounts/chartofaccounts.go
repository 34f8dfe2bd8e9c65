package chartofaccounts

import (
	"time"
)

// Chart is a chart-of-accounts header. Headers are never edited after
// creation; a new import creates a new one unless it targets an existing
// chart explicitly.
type Chart struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

type Item struct {
	ID      int64
	ChartID int64
	ItemParams
}

// ItemParams is one account of the chart. Items are unique per
// (chart, AccountCode).
type ItemParams struct {
	AccountCode       string
	AccountName       string
	ReducedCode       *int
	GroupCode         *int
	AccountType       string
	UseInBalanceSheet bool
	AllowsSplit       bool
	Contra            bool
	ReferenceAccount  string
	Active            bool
	RegisteredAt      *time.Time
	EventCode         string
}

// Vigency binds a chart to a company for one year. At most one vigency is
// active per (company, year).
type Vigency struct {
	ID          int64
	CompanyID   int64
	CompanyName string
	ChartID     int64
	ChartName   string
	Year        int
	Active      bool
	User        string
	CreatedAt   time.Time
}

// VigencyStatus answers whether an import would replace an active vigency.
type VigencyStatus struct {
	Exists    bool   `json:"exists"`
	VigencyID *int64 `json:"vigencia_id"`
	ChartID   *int64 `json:"plano_contas_id"`
	CompanyID *int64 `json:"empresa_id"`
}
