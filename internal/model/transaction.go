package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one parsed statement row.
type Transaction struct {
	DueDate      time.Time
	Date         time.Time       // transaction date; falls back to DueDate when blank in the export
	Amount       decimal.Decimal // negative = expense, positive = income
	Counterparty string
	Name         string // derived from the rule set
	Category     string // derived from the rule set
}

// UnmatchedRow is the projection reported for rows no rule matched.
type UnmatchedRow struct {
	Date         time.Time
	Amount       decimal.Decimal
	Counterparty string
}
