package statement

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/vypis-dev/vypis/internal/model"
	"github.com/vypis-dev/vypis/internal/rules"
)

// Statement is the in-memory transaction table built by Load. It is
// read-only after construction; reports never mutate it.
type Statement struct {
	rows []model.Transaction
}

// New wraps already-classified rows in a Statement.
func New(rows []model.Transaction) *Statement {
	return &Statement{rows: rows}
}

// Load builds a rule set from rulesPath, then parses the statement at
// statementPath. Rule-set problems surface as *rules.ConfigError and
// malformed rows as *FormatError; either aborts the load.
func Load(statementPath, rulesPath string, logger *log.Logger) (*Statement, error) {
	rs, err := rules.Load(rulesPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(statementPath)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	rows, err := Parse(f, rs, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("statement loaded", "rows", len(rows), "rules", rs.Len())
	return New(rows), nil
}

// Rows returns a copy of the table in source order.
func (s *Statement) Rows() []model.Transaction {
	rows := make([]model.Transaction, len(s.rows))
	copy(rows, s.rows)
	return rows
}

// UnmatchedRows returns the date, amount and counterparty of every row
// no rule matched, in source order. Used to surface rows that need new
// rules authored.
func (s *Statement) UnmatchedRows() []model.UnmatchedRow {
	var unmatched []model.UnmatchedRow
	for _, tx := range s.rows {
		if tx.Category != rules.UnknownCategory {
			continue
		}
		unmatched = append(unmatched, model.UnmatchedRow{
			Date:         tx.Date,
			Amount:       tx.Amount,
			Counterparty: tx.Counterparty,
		})
	}
	return unmatched
}

// ExpenseSummary sums the magnitudes of negative-amount rows per
// category. Positive rows are excluded.
func (s *Statement) ExpenseSummary() map[string]decimal.Decimal {
	summary := make(map[string]decimal.Decimal)
	for _, tx := range s.rows {
		if !tx.Amount.IsNegative() {
			continue
		}
		summary[tx.Category] = summary[tx.Category].Add(tx.Amount.Neg())
	}
	return summary
}
