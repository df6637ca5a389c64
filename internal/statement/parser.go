// Package statement parses one bank's CSV statement export and holds
// the resulting transaction table in memory. The export format is
// fixed by the bank: Windows-1250 encoded, semicolon separated, with a
// 17-line preamble, a column-name row, and the fields of interest at
// fixed positions.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/vypis-dev/vypis/internal/model"
	"github.com/vypis-dev/vypis/internal/rules"
)

const (
	preambleLines = 17
	dateFormat    = "02.01.2006"
	dateLen       = 10

	colDueDate      = 0
	colAmount       = 4
	colCounterparty = 15
	colDate         = 18
)

// blankDate is the export's placeholder for a missing transaction
// date. The comparison is against exactly ten spaces, matching the
// format's behavior literally.
var blankDate = strings.Repeat(" ", dateLen)

// FormatError reports a statement row that does not conform to the
// export format. A single bad row fails the whole load.
type FormatError struct {
	Line int // 1-based line in the source file
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("statement line %d: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Parse decodes and parses a statement export, classifying every row
// with the given rule set.
func Parse(r io.Reader, rs *rules.Set, logger *log.Logger) ([]model.Transaction, error) {
	decoded, err := io.ReadAll(charmap.Windows1250.NewDecoder().Reader(r))
	if err != nil {
		return nil, fmt.Errorf("decoding statement: %w", err)
	}

	lines := strings.Split(string(decoded), "\n")
	if len(lines) <= preambleLines {
		logger.Debug("statement shorter than preamble", "lines", len(lines))
		return nil, nil
	}

	cr := csv.NewReader(strings.NewReader(strings.Join(lines[preambleLines:], "\n")))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) <= 1 {
		// Only the column-name row (or nothing) after the preamble.
		return nil, nil
	}

	// records[0] is the column-name row; data starts after it.
	txs := make([]model.Transaction, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := preambleLines + 2 + i
		tx, err := parseRow(rec)
		if err != nil {
			return nil, &FormatError{Line: line, Err: err}
		}
		tx.Name, tx.Category = rs.Classify(tx.Counterparty)
		logger.Debug("parsed row",
			"line", line,
			"date", tx.Date.Format("2006-01-02"),
			"amount", tx.Amount,
			"counterparty", tx.Counterparty,
			"category", tx.Category)
		txs = append(txs, tx)
	}
	return txs, nil
}

func parseRow(rec []string) (model.Transaction, error) {
	if len(rec) <= colDate {
		return model.Transaction{}, fmt.Errorf("expected at least %d fields, got %d", colDate+1, len(rec))
	}

	dueRaw := rec[colDueDate]
	due, err := time.Parse(dateFormat, dueRaw)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing due date %q: %w", dueRaw, err)
	}

	// The transaction-date field may carry a time-of-day suffix; only
	// the first ten characters are the date.
	dateRaw := rec[colDate]
	if len(dateRaw) > dateLen {
		dateRaw = dateRaw[:dateLen]
	}
	if dateRaw == blankDate {
		dateRaw = dueRaw
	}
	date, err := time.Parse(dateFormat, dateRaw)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", dateRaw, err)
	}

	amountRaw := strings.ReplaceAll(rec[colAmount], ",", ".")
	amount, err := decimal.NewFromString(amountRaw)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	return model.Transaction{
		DueDate:      due,
		Date:         date,
		Amount:       amount,
		Counterparty: rec[colCounterparty],
	}, nil
}
