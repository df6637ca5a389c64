package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/vypis-dev/vypis/internal/model"
)

const dateFormat = "2006-01-02"

// WriteUnmatched prints the rows no rule matched, one per line, so the
// operator can extend the rules file.
func WriteUnmatched(w io.Writer, rows []model.UnmatchedRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "all rows matched a rule")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tAMOUNT\tCOUNTERPARTY")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Date.Format(dateFormat), r.Amount.StringFixed(2), r.Counterparty)
	}
	return tw.Flush()
}

// WriteSummary prints per-category expense totals, categories sorted,
// with a grand total last.
func WriteSummary(w io.Writer, summary map[string]decimal.Decimal, currency string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSPENT")

	total := decimal.Zero
	for _, category := range sortedCategories(summary) {
		amount := summary[category]
		total = total.Add(amount)
		fmt.Fprintf(tw, "%s\t%s %s\n", category, amount.StringFixed(2), currency)
	}
	fmt.Fprintf(tw, "TOTAL\t%s %s\n", total.StringFixed(2), currency)
	return tw.Flush()
}
