// Package report renders the spending reports: text listings for the
// terminal and a pie-chart PNG for the expense breakdown.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
)

// RenderExpensePie draws one slice per category, labeled with the
// whole-unit amount, and writes the chart as a PNG. Slices are ordered
// by category name so output is deterministic.
func RenderExpensePie(w io.Writer, summary map[string]decimal.Decimal, currency string) error {
	if len(summary) == 0 {
		return fmt.Errorf("no expenses to chart")
	}

	categories := sortedCategories(summary)
	values := make([]chart.Value, 0, len(categories))
	for _, category := range categories {
		amount := summary[category]
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %s %s", category, amount.Round(0).StringFixed(0), currency),
			Value: amount.InexactFloat64(),
		})
	}

	pie := chart.PieChart{
		Width:  800,
		Height: 800,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering pie chart: %w", err)
	}
	return nil
}

func sortedCategories(summary map[string]decimal.Decimal) []string {
	categories := make([]string, 0, len(summary))
	for category := range summary {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
