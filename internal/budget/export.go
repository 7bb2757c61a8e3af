package budget

import (
	"fmt"
	"sort"

	"budgeteer/internal/model"
)

// FlatHeader returns the header row for tabular exports. Column order is
// fixed and must match FlatRows.
func FlatHeader() []string {
	return []string{
		"View Mode",
		"First Paycheck",
		"Second Paycheck",
		"Scenario",
		"Category",
		"Percentage",
		"Budgeted Amount",
		"Actual Spent",
		"Difference",
		"Status",
	}
}

// FlatRows projects category results into flat records for tabular
// export, one row per category in alphabetical order. Pure formatting;
// no calculation happens here.
func FlatRows(scenarioName string, results map[string]CategoryResult, mode model.ViewMode, first, second float64) [][]string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(results))
	for _, name := range names {
		r := results[name]
		rows = append(rows, []string{
			string(mode),
			fmt.Sprintf("%.2f", first),
			fmt.Sprintf("%.2f", second),
			scenarioName,
			r.Name,
			fmt.Sprintf("%.1f%%", r.Percentage),
			fmt.Sprintf("%.2f", r.Budgeted),
			fmt.Sprintf("%.2f", r.Actual),
			fmt.Sprintf("%.2f", r.Difference),
			r.Status.Label(),
		})
	}

	return rows
}
