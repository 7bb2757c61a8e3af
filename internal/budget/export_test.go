package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgeteer/internal/model"
)

func TestFlatHeader(t *testing.T) {
	assert.Equal(t, []string{
		"View Mode", "First Paycheck", "Second Paycheck", "Scenario",
		"Category", "Percentage", "Budgeted Amount", "Actual Spent",
		"Difference", "Status",
	}, FlatHeader())
}

func TestFlatRows(t *testing.T) {
	scenario := testScenario()
	results := ComputeCategoryResults(scenario, 4000, map[string]float64{
		"Groceries": 250,
		"HOA":       1078.81,
	})

	rows := FlatRows(scenario.Name, results, model.ViewModeMonthly, 4000, 0)

	require.Len(t, rows, 3)
	for _, row := range rows {
		require.Len(t, row, len(FlatHeader()))
		assert.Equal(t, "Monthly", row[0])
		assert.Equal(t, "4000.00", row[1])
		assert.Equal(t, "0.00", row[2])
		assert.Equal(t, "test", row[3])
	}

	// Rows come out in alphabetical category order.
	assert.Equal(t, "Groceries", rows[0][4])
	assert.Equal(t, "HOA", rows[1][4])
	assert.Equal(t, "Roth IRA", rows[2][4])

	groceries := rows[0]
	assert.Equal(t, "7.5%", groceries[5])
	assert.Equal(t, "300.00", groceries[6])
	assert.Equal(t, "250.00", groceries[7])
	assert.Equal(t, "50.00", groceries[8])
	assert.Equal(t, "Under Budget", groceries[9])

	hoa := rows[1]
	assert.Equal(t, "1078.81", hoa[6])
	assert.Equal(t, "On Target", hoa[9])

	ira := rows[2]
	assert.Equal(t, "Not Set", ira[9])
}

func TestFlatRows_Empty(t *testing.T) {
	rows := FlatRows("empty", nil, model.ViewModeMonthly, 0, 0)
	assert.Empty(t, rows)
}
