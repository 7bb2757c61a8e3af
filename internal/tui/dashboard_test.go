package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"budgeteer/internal/budget"
	"budgeteer/internal/model"
)

func TestBuildRows(t *testing.T) {
	scenario := model.Scenario{
		Name: "test",
		Categories: map[string]model.Category{
			"Rent":      {Name: "Rent", Amount: 1000, FixedAmount: true},
			"Groceries": {Name: "Groceries", Amount: 10},
		},
	}

	results := budget.ComputeCategoryResults(scenario, 4000, map[string]float64{
		"Groceries": 450,
	})

	rows := buildRows("$", results)
	assert.Len(t, rows, 2)

	// Alphabetical order.
	assert.Equal(t, "Groceries", rows[0][0])
	assert.Equal(t, "Rent", rows[1][0])

	assert.Equal(t, "$400.00", rows[0][2])
	assert.Equal(t, "$450.00", rows[0][3])
	assert.Equal(t, "-$50.00", rows[0][4])
	assert.Equal(t, "Over Budget", rows[0][5])

	assert.Equal(t, "$1000.00", rows[1][2])
	assert.Equal(t, "Not Set", rows[1][5])
}
