package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgeteer/internal/model"
)

func testScenario() model.Scenario {
	return model.Scenario{
		Name: "test",
		Categories: map[string]model.Category{
			"HOA":       {Name: "HOA", Amount: 1078.81, FixedAmount: true, Description: "Housing association fees"},
			"Roth IRA":  {Name: "Roth IRA", Amount: 8.4, Description: "Retirement savings"},
			"Groceries": {Name: "Groceries", Amount: 7.5, Description: "Food and household items"},
		},
		DefaultPaycheck: 4000,
	}
}

func TestComputeCategoryResults(t *testing.T) {
	tests := []struct {
		name       string
		paycheck   float64
		actual     map[string]float64
		category   string
		wantBudget float64
		wantDiff   float64
		wantStatus model.CategoryStatus
		wantColor  string
	}{
		{
			name:       "fixed category spent exactly on target",
			paycheck:   4000,
			actual:     map[string]float64{"HOA": 1078.81},
			category:   "HOA",
			wantBudget: 1078.81,
			wantDiff:   0,
			wantStatus: model.StatusOnTarget,
			wantColor:  "blue",
		},
		{
			name:       "zero actual is not set even though under budget",
			paycheck:   4000,
			actual:     map[string]float64{},
			category:   "Roth IRA",
			wantBudget: 336.00,
			wantDiff:   336.00,
			wantStatus: model.StatusNotSet,
			wantColor:  "gray",
		},
		{
			name:       "overspent percentage category",
			paycheck:   2000,
			actual:     map[string]float64{"Groceries": 200},
			category:   "Groceries",
			wantBudget: 150.00,
			wantDiff:   -50.00,
			wantStatus: model.StatusOverBudget,
			wantColor:  "red",
		},
		{
			name:       "underspent fixed category",
			paycheck:   4000,
			actual:     map[string]float64{"HOA": 1000},
			category:   "HOA",
			wantBudget: 1078.81,
			wantDiff:   78.81,
			wantStatus: model.StatusUnderBudget,
			wantColor:  "green",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := ComputeCategoryResults(testScenario(), tt.paycheck, tt.actual)

			r, ok := results[tt.category]
			require.True(t, ok, "missing result for %q", tt.category)

			assert.InDelta(t, tt.wantBudget, r.Budgeted, 1e-9)
			assert.InDelta(t, tt.wantDiff, r.Difference, 1e-9)
			assert.Equal(t, tt.wantStatus, r.Status)
			assert.Equal(t, tt.wantColor, r.Color)
		})
	}
}

func TestComputeCategoryResults_CoversAllCategories(t *testing.T) {
	scenario := testScenario()
	results := ComputeCategoryResults(scenario, 4000, nil)

	require.Len(t, results, len(scenario.Categories))
	for name, r := range results {
		assert.Equal(t, name, r.Name)
		assert.Equal(t, model.StatusNotSet, r.Status, "nil spending map should mean everything is not set")
		assert.Zero(t, r.Actual)
	}
}

func TestComputeCategoryResults_IgnoresUnknownCategories(t *testing.T) {
	results := ComputeCategoryResults(testScenario(), 4000, map[string]float64{
		"Groceries":     100,
		"Jet Ski Fund":  9999,
		"Temporal Rift": -1,
	})

	require.Len(t, results, 3)
	_, ok := results["Jet Ski Fund"]
	assert.False(t, ok)
}

func TestComputeCategoryResults_Passthrough(t *testing.T) {
	results := ComputeCategoryResults(testScenario(), 4000, nil)

	hoa := results["HOA"]
	assert.True(t, hoa.FixedAmount)
	assert.Equal(t, "Housing association fees", hoa.Description)

	ira := results["Roth IRA"]
	assert.False(t, ira.FixedAmount)
	assert.Equal(t, "Retirement savings", ira.Description)
}

// Difference and status hold their contract for every category: difference
// is exactly budgeted − actual, and not-set wins regardless of sign.
func TestComputeCategoryResults_DifferenceInvariant(t *testing.T) {
	actual := map[string]float64{"HOA": 1100, "Groceries": 12.34}
	results := ComputeCategoryResults(testScenario(), 3984.94, actual)

	for name, r := range results {
		assert.InDelta(t, r.Budgeted-r.Actual, r.Difference, 1e-9, "category %s", name)
		if r.Actual == 0 {
			assert.Equal(t, model.StatusNotSet, r.Status, "category %s", name)
		} else {
			assert.NotEqual(t, model.StatusNotSet, r.Status, "category %s", name)
		}
	}
}

func TestComputeCategoryResults_ZeroPaycheck(t *testing.T) {
	results := ComputeCategoryResults(testScenario(), 0, map[string]float64{"Groceries": 50})

	groceries := results["Groceries"]
	assert.Zero(t, groceries.Budgeted, "percentage category at zero income budgets zero")
	assert.Equal(t, model.StatusOverBudget, groceries.Status)

	hoa := results["HOA"]
	assert.InDelta(t, 1078.81, hoa.Budgeted, 1e-9, "fixed category keeps its amount")
	assert.Zero(t, hoa.Percentage, "fixed category reports 0% at zero income")
}

func TestComputeSummary_BudgetedBasis(t *testing.T) {
	results := map[string]CategoryResult{
		"a": {Name: "a", Budgeted: 100, Actual: 90},
		"b": {Name: "b", Budgeted: 200, Actual: 210},
		"c": {Name: "c", Budgeted: 300, Actual: 300},
	}

	summary := ComputeSummary(results, 4000, 0, model.ViewModeFirstPaycheck, BasisBudgeted)

	assert.InDelta(t, 600, summary.TotalBudgeted, 1e-9)
	assert.InDelta(t, 600, summary.TotalSpent, 1e-9)
	assert.InDelta(t, 0, summary.Remaining, 1e-9)
	assert.InDelta(t, 0, summary.OverUnder, 1e-9)
	assert.Equal(t, SummaryOnTarget, summary.Status)
	assert.Equal(t, "blue", summary.Color)
}

func TestComputeSummary_OverAndUnder(t *testing.T) {
	tests := []struct {
		name          string
		actual        float64
		wantStatus    SummaryStatus
		wantColor     string
		wantOverUnder float64
	}{
		{"overspent", 150, SummaryOver, "red", 50},
		{"underspent", 60, SummaryUnder, "green", 40},
		{"exact", 100, SummaryOnTarget, "blue", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := map[string]CategoryResult{
				"only": {Name: "only", Budgeted: 100, Actual: tt.actual},
			}

			summary := ComputeSummary(results, 1000, 0, model.ViewModeFirstPaycheck, BasisBudgeted)

			assert.Equal(t, tt.wantStatus, summary.Status)
			assert.Equal(t, tt.wantColor, summary.Color)
			// OverUnder is always reported as a magnitude; the status
			// label carries the sign.
			assert.InDelta(t, tt.wantOverUnder, summary.OverUnder, 1e-9)
			assert.GreaterOrEqual(t, summary.OverUnder, 0.0)
		})
	}
}

func TestComputeSummary_IncomeBasis(t *testing.T) {
	results := map[string]CategoryResult{
		"a": {Name: "a", Budgeted: 500, Actual: 900},
	}

	tests := []struct {
		name          string
		mode          model.ViewMode
		wantRemaining float64
		wantStatus    SummaryStatus
	}{
		{"monthly combines both paychecks", model.ViewModeMonthly, 1100, SummaryUnder},
		{"first paycheck only", model.ViewModeFirstPaycheck, 100, SummaryUnder},
		{"second paycheck only", model.ViewModeSecondPaycheck, 100, SummaryUnder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ComputeSummary(results, 1000, 1000, tt.mode, BasisIncome)

			assert.InDelta(t, tt.wantRemaining, summary.Remaining, 1e-9)
			assert.Equal(t, tt.wantStatus, summary.Status)
		})
	}
}

func TestComputeSummary_Utilization(t *testing.T) {
	results := map[string]CategoryResult{
		"a": {Name: "a", Budgeted: 500, Actual: 1000},
	}

	summary := ComputeSummary(results, 2000, 2000, model.ViewModeMonthly, BasisIncome)
	assert.InDelta(t, 25, summary.Utilization, 1e-9)

	zeroIncome := ComputeSummary(results, 0, 0, model.ViewModeMonthly, BasisIncome)
	assert.Zero(t, zeroIncome.Utilization, "zero income degrades to zero utilization")
}

// Identical inputs must produce identical outputs: the engine holds no
// hidden state.
func TestComputeSummary_Idempotent(t *testing.T) {
	scenario := testScenario()
	actual := map[string]float64{"HOA": 1078.81, "Groceries": 123.45}

	first := ComputeSummary(ComputeCategoryResults(scenario, 3984.94, actual), 3984.94, 0, model.ViewModeFirstPaycheck, BasisBudgeted)
	second := ComputeSummary(ComputeCategoryResults(scenario, 3984.94, actual), 3984.94, 0, model.ViewModeFirstPaycheck, BasisBudgeted)

	assert.Equal(t, first, second)
}

// Summary totals equal the sum of per-category values for the builtin
// scenarios across a range of paychecks.
func TestComputeSummary_TotalsMatchCategories(t *testing.T) {
	for name, scenario := range model.BuiltinScenarios() {
		for _, paycheck := range []float64{0, 1000, 3984.94, 10000} {
			results := ComputeCategoryResults(scenario, paycheck, nil)

			var want float64
			for _, r := range results {
				want += r.Budgeted
			}

			summary := ComputeSummary(results, paycheck, 0, model.ViewModeFirstPaycheck, BasisBudgeted)
			assert.InDelta(t, want, summary.TotalBudgeted, 1e-9, "scenario %s paycheck %v", name, paycheck)
		}
	}
}
