// Package budget computes per-category results and aggregate summaries
// for a scenario. Every function here is pure: the same inputs always
// produce the same outputs, and no numeric edge case raises an error.
package budget

import "budgeteer/internal/model"

// SummaryStatus classifies total spending against the comparison basis.
type SummaryStatus string

const (
	// SummaryOver means total spending exceeds the basis.
	SummaryOver SummaryStatus = "OVER"
	// SummaryUnder means total spending is below the basis.
	SummaryUnder SummaryStatus = "UNDER"
	// SummaryOnTarget means total spending equals the basis.
	SummaryOnTarget SummaryStatus = "ON TARGET"
)

// Color returns the display color tag for this status.
func (s SummaryStatus) Color() string {
	switch s {
	case SummaryOver:
		return "red"
	case SummaryUnder:
		return "green"
	case SummaryOnTarget:
		return "blue"
	default:
		return "gray"
	}
}

// Basis selects what the summary's over/under figure compares against.
type Basis string

const (
	// BasisBudgeted compares total spending against the total budgeted
	// amount.
	BasisBudgeted Basis = "budgeted"
	// BasisIncome compares total spending against the view mode's income.
	BasisIncome Basis = "income"
)

// CategoryResult is the computed state of one category at a given income.
// Ephemeral: recomputed on every request, never persisted.
type CategoryResult struct {
	Name        string
	Description string
	Percentage  float64
	Budgeted    float64
	Actual      float64
	Difference  float64
	Status      model.CategoryStatus
	Color       string
	FixedAmount bool
}

// Summary aggregates category results into totals. OverUnder is reported
// as an absolute value; the sign lives in Status. Note the deliberate
// asymmetry with CategoryResult.Difference (budgeted − actual, positive =
// under): OverUnder is spent − basis, positive = over. Downstream
// color-coding depends on both conventions.
type Summary struct {
	TotalBudgeted float64
	TotalSpent    float64
	Remaining     float64
	OverUnder     float64
	Status        SummaryStatus
	Color         string
	Utilization   float64
}

// ComputeCategoryResults computes a result for every category defined in
// the scenario. Missing actual-spending entries count as zero; entries
// for names the scenario does not define are ignored.
func ComputeCategoryResults(scenario model.Scenario, paycheck float64, actual map[string]float64) map[string]CategoryResult {
	results := make(map[string]CategoryResult, len(scenario.Categories))

	for name, cat := range scenario.Categories {
		spent := actual[name]
		budgeted := cat.BudgetedAmount(paycheck)
		difference := budgeted - spent

		results[name] = CategoryResult{
			Name:        name,
			Description: cat.Description,
			Percentage:  cat.EffectivePercentage(paycheck),
			Budgeted:    budgeted,
			Actual:      spent,
			Difference:  difference,
			Status:      categoryStatus(spent, difference),
			Color:       categoryStatus(spent, difference).Color(),
			FixedAmount: cat.FixedAmount,
		}
	}

	return results
}

// categoryStatus applies the status tie-break order. Zero actual wins over
// everything else: a category nobody has spent against is "not set" even
// when its budgeted amount is also zero.
func categoryStatus(actual, difference float64) model.CategoryStatus {
	switch {
	case actual == 0:
		return model.StatusNotSet
	case difference < 0:
		return model.StatusOverBudget
	case difference > 0:
		return model.StatusUnderBudget
	default:
		return model.StatusOnTarget
	}
}

// ComputeSummary reduces category results into a Summary. The basis
// selects budgeted-relative or income-relative comparison; in the latter
// case the view mode picks which paycheck combination counts as income.
func ComputeSummary(results map[string]CategoryResult, first, second float64, mode model.ViewMode, basis Basis) Summary {
	var totalBudgeted, totalSpent float64
	for _, r := range results {
		totalBudgeted += r.Budgeted
		totalSpent += r.Actual
	}

	income := mode.Income(first, second)

	var remaining, overUnder float64
	if basis == BasisIncome {
		remaining = income - totalSpent
		overUnder = totalSpent - income
	} else {
		remaining = totalBudgeted - totalSpent
		overUnder = totalSpent - totalBudgeted
	}

	var status SummaryStatus
	switch {
	case overUnder > 0:
		status = SummaryOver
	case overUnder < 0:
		status = SummaryUnder
		overUnder = -overUnder // sign is encoded in the status label
	default:
		status = SummaryOnTarget
	}

	var utilization float64
	if income > 0 {
		utilization = totalSpent / income * 100
	}

	return Summary{
		TotalBudgeted: totalBudgeted,
		TotalSpent:    totalSpent,
		Remaining:     remaining,
		OverUnder:     overUnder,
		Status:        status,
		Color:         status.Color(),
		Utilization:   utilization,
	}
}
