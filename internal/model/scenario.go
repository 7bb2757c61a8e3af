package model

import (
	"fmt"
	"sort"
)

// Scenario is a named, complete budgeting plan: a set of categories plus
// a default paycheck amount. Scenarios are immutable value objects;
// switching plans means selecting a different Scenario, never editing one.
type Scenario struct {
	Name            string
	Description     string
	Categories      map[string]Category
	DefaultPaycheck float64
}

// TotalFixedAmount sums the dollar amounts of all fixed categories.
func (s Scenario) TotalFixedAmount() float64 {
	var total float64
	for _, cat := range s.Categories {
		if cat.FixedAmount {
			total += cat.Amount
		}
	}
	return total
}

// TotalPercentage sums the percentage amounts of all percentage categories.
func (s Scenario) TotalPercentage() float64 {
	var total float64
	for _, cat := range s.Categories {
		if !cat.FixedAmount {
			total += cat.Amount
		}
	}
	return total
}

// TotalBudgeted sums the budgeted amounts of every category at the given
// income.
func (s Scenario) TotalBudgeted(income float64) float64 {
	var total float64
	for _, cat := range s.Categories {
		total += cat.BudgetedAmount(income)
	}
	return total
}

// Validate checks the scenario against a candidate paycheck and returns
// human-readable warnings. A non-positive paycheck short-circuits the
// remaining checks; otherwise every applicable warning is returned, since
// fixed-only, percentage-only, and combined overruns are independent
// signals.
func (s Scenario) Validate(paycheck float64) []string {
	var warnings []string

	if paycheck <= 0 {
		return append(warnings, "Paycheck amount must be positive")
	}

	if fixed := s.TotalFixedAmount(); fixed > paycheck {
		warnings = append(warnings,
			fmt.Sprintf("Fixed expenses ($%.2f) exceed paycheck ($%.2f)", fixed, paycheck))
	}

	if pct := s.TotalPercentage(); pct > 100 {
		warnings = append(warnings,
			fmt.Sprintf("Total percentages (%.1f%%) exceed 100%%", pct))
	}

	if budgeted := s.TotalBudgeted(paycheck); budgeted > paycheck {
		warnings = append(warnings,
			fmt.Sprintf("Total budget ($%.2f) exceeds paycheck ($%.2f)", budgeted, paycheck))
	}

	return warnings
}

// CategoryNames returns the scenario's category names sorted
// alphabetically. Map order is irrelevant to calculation but display and
// export need a stable order.
func (s Scenario) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
