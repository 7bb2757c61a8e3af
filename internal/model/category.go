// Package model defines the budget domain types: categories, scenarios,
// view modes, and the status tags derived from them.
package model

// CategoryStatus classifies actual spending against a budgeted amount.
type CategoryStatus string

const (
	// StatusNotSet means no spending has been recorded for the category.
	StatusNotSet CategoryStatus = "not_set"
	// StatusOverBudget means actual spending exceeds the budgeted amount.
	StatusOverBudget CategoryStatus = "over_budget"
	// StatusUnderBudget means actual spending is below the budgeted amount.
	StatusUnderBudget CategoryStatus = "under_budget"
	// StatusOnTarget means actual spending equals the budgeted amount.
	StatusOnTarget CategoryStatus = "on_target"
)

// Color returns the display color tag for this status.
func (s CategoryStatus) Color() string {
	switch s {
	case StatusNotSet:
		return "gray"
	case StatusOverBudget:
		return "red"
	case StatusUnderBudget:
		return "green"
	case StatusOnTarget:
		return "blue"
	default:
		return "gray"
	}
}

// Label returns the human-readable status text used in tables and exports.
func (s CategoryStatus) Label() string {
	switch s {
	case StatusNotSet:
		return "Not Set"
	case StatusOverBudget:
		return "Over Budget"
	case StatusUnderBudget:
		return "Under Budget"
	case StatusOnTarget:
		return "On Target"
	default:
		return string(s)
	}
}

// Category is a single budget line item. Amount is a dollar figure when
// FixedAmount is true and a percentage of income (0-100 scale) otherwise.
// Percentage is a display value only; for fixed categories it is recomputed
// from income and never authoritative.
type Category struct {
	Name        string
	Description string
	Amount      float64
	Percentage  float64
	FixedAmount bool
}

// BudgetedAmount returns the dollar amount budgeted for this category at
// the given income. Income may be zero or negative; a percentage category
// simply scales to zero or below with it.
func (c Category) BudgetedAmount(income float64) float64 {
	if c.FixedAmount {
		return c.Amount
	}
	return c.Amount / 100 * income
}

// EffectivePercentage returns the share of income this category occupies.
// Fixed categories report 0 when income is not positive to avoid dividing
// by zero; percentage categories return their amount unchanged.
func (c Category) EffectivePercentage(income float64) float64 {
	if c.FixedAmount {
		if income <= 0 {
			return 0
		}
		return c.Amount / income * 100
	}
	return c.Amount
}
