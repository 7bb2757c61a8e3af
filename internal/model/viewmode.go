package model

import (
	"fmt"
	"strings"
)

// ViewMode selects which income basis a calculation compares against:
// a single paycheck or the combined monthly income.
type ViewMode string

const (
	// ViewModeMonthly compares against both paychecks combined.
	ViewModeMonthly ViewMode = "Monthly"
	// ViewModeFirstPaycheck compares against the first paycheck only.
	ViewModeFirstPaycheck ViewMode = "First Paycheck"
	// ViewModeSecondPaycheck compares against the second paycheck only.
	ViewModeSecondPaycheck ViewMode = "Second Paycheck"
)

// ViewModes lists all valid view modes in display order.
func ViewModes() []ViewMode {
	return []ViewMode{ViewModeMonthly, ViewModeFirstPaycheck, ViewModeSecondPaycheck}
}

// ParseViewMode converts a user-supplied string into a ViewMode.
// Unknown values are rejected rather than silently defaulted.
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month":
		return ViewModeMonthly, nil
	case "first", "first-paycheck", "first paycheck":
		return ViewModeFirstPaycheck, nil
	case "second", "second-paycheck", "second paycheck":
		return ViewModeSecondPaycheck, nil
	default:
		return "", fmt.Errorf("unknown view mode %q (expected monthly, first, or second)", s)
	}
}

// Income returns the income basis for this view mode given the two
// paycheck amounts.
func (m ViewMode) Income(first, second float64) float64 {
	switch m {
	case ViewModeMonthly:
		return first + second
	case ViewModeFirstPaycheck:
		return first
	case ViewModeSecondPaycheck:
		return second
	default:
		return first + second
	}
}

// Next cycles to the following view mode, wrapping around. Used by the
// dashboard's mode toggle.
func (m ViewMode) Next() ViewMode {
	modes := ViewModes()
	for i, mode := range modes {
		if mode == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return ViewModeMonthly
}
