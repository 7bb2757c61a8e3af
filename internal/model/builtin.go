package model

import "sort"

// DefaultScenarioName is the plan selected when none is specified.
const DefaultScenarioName = "July-December 2025"

// BuiltinScenarios returns the predefined budgeting plans. The result is
// freshly built on every call so callers can never mutate the shared
// definitions.
func BuiltinScenarios() map[string]Scenario {
	scenarios := make(map[string]Scenario, 3)

	scenarios["July-December 2025"] = Scenario{
		Name:            "July-December 2025",
		Description:     "Current year budget plan",
		DefaultPaycheck: 3984.94,
		Categories: categoryMap(
			pctCategory("Roth IRA", 8.4, "Retirement savings"),
			pctCategory("General Savings", 19.3, "Emergency fund"),
			pctCategory("Vacation Fund", 12.5, "Travel savings"),
			fixedCategory("HOA", 1078.81, 27.1, "Housing association fees"),
			fixedCategory("Utilities", 60.00, 1.5, "Water, electric, gas"),
			fixedCategory("Subscriptions", 90.00, 2.3, "Netflix, Spotify, etc."),
			pctCategory("Groceries", 7.5, "Food and household items"),
			pctCategory("Uber/Lyft", 1.3, "Transportation"),
			fixedCategory("Therapy", 44.00, 1.1, "Mental health"),
			pctCategory("Dining/Entertainment", 3.8, "Fun activities"),
			pctCategory("Flex/Buffer", 16.5, "Flexible spending"),
		),
	}

	scenarios["Fresh New Year (Jan-May)"] = Scenario{
		Name:            "Fresh New Year (Jan-May)",
		Description:     "High IRA contribution period",
		DefaultPaycheck: 3984.94,
		Categories: categoryMap(
			pctCategory("Roth IRA", 35.2, "Max out early"),
			pctCategory("General Savings", 6.3, "Emergency fund"),
			pctCategory("Vacation Fund", 1.3, "Travel savings"),
			fixedCategory("HOA", 1078.81, 27.1, "Housing association fees"),
			fixedCategory("Utilities", 60.00, 1.5, "Water, electric, gas"),
			fixedCategory("Subscriptions", 90.00, 2.3, "Netflix, Spotify, etc."),
			pctCategory("Groceries", 7.5, "Food and household items"),
			pctCategory("Uber/Lyft", 1.3, "Transportation"),
			pctCategory("Dining/Entertainment", 3.8, "Fun activities"),
			fixedCategory("Therapy", 44.00, 1.1, "Mental health"),
			pctCategory("Flex/Buffer", 2.3, "Flexible spending"),
		),
	}

	scenarios["Fresh New Year (June-Dec)"] = Scenario{
		Name:            "Fresh New Year (June-Dec)",
		Description:     "Post-IRA max-out period",
		DefaultPaycheck: 3984.94,
		Categories: categoryMap(
			pctCategory("Roth IRA", 0.0, "Already maxed out"),
			pctCategory("General Savings", 20.9, "Emergency fund"),
			pctCategory("Vacation Fund", 7.5, "Travel savings"),
			fixedCategory("HOA", 1078.81, 27.1, "Housing association fees"),
			fixedCategory("Utilities", 60.00, 1.5, "Water, electric, gas"),
			fixedCategory("Subscriptions", 90.00, 2.3, "Netflix, Spotify, etc."),
			pctCategory("Groceries", 7.5, "Food and household items"),
			pctCategory("Uber/Lyft", 1.3, "Transportation"),
			pctCategory("Dining/Entertainment", 3.8, "Fun activities"),
			fixedCategory("Therapy", 44.00, 1.1, "Mental health"),
			pctCategory("Flex/Buffer", 21.5, "Flexible spending"),
		),
	}

	return scenarios
}

// ScenarioNames returns the builtin scenario names sorted alphabetically.
func ScenarioNames() []string {
	scenarios := BuiltinScenarios()
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fixedCategory(name string, amount, displayPct float64, description string) Category {
	return Category{
		Name:        name,
		Amount:      amount,
		Percentage:  displayPct,
		FixedAmount: true,
		Description: description,
	}
}

func pctCategory(name string, pct float64, description string) Category {
	return Category{
		Name:        name,
		Amount:      pct,
		Percentage:  pct,
		Description: description,
	}
}

func categoryMap(categories ...Category) map[string]Category {
	m := make(map[string]Category, len(categories))
	for _, cat := range categories {
		m[cat.Name] = cat
	}
	return m
}
