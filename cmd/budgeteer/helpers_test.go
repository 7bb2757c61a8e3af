package main

import (
	"errors"
	"testing"

	"budgeteer/internal/common"
	"budgeteer/internal/model"
)

func TestFindScenario(t *testing.T) {
	scenario, err := findScenario("")
	if err != nil {
		t.Fatalf("default scenario lookup failed: %v", err)
	}
	if scenario.Name != model.DefaultScenarioName {
		t.Errorf("expected default scenario %q, got %q", model.DefaultScenarioName, scenario.Name)
	}

	scenario, err = findScenario("Fresh New Year (Jan-May)")
	if err != nil {
		t.Fatalf("named scenario lookup failed: %v", err)
	}
	if scenario.Name != "Fresh New Year (Jan-May)" {
		t.Errorf("got wrong scenario %q", scenario.Name)
	}

	_, err = findScenario("No Such Plan")
	if !errors.Is(err, common.ErrUnknownScenario) {
		t.Errorf("expected ErrUnknownScenario, got %v", err)
	}
}

func TestRequireCategory(t *testing.T) {
	scenario, err := findScenario("")
	if err != nil {
		t.Fatal(err)
	}

	if err := requireCategory(scenario, "Groceries"); err != nil {
		t.Errorf("known category rejected: %v", err)
	}

	err = requireCategory(scenario, "Yachts")
	if !errors.Is(err, common.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}
