package main

import (
	"context"
	"fmt"

	"budgeteer/internal/cli"
	"budgeteer/internal/common"
	"budgeteer/internal/config"
	"budgeteer/internal/model"
	"budgeteer/internal/service"
	"budgeteer/internal/storage"
)

// appContext bundles the pieces nearly every command needs.
type appContext struct {
	cfg    *config.App
	styles *cli.Styles
}

func newAppContext() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &appContext{
		cfg:    cfg,
		styles: cli.NewStyles(cfg.Theme),
	}, nil
}

// initStorage opens the database and runs migrations.
func initStorage(ctx context.Context, cfg *config.App) (service.Storage, error) {
	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// findScenario resolves a scenario by name. An empty name selects the
// default scenario.
func findScenario(name string) (model.Scenario, error) {
	if name == "" {
		name = model.DefaultScenarioName
	}

	scenario, ok := model.BuiltinScenarios()[name]
	if !ok {
		return model.Scenario{}, fmt.Errorf("%w: %q (run 'budgeteer scenarios list')", common.ErrUnknownScenario, name)
	}
	return scenario, nil
}

// loadScenarioState returns the persisted paychecks and spending for a
// scenario, falling back to the scenario's default paycheck when nothing
// has been saved yet.
func loadScenarioState(ctx context.Context, store service.Storage, scenario model.Scenario) (first, second float64, spending map[string]float64, err error) {
	data, err := store.LoadScenarioData(ctx, scenario.Name)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to load scenario data: %w", err)
	}

	first = scenario.DefaultPaycheck
	spending = make(map[string]float64)
	if data != nil {
		if data.FirstPaycheck > 0 {
			first = data.FirstPaycheck
		}
		second = data.SecondPaycheck
		for k, v := range data.Spending {
			spending[k] = v
		}
	}
	return first, second, spending, nil
}

// requireCategory checks that a category exists in the scenario before a
// write touches it, so typos do not create orphan spending rows.
func requireCategory(scenario model.Scenario, name string) error {
	if _, ok := scenario.Categories[name]; !ok {
		return fmt.Errorf("%w: %q in scenario %q", common.ErrUnknownCategory, name, scenario.Name)
	}
	return nil
}
