package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"budgeteer/internal/tui"
)

func dashboardCmd() *cobra.Command {
	var scenarioName string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive budget dashboard",
		Long: `Full-screen dashboard showing every category's budgeted and actual
amounts. Edit spending and paychecks in place; changes are saved
automatically.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := newAppContext()
			if err != nil {
				return err
			}

			scenario, err := findScenario(scenarioName)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx, app.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			data, err := store.LoadScenarioData(ctx, scenario.Name)
			if err != nil {
				return fmt.Errorf("failed to load scenario data: %w", err)
			}

			model := tui.NewDashboard(store, app.styles, app.cfg.CurrencySymbol, scenario, data)
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("dashboard error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario name (default: current plan)")

	return cmd
}
