package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"budgeteer/internal/budget"
	"budgeteer/internal/cli"
	"budgeteer/internal/model"
	"budgeteer/internal/service"
	"budgeteer/internal/sheets"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export budget reports",
	}

	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(exportSheetsCmd())

	return cmd
}

func exportCSVCmd() *cobra.Command {
	var (
		scenarioName string
		output       string
		viewFlag     string
		allScenarios bool
	)

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export the budget report as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := newAppContext()
			if err != nil {
				return err
			}

			mode, err := model.ParseViewMode(viewFlag)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx, app.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			var scenarios []model.Scenario
			if allScenarios {
				all := model.BuiltinScenarios()
				for _, name := range model.ScenarioNames() {
					scenarios = append(scenarios, all[name])
				}
			} else {
				scenario, err := findScenario(scenarioName)
				if err != nil {
					return err
				}
				scenarios = append(scenarios, scenario)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()

			writer := csv.NewWriter(f)
			if err := writer.Write(budget.FlatHeader()); err != nil {
				return fmt.Errorf("failed to write header: %w", err)
			}

			var bar *progressbar.ProgressBar
			if allScenarios {
				bar = progressbar.Default(int64(len(scenarios)), "exporting scenarios")
			}

			rowCount := 0
			for _, scenario := range scenarios {
				rows, err := flatRowsFor(ctx, store, scenario, mode)
				if err != nil {
					return err
				}
				for _, row := range rows {
					if err := writer.Write(row); err != nil {
						return fmt.Errorf("failed to write row: %w", err)
					}
				}
				rowCount += len(rows)
				if bar != nil {
					_ = bar.Add(1)
				}
			}

			writer.Flush()
			if err := writer.Error(); err != nil {
				return fmt.Errorf("failed to flush CSV: %w", err)
			}

			slog.Info("export completed", "file", output, "rows", rowCount)
			fmt.Println(app.styles.FormatSuccess(fmt.Sprintf("Wrote %d rows to %s", rowCount, output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario name (default: current plan)")
	cmd.Flags().StringVarP(&output, "output", "o", "budget_report.csv", "output file path")
	cmd.Flags().StringVar(&viewFlag, "view", "monthly", "view mode (monthly, first, second)")
	cmd.Flags().BoolVar(&allScenarios, "all-scenarios", false, "export every scenario")

	return cmd
}

func exportSheetsCmd() *cobra.Command {
	var (
		scenarioName string
		viewFlag     string
	)

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Push the budget report to Google Sheets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := newAppContext()
			if err != nil {
				return err
			}

			mode, err := model.ParseViewMode(viewFlag)
			if err != nil {
				return err
			}

			scenario, err := findScenario(scenarioName)
			if err != nil {
				return err
			}

			sheetsCfg, err := sheets.LoadConfig()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx, app.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			first, second, spending, err := loadScenarioState(ctx, store, scenario)
			if err != nil {
				return err
			}

			income := mode.Income(first, second)
			results := budget.ComputeCategoryResults(scenario, income, spending)
			summary := budget.ComputeSummary(results, first, second, mode, budget.BasisBudgeted)
			rows := budget.FlatRows(scenario.Name, results, mode, first, second)

			summaryLines := []string{
				fmt.Sprintf("Total budgeted: %s", cli.Money(app.cfg.CurrencySymbol, summary.TotalBudgeted)),
				fmt.Sprintf("Total spent: %s", cli.Money(app.cfg.CurrencySymbol, summary.TotalSpent)),
				fmt.Sprintf("Remaining: %s", cli.Money(app.cfg.CurrencySymbol, summary.Remaining)),
				fmt.Sprintf("%s by %s", summary.Status, cli.Money(app.cfg.CurrencySymbol, summary.OverUnder)),
			}

			writer, err := sheets.NewWriter(ctx, *sheetsCfg, slog.Default())
			if err != nil {
				return err
			}

			if err := writer.WriteReport(ctx, budget.FlatHeader(), rows, summaryLines); err != nil {
				return err
			}

			fmt.Println(app.styles.FormatSuccess("Report uploaded to Google Sheets"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario name (default: current plan)")
	cmd.Flags().StringVar(&viewFlag, "view", "monthly", "view mode (monthly, first, second)")

	return cmd
}

// flatRowsFor computes a scenario's export rows using its saved state.
func flatRowsFor(ctx context.Context, store service.Storage, scenario model.Scenario, mode model.ViewMode) ([][]string, error) {
	first, second, spending, err := loadScenarioState(ctx, store, scenario)
	if err != nil {
		return nil, err
	}

	income := mode.Income(first, second)
	results := budget.ComputeCategoryResults(scenario, income, spending)
	return budget.FlatRows(scenario.Name, results, mode, first, second), nil
}
