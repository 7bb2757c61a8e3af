package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgeteer/internal/budget"
	"budgeteer/internal/cli"
	"budgeteer/internal/model"
)

func planCmd() *cobra.Command {
	var (
		scenarioName string
		paycheck     float64
		second       float64
		viewFlag     string
		basisFlag    string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the budget plan with actual spending",
		Long: `Compute every category's budgeted amount, compare it with recorded
spending, and print a summary. Saved paychecks and spending are used
unless overridden with flags.`,
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

			mode, err := model.ParseViewMode(viewFlag)
			if err != nil {
				return err
			}

			basis := budget.BasisBudgeted
			switch basisFlag {
			case "budgeted":
			case "income":
				basis = budget.BasisIncome
			default:
				return fmt.Errorf("unknown basis %q (expected budgeted or income)", basisFlag)
			}

			store, err := initStorage(ctx, app.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			first, secondSaved, spending, err := loadScenarioState(ctx, store, scenario)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("paycheck") {
				first = paycheck
			}
			if cmd.Flags().Changed("second-paycheck") {
				secondSaved = second
			}

			income := mode.Income(first, secondSaved)
			results := budget.ComputeCategoryResults(scenario, income, spending)
			summary := budget.ComputeSummary(results, first, secondSaved, mode, basis)

			printPlan(app, scenario, results, summary, mode, income)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario name (default: current plan)")
	cmd.Flags().Float64VarP(&paycheck, "paycheck", "p", 0, "override the first paycheck amount")
	cmd.Flags().Float64Var(&second, "second-paycheck", 0, "override the second paycheck amount")
	cmd.Flags().StringVar(&viewFlag, "view", "monthly", "view mode (monthly, first, second)")
	cmd.Flags().StringVar(&basisFlag, "basis", "budgeted", "summary comparison basis (budgeted, income)")

	return cmd
}

func printPlan(app *appContext, scenario model.Scenario, results map[string]budget.CategoryResult, summary budget.Summary, mode model.ViewMode, income float64) {
	fmt.Println(app.styles.Title.Render(cli.ChartIcon + " " + scenario.Name))
	fmt.Println(app.styles.Subtitle.Render(fmt.Sprintf("view: %s  income: %s",
		mode, cli.Money(app.cfg.CurrencySymbol, income))))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		app.styles.Header.Render("Category"),
		app.styles.Header.Render("Pct"),
		app.styles.Header.Render("Budgeted"),
		app.styles.Header.Render("Actual"),
		app.styles.Header.Render("Diff"),
		app.styles.Header.Render("Status"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 20), strings.Repeat("-", 6), strings.Repeat("-", 10),
		strings.Repeat("-", 10), strings.Repeat("-", 10), strings.Repeat("-", 12))

	for _, name := range scenario.CategoryNames() {
		r := results[name]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name,
			cli.Percent(r.Percentage),
			cli.Money(app.cfg.CurrencySymbol, r.Budgeted),
			cli.Money(app.cfg.CurrencySymbol, r.Actual),
			cli.Money(app.cfg.CurrencySymbol, r.Difference),
			app.styles.StatusStyle(r.Color).Render(r.Status.Label()))
	}
	w.Flush()

	fmt.Println()
	fmt.Println(app.styles.Box.Render(fmt.Sprintf(
		"Budgeted %s   Spent %s   Remaining %s   %s %s   Utilization %s",
		cli.Money(app.cfg.CurrencySymbol, summary.TotalBudgeted),
		cli.Money(app.cfg.CurrencySymbol, summary.TotalSpent),
		cli.Money(app.cfg.CurrencySymbol, summary.Remaining),
		app.styles.StatusStyle(summary.Color).Render(string(summary.Status)),
		cli.Money(app.cfg.CurrencySymbol, summary.OverUnder),
		cli.Percent(summary.Utilization))))

	for _, warning := range scenario.Validate(income) {
		fmt.Println(app.styles.FormatWarning(warning))
	}
}
