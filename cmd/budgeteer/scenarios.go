package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgeteer/internal/cli"
	"budgeteer/internal/model"
)

func scenariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Manage budgeting scenarios",
		Long:  `List the available budgeting scenarios and inspect their categories.`,
	}

	cmd.AddCommand(listScenariosCmd())
	cmd.AddCommand(showScenarioCmd())

	return cmd
}

func listScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all scenarios",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				app.styles.Header.Render("Scenario"),
				app.styles.Header.Render("Categories"),
				app.styles.Header.Render("Default Paycheck"),
				app.styles.Header.Render("Fixed Total"),
				app.styles.Header.Render("Pct Total"))

			scenarios := model.BuiltinScenarios()
			for _, name := range model.ScenarioNames() {
				s := scenarios[name]
				display := name
				if name == model.DefaultScenarioName {
					display += " *"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
					display,
					len(s.Categories),
					cli.Money(app.cfg.CurrencySymbol, s.DefaultPaycheck),
					cli.Money(app.cfg.CurrencySymbol, s.TotalFixedAmount()),
					cli.Percent(s.TotalPercentage()))
			}

			fmt.Fprintln(w, app.styles.Subtle.Render("* default scenario"))
			return nil
		},
	}
}

func showScenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [scenario]",
		Short: "Show a scenario's categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}

			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			scenario, err := findScenario(name)
			if err != nil {
				return err
			}

			fmt.Println(app.styles.Title.Render(scenario.Name))
			if scenario.Description != "" {
				fmt.Println(app.styles.Subtitle.Render(scenario.Description))
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				app.styles.Header.Render("Category"),
				app.styles.Header.Render("Type"),
				app.styles.Header.Render("Amount"),
				app.styles.Header.Render("Description"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 6),
				strings.Repeat("-", 10),
				strings.Repeat("-", 30))

			for _, catName := range scenario.CategoryNames() {
				cat := scenario.Categories[catName]
				kind := "pct"
				amount := cli.Percent(cat.Amount)
				if cat.FixedAmount {
					kind = "fixed"
					amount = cli.Money(app.cfg.CurrencySymbol, cat.Amount)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat.Name, kind, amount, cat.Description)
			}
			w.Flush()

			fmt.Printf("\nFixed total: %s  Percentage total: %s  Default paycheck: %s\n",
				cli.Money(app.cfg.CurrencySymbol, scenario.TotalFixedAmount()),
				cli.Percent(scenario.TotalPercentage()),
				cli.Money(app.cfg.CurrencySymbol, scenario.DefaultPaycheck))
			return nil
		},
	}
}
