package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"budgeteer/internal/cli"
	"budgeteer/internal/common"
	"budgeteer/internal/service"
)

func paycheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paycheck",
		Short: "Get or set paycheck amounts",
	}

	cmd.AddCommand(getPaycheckCmd())
	cmd.AddCommand(setPaycheckCmd())

	return cmd
}

func getPaycheckCmd() *cobra.Command {
	var scenarioName string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the saved paycheck amounts",
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

			first, second, _, err := loadScenarioState(ctx, store, scenario)
			if err != nil {
				return err
			}

			fmt.Printf("First paycheck:  %s\n", cli.Money(app.cfg.CurrencySymbol, first))
			fmt.Printf("Second paycheck: %s\n", cli.Money(app.cfg.CurrencySymbol, second))
			fmt.Printf("Monthly income:  %s\n", cli.Money(app.cfg.CurrencySymbol, first+second))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario name (default: current plan)")

	return cmd
}

func setPaycheckCmd() *cobra.Command {
	var (
		scenarioName string
		second       bool
	)

	cmd := &cobra.Command{
		Use:   "set <amount>",
		Short: "Set a paycheck amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			if amount < 0 {
				return fmt.Errorf("%w: %v", common.ErrNegativeAmount, amount)
			}

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

			first, secondSaved, spending, err := loadScenarioState(ctx, store, scenario)
			if err != nil {
				return err
			}

			which := "first"
			if second {
				secondSaved = amount
				which = "second"
			} else {
				first = amount
			}

			data := &service.ScenarioData{
				Scenario:       scenario.Name,
				FirstPaycheck:  first,
				SecondPaycheck: secondSaved,
				Spending:       spending,
			}
			if err := store.SaveScenarioData(ctx, data); err != nil {
				return fmt.Errorf("failed to save paycheck: %w", err)
			}

			fmt.Println(app.styles.FormatSuccess(fmt.Sprintf("Set %s paycheck to %s for %s",
				which, cli.Money(app.cfg.CurrencySymbol, amount), scenario.Name)))

			for _, warning := range scenario.Validate(first + secondSaved) {
				fmt.Println(app.styles.FormatWarning(warning))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario name (default: current plan)")
	cmd.Flags().BoolVar(&second, "second", false, "set the second paycheck instead of the first")

	return cmd
}
