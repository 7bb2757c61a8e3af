package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"budgeteer/internal/cli"
)

func validateCmd() *cobra.Command {
	var paycheck float64

	cmd := &cobra.Command{
		Use:   "validate [scenario]",
		Short: "Check a scenario against a paycheck amount",
		Long: `Run the scenario's sanity checks: fixed expenses against the paycheck,
total percentage allocation, and the combined budget total. Warnings are
advisory; a scenario with warnings still calculates.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			amount := scenario.DefaultPaycheck
			if cmd.Flags().Changed("paycheck") {
				amount = paycheck
			}

			warnings := scenario.Validate(amount)
			if len(warnings) == 0 {
				fmt.Println(app.styles.FormatSuccess(fmt.Sprintf(
					"%s fits a %s paycheck", scenario.Name, cli.Money(app.cfg.CurrencySymbol, amount))))
				return nil
			}

			for _, warning := range warnings {
				fmt.Println(app.styles.FormatWarning(warning))
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&paycheck, "paycheck", "p", 0, "paycheck amount to check (default: scenario default)")

	return cmd
}
