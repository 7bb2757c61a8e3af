package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgeteer/internal/cli"
	"budgeteer/internal/common"
	"budgeteer/internal/ofx"
	"budgeteer/internal/service"
)

func spendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spend",
		Short: "Record actual spending",
		Long:  `Set or accumulate spending per category, inspect history, or import a bank statement.`,
	}

	cmd.AddCommand(setSpendCmd())
	cmd.AddCommand(addSpendCmd())
	cmd.AddCommand(clearSpendCmd())
	cmd.AddCommand(spendHistoryCmd())
	cmd.AddCommand(importSpendCmd())

	return cmd
}

func setSpendCmd() *cobra.Command {
	var scenarioName string

	cmd := &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set the total spent for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}

			scenario, err := findScenario(scenarioName)
			if err != nil {
				return err
			}
			if err := requireCategory(scenario, args[0]); err != nil {
				return err
			}

			store, err := initStorage(ctx, app.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SetActualSpending(ctx, scenario.Name, args[0], amount); err != nil {
				return fmt.Errorf("failed to record spending: %w", err)
			}

			fmt.Println(app.styles.FormatSuccess(fmt.Sprintf("%s spent on %s",
				cli.Money(app.cfg.CurrencySymbol, amount), args[0])))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario name (default: current plan)")

	return cmd
}

func addSpendCmd() *cobra.Command {
	var (
		scenarioName string
		note         string
	)

	cmd := &cobra.Command{
		Use:   "add <category> <amount>",
		Short: "Add to a category's spending and log it",
		Long: `Add an amount on top of the category's recorded total and append an
entry to the spending history.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
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
			if err := requireCategory(scenario, args[0]); err != nil {
				return err
			}

			store, err := initStorage(ctx, app.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			_, _, spending, err := loadScenarioState(ctx, store, scenario)
			if err != nil {
				return err
			}

			total := spending[args[0]] + amount
			if err := store.SetActualSpending(ctx, scenario.Name, args[0], total); err != nil {
				return fmt.Errorf("failed to record spending: %w", err)
			}

			entry := &service.SpendingEntry{
				Scenario: scenario.Name,
				Category: args[0],
				Amount:   amount,
				Note:     note,
			}
			if err := store.AddSpendingEntry(ctx, entry); err != nil {
				return fmt.Errorf("failed to log spending entry: %w", err)
			}

			fmt.Println(app.styles.FormatSuccess(fmt.Sprintf("Added %s to %s (total %s)",
				cli.Money(app.cfg.CurrencySymbol, amount), args[0],
				cli.Money(app.cfg.CurrencySymbol, total))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario name (default: current plan)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "note to attach to the history entry")

	return cmd
}

func clearSpendCmd() *cobra.Command {
	var (
		scenarioName string
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all recorded spending for a scenario",
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

			if !force {
				return fmt.Errorf("refusing to clear spending for %q without --force", scenario.Name)
			}

			store, err := initStorage(ctx, app.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ClearSpending(ctx, scenario.Name); err != nil {
				return fmt.Errorf("failed to clear spending: %w", err)
			}

			fmt.Println(app.styles.FormatSuccess("Cleared spending for " + scenario.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario name (default: current plan)")
	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation")

	return cmd
}

func spendHistoryCmd() *cobra.Command {
	var (
		scenarioName string
		category     string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent spending entries",
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

			entries, err := store.GetSpendingHistory(ctx, scenario.Name, category, limit)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println(app.styles.Subtle.Render("No spending recorded yet. Use 'budgeteer spend add' to log one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				app.styles.Header.Render("When"),
				app.styles.Header.Render("Category"),
				app.styles.Header.Render("Amount"),
				app.styles.Header.Render("Note"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 16), strings.Repeat("-", 20),
				strings.Repeat("-", 10), strings.Repeat("-", 30))

			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					e.RecordedAt.Local().Format("2006-01-02 15:04"),
					e.Category,
					cli.Money(app.cfg.CurrencySymbol, e.Amount),
					e.Note)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario name (default: current plan)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "max entries to show (default 50)")

	return cmd
}

func importSpendCmd() *cobra.Command {
	var (
		scenarioName string
		category     string
	)

	cmd := &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import spending from an OFX/QFX bank statement",
		Long: `Parse a bank statement and report its debit and credit totals. With
--category, the total debits are added to that category's spending and
logged to history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newAppContext()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open statement: %w", err)
			}
			defer f.Close()

			summary, err := ofx.ReadSummary(f)
			if err != nil {
				return err
			}

			fmt.Printf("Statements: %d  Transactions: %d\n", summary.Statements, summary.Transactions)
			fmt.Printf("Debits:  %s\n", cli.Money(app.cfg.CurrencySymbol, summary.Debits))
			fmt.Printf("Credits: %s\n", cli.Money(app.cfg.CurrencySymbol, summary.Credits))

			if category == "" {
				fmt.Println(app.styles.Subtle.Render("Pass --category to record the debits against a budget category."))
				return nil
			}

			scenario, err := findScenario(scenarioName)
			if err != nil {
				return err
			}
			if err := requireCategory(scenario, category); err != nil {
				return err
			}

			store, err := initStorage(ctx, app.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			_, _, spending, err := loadScenarioState(ctx, store, scenario)
			if err != nil {
				return err
			}

			total := spending[category] + summary.Debits
			if err := store.SetActualSpending(ctx, scenario.Name, category, total); err != nil {
				return fmt.Errorf("failed to record spending: %w", err)
			}

			entry := &service.SpendingEntry{
				Scenario: scenario.Name,
				Category: category,
				Amount:   summary.Debits,
				Note:     "imported from " + args[0],
			}
			if err := store.AddSpendingEntry(ctx, entry); err != nil {
				return fmt.Errorf("failed to log spending entry: %w", err)
			}

			fmt.Println(app.styles.FormatSuccess(fmt.Sprintf("Recorded %s of debits against %s (total %s)",
				cli.Money(app.cfg.CurrencySymbol, summary.Debits), category,
				cli.Money(app.cfg.CurrencySymbol, total))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario name (default: current plan)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category to record the debit total against")

	return cmd
}
