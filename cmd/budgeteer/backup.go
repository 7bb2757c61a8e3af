package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func backupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <destination>",
		Short: "Back up the database",
		Long:  `Write a consistent copy of the database to the destination path. Refuses to overwrite an existing file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newAppContext()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx, app.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Backup(ctx, args[0]); err != nil {
				return fmt.Errorf("backup failed: %w", err)
			}

			fmt.Println(app.styles.FormatSuccess("Backup written to " + args[0]))
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := newAppContext()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx, app.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(ctx)
			if err != nil {
				return fmt.Errorf("failed to read stats: %w", err)
			}

			fmt.Printf("Database:        %s\n", app.cfg.DBPath)
			fmt.Printf("Scenarios saved: %d\n", stats.Scenarios)
			fmt.Printf("Spending rows:   %d\n", stats.SpendingRows)
			fmt.Printf("History rows:    %d\n", stats.HistoryRows)
			fmt.Printf("Size:            %.1f KiB\n", float64(stats.SizeBytes)/1024)
			return nil
		},
	}
}
