package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"budgeteer/internal/service"
)

// AddSpendingEntry appends a row to the spending history.
func (s *SQLiteStorage) AddSpendingEntry(ctx context.Context, entry *service.SpendingEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("spending entry cannot be nil")
	}
	if err := validateString(entry.Scenario, "scenario"); err != nil {
		return err
	}
	if err := validateString(entry.Category, "category"); err != nil {
		return err
	}

	recordedAt := entry.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO spending_history (scenario, category, amount, note, recorded_at)
		VALUES (?, ?, ?, ?, ?)`,
		entry.Scenario, entry.Category, entry.Amount, entry.Note, recordedAt)
	if err != nil {
		return fmt.Errorf("failed to add spending entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get entry ID: %w", err)
	}
	entry.ID = id
	entry.RecordedAt = recordedAt

	slog.Debug("added spending entry",
		"scenario", entry.Scenario,
		"category", entry.Category,
		"amount", entry.Amount)
	return nil
}

// GetSpendingHistory returns recent history rows for a scenario, newest
// first. An empty category matches all categories.
func (s *SQLiteStorage) GetSpendingHistory(ctx context.Context, scenario, category string, limit int) ([]service.SpendingEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(scenario, "scenario"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, scenario, category, amount, COALESCE(note, ''), recorded_at
		FROM spending_history
		WHERE scenario = ?`
	args := []any{scenario}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY recorded_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query spending history: %w", err)
	}
	defer rows.Close()

	var entries []service.SpendingEntry
	for rows.Next() {
		var e service.SpendingEntry
		if err := rows.Scan(&e.ID, &e.Scenario, &e.Category, &e.Amount, &e.Note, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}

	return entries, nil
}

// Stats reports row counts and database size.
func (s *SQLiteStorage) Stats(ctx context.Context) (*service.Stats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	stats := &service.Stats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM scenario_data`, &stats.Scenarios},
		{`SELECT COUNT(*) FROM actual_spending`, &stats.SpendingRows},
		{`SELECT COUNT(*) FROM spending_history`, &stats.HistoryRows},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count rows: %w", err)
		}
	}

	if info, err := os.Stat(s.dbPath); err == nil {
		stats.SizeBytes = info.Size()
	}

	return stats, nil
}
