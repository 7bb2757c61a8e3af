package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"budgeteer/internal/service"
)

// LoadScenarioData returns the saved paychecks and actual spending for a
// scenario. Returns nil (no error) when the scenario has never been
// saved.
func (s *SQLiteStorage) LoadScenarioData(ctx context.Context, scenario string) (*service.ScenarioData, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(scenario, "scenario"); err != nil {
		return nil, err
	}

	data := &service.ScenarioData{
		Scenario: scenario,
		Spending: make(map[string]float64),
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT first_paycheck, second_paycheck, updated_at
		FROM scenario_data
		WHERE scenario = ?`, scenario).
		Scan(&data.FirstPaycheck, &data.SecondPaycheck, &data.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query scenario data: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, amount
		FROM actual_spending
		WHERE scenario = ?`, scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to query actual spending: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var amount float64
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan spending row: %w", err)
		}
		data.Spending[category] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating spending rows: %w", err)
	}

	slog.Debug("loaded scenario data", "scenario", scenario, "categories", len(data.Spending))
	return data, nil
}

// SaveScenarioData upserts the paychecks and all spending amounts for a
// scenario in a single transaction.
func (s *SQLiteStorage) SaveScenarioData(ctx context.Context, data *service.ScenarioData) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("scenario data cannot be nil")
	}
	if err := validateString(data.Scenario, "scenario"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO scenario_data (scenario, first_paycheck, second_paycheck, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(scenario) DO UPDATE SET
			first_paycheck = excluded.first_paycheck,
			second_paycheck = excluded.second_paycheck,
			updated_at = excluded.updated_at`,
		data.Scenario, data.FirstPaycheck, data.SecondPaycheck, now); err != nil {
		return fmt.Errorf("failed to save scenario data: %w", err)
	}

	for category, amount := range data.Spending {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO actual_spending (scenario, category, amount, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(scenario, category) DO UPDATE SET
				amount = excluded.amount,
				updated_at = excluded.updated_at`,
			data.Scenario, category, amount, now); err != nil {
			return fmt.Errorf("failed to save spending for %q: %w", category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scenario data: %w", err)
	}

	slog.Debug("saved scenario data", "scenario", data.Scenario, "categories", len(data.Spending))
	return nil
}

// SetActualSpending upserts the spent amount for one category.
func (s *SQLiteStorage) SetActualSpending(ctx context.Context, scenario, category string, amount float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(scenario, "scenario"); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}
	if err := validateAmount(amount, "spending amount"); err != nil {
		return err
	}

	// Make sure the scenario row exists so a later load succeeds.
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO scenario_data (scenario) VALUES (?)
		ON CONFLICT(scenario) DO NOTHING`, scenario); err != nil {
		return fmt.Errorf("failed to ensure scenario row: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO actual_spending (scenario, category, amount, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(scenario, category) DO UPDATE SET
			amount = excluded.amount,
			updated_at = excluded.updated_at`,
		scenario, category, amount, time.Now()); err != nil {
		return fmt.Errorf("failed to set actual spending: %w", err)
	}

	return nil
}

// ClearSpending removes all recorded spending for a scenario, including
// its history rows.
func (s *SQLiteStorage) ClearSpending(ctx context.Context, scenario string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(scenario, "scenario"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM actual_spending WHERE scenario = ?`, scenario); err != nil {
		return fmt.Errorf("failed to clear spending: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM spending_history WHERE scenario = ?`, scenario); err != nil {
		return fmt.Errorf("failed to clear spending history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear: %w", err)
	}

	slog.Info("cleared spending", "scenario", scenario)
	return nil
}
