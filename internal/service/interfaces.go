// Package service defines the interfaces and shared types that connect
// the command layer to its collaborators.
package service

import (
	"context"
	"time"
)

// Storage persists the mutable side of budgeting: paycheck amounts and
// actual spending per scenario, plus an append-only spending history.
// Scenario and category definitions themselves are static and never
// stored.
type Storage interface {
	// LoadScenarioData returns the saved paychecks and spending for a
	// scenario, or nil if nothing has been saved yet.
	LoadScenarioData(ctx context.Context, scenario string) (*ScenarioData, error)
	// SaveScenarioData upserts the paychecks and spending for a scenario.
	SaveScenarioData(ctx context.Context, data *ScenarioData) error
	// SetActualSpending upserts the spent amount for one category.
	SetActualSpending(ctx context.Context, scenario, category string, amount float64) error
	// ClearSpending removes all recorded spending for a scenario.
	ClearSpending(ctx context.Context, scenario string) error
	// AddSpendingEntry appends a row to the spending history.
	AddSpendingEntry(ctx context.Context, entry *SpendingEntry) error
	// GetSpendingHistory returns recent history rows for a scenario,
	// newest first. An empty category matches all categories.
	GetSpendingHistory(ctx context.Context, scenario, category string, limit int) ([]SpendingEntry, error)
	// Stats reports row counts and database size.
	Stats(ctx context.Context) (*Stats, error)
	// Backup writes a consistent copy of the database to destPath.
	Backup(ctx context.Context, destPath string) error
	// Migrate brings the schema up to the expected version.
	Migrate(ctx context.Context) error
	Close() error
}

// ScenarioData is the persisted runtime state of one scenario.
type ScenarioData struct {
	UpdatedAt      time.Time
	Spending       map[string]float64
	Scenario       string
	FirstPaycheck  float64
	SecondPaycheck float64
}

// SpendingEntry is one row of the append-only spending history.
type SpendingEntry struct {
	RecordedAt time.Time
	Scenario   string
	Category   string
	Note       string
	Amount     float64
	ID         int64
}

// Stats summarizes the database contents.
type Stats struct {
	Scenarios    int
	SpendingRows int
	HistoryRows  int
	SizeBytes    int64
}

// RetryOptions configures retry behavior for remote operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
