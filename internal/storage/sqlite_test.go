package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgeteer/internal/service"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := newTestStorage(t)
	// Running migrations again must be a no-op.
	require.NoError(t, store.Migrate(context.Background()))

	version, err := store.currentSchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestScenarioData_RoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	data := &service.ScenarioData{
		Scenario:       "July-December 2025",
		FirstPaycheck:  3984.94,
		SecondPaycheck: 1200,
		Spending: map[string]float64{
			"Groceries": 275.50,
			"Utilities": 65.00,
		},
	}
	require.NoError(t, store.SaveScenarioData(ctx, data))

	loaded, err := store.LoadScenarioData(ctx, "July-December 2025")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.InDelta(t, 3984.94, loaded.FirstPaycheck, 1e-9)
	assert.InDelta(t, 1200, loaded.SecondPaycheck, 1e-9)
	assert.InDelta(t, 275.50, loaded.Spending["Groceries"], 1e-9)
	assert.InDelta(t, 65.00, loaded.Spending["Utilities"], 1e-9)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestLoadScenarioData_Unsaved(t *testing.T) {
	store := newTestStorage(t)

	loaded, err := store.LoadScenarioData(context.Background(), "never saved")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSaveScenarioData_Upsert(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	data := &service.ScenarioData{
		Scenario:      "plan",
		FirstPaycheck: 1000,
		Spending:      map[string]float64{"Groceries": 100},
	}
	require.NoError(t, store.SaveScenarioData(ctx, data))

	data.FirstPaycheck = 2000
	data.Spending["Groceries"] = 150
	require.NoError(t, store.SaveScenarioData(ctx, data))

	loaded, err := store.LoadScenarioData(ctx, "plan")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.InDelta(t, 2000, loaded.FirstPaycheck, 1e-9)
	assert.InDelta(t, 150, loaded.Spending["Groceries"], 1e-9)
}

func TestSetActualSpending(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SetActualSpending(ctx, "plan", "Groceries", 42.50))
	require.NoError(t, store.SetActualSpending(ctx, "plan", "Groceries", 99.99))

	loaded, err := store.LoadScenarioData(ctx, "plan")
	require.NoError(t, err)
	require.NotNil(t, loaded, "setting spending should create the scenario row")
	assert.InDelta(t, 99.99, loaded.Spending["Groceries"], 1e-9)
}

func TestSetActualSpending_RejectsNegative(t *testing.T) {
	store := newTestStorage(t)

	err := store.SetActualSpending(context.Background(), "plan", "Groceries", -5)
	assert.Error(t, err)
}

func TestClearSpending(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SetActualSpending(ctx, "plan", "Groceries", 50))
	require.NoError(t, store.AddSpendingEntry(ctx, &service.SpendingEntry{
		Scenario: "plan", Category: "Groceries", Amount: 50,
	}))

	require.NoError(t, store.ClearSpending(ctx, "plan"))

	loaded, err := store.LoadScenarioData(ctx, "plan")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.Spending)

	history, err := store.GetSpendingHistory(ctx, "plan", "", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSpendingHistory(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	entries := []service.SpendingEntry{
		{Scenario: "plan", Category: "Groceries", Amount: 25.00, Note: "farmers market"},
		{Scenario: "plan", Category: "Groceries", Amount: 60.00},
		{Scenario: "plan", Category: "Utilities", Amount: 80.00, Note: "electric"},
		{Scenario: "other", Category: "Groceries", Amount: 10.00},
	}
	for i := range entries {
		require.NoError(t, store.AddSpendingEntry(ctx, &entries[i]))
		assert.NotZero(t, entries[i].ID)
		assert.False(t, entries[i].RecordedAt.IsZero())
	}

	all, err := store.GetSpendingHistory(ctx, "plan", "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	groceries, err := store.GetSpendingHistory(ctx, "plan", "Groceries", 10)
	require.NoError(t, err)
	require.Len(t, groceries, 2)
	// Newest first.
	assert.InDelta(t, 60.00, groceries[0].Amount, 1e-9)
	assert.Equal(t, "farmers market", groceries[1].Note)

	limited, err := store.GetSpendingHistory(ctx, "plan", "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestStats(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SetActualSpending(ctx, "plan", "Groceries", 50))
	require.NoError(t, store.AddSpendingEntry(ctx, &service.SpendingEntry{
		Scenario: "plan", Category: "Groceries", Amount: 50,
	}))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Scenarios)
	assert.Equal(t, 1, stats.SpendingRows)
	assert.Equal(t, 1, stats.HistoryRows)
	assert.Greater(t, stats.SizeBytes, int64(0))
}

func TestBackup(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SetActualSpending(ctx, "plan", "Groceries", 50))

	dest := filepath.Join(t.TempDir(), "backup.db")
	require.NoError(t, store.Backup(ctx, dest))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// The backup is a usable database.
	copied, err := NewSQLiteStorage(dest)
	require.NoError(t, err)
	defer copied.Close()
	loaded, err := copied.LoadScenarioData(ctx, "plan")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.InDelta(t, 50, loaded.Spending["Groceries"], 1e-9)
}

func TestBackup_RefusesOverwrite(t *testing.T) {
	store := newTestStorage(t)

	dest := filepath.Join(t.TempDir(), "backup.db")
	require.NoError(t, os.WriteFile(dest, []byte("existing"), 0600))

	err := store.Backup(context.Background(), dest)
	assert.Error(t, err)
}
