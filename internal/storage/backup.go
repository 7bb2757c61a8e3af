package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Backup writes a consistent copy of the database to destPath using
// VACUUM INTO, which snapshots the database without blocking readers.
func (s *SQLiteStorage) Backup(ctx context.Context, destPath string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(destPath, "destPath"); err != nil {
		return err
	}

	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	// VACUUM INTO refuses to overwrite an existing file.
	if _, err := os.Stat(destPath); err == nil {
		return fmt.Errorf("backup target %s already exists", destPath)
	}

	if _, err := s.db.ExecContext(ctx, `VACUUM INTO ?`, destPath); err != nil {
		return fmt.Errorf("failed to back up database: %w", err)
	}

	slog.Info("database backed up", "dest", destPath)
	return nil
}
