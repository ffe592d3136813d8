package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/academica/gradeflow/internal/config"
	"github.com/academica/gradeflow/internal/storage"
)

// initStorage opens the database with proper path expansion and runs any
// pending migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/gradeflow/gradeflow.db"
	}

	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
