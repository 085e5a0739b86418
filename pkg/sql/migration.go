package sql

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/mobileheap/profilecard/pkg/log"
)

const (
	querySeparator = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type MigrationSource fs.ReadDirFS

func FSMigrations(files fs.ReadDirFS) MigrationSource {
	return files
}

type Migrator struct {
	txClient TxClient
	logger   log.Logger
}

func NewMigrator(txClient TxClient, logger log.Logger) *Migrator {
	return &Migrator{
		txClient: txClient,
		logger:   logger,
	}
}

func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	err := m.createMigrationTableIfNotExists(ctx)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	for _, source := range sources {
		err = m.performSourceMigrations(ctx, source)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) performSourceMigrations(ctx context.Context, source MigrationSource) error {
	migrationIDs, err := getFileNames(source)
	if err != nil {
		return fmt.Errorf("get migration file names: %w", err)
	}
	if len(migrationIDs) == 0 {
		return nil
	}

	performedMigrationIDs, err := m.getPerformedMigrationIDs(ctx)
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	for _, migrationID := range migrationIDs {
		if _, ok := performedMigrationIDs[migrationID]; ok {
			continue
		}

		migrationSQL, err := readFile(source, migrationID)
		if err != nil {
			return fmt.Errorf("read migration sql: %w", err)
		}

		err = m.performMigration(ctx, migrationID, migrationSQL)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) performMigration(ctx context.Context, migrationID, migrationSQL string) error {
	tx, err := m.txClient.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start tx: %w", err)
	}

	err = m.processMigration(ctx, tx, migrationID, migrationSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("migration %s failed: %w", migrationID, err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	return nil
}

func (m *Migrator) processMigration(ctx context.Context, tx ClientTx, migrationID, migrationSQL string) error {
	for _, query := range strings.Split(migrationSQL, querySeparator) {
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}

		_, err := tx.ExecContext(ctx, query)
		if err != nil {
			return fmt.Errorf("execute query: %w", err)
		}
	}

	_, err := tx.ExecContext(ctx, "INSERT INTO migration (id) VALUES (?)", migrationID)
	if err != nil {
		return fmt.Errorf("store migration id: %w", err)
	}
	return nil
}

func (m *Migrator) createMigrationTableIfNotExists(ctx context.Context) error {
	_, err := m.txClient.ExecContext(ctx, migrationTableDDL)
	return err
}

func (m *Migrator) getPerformedMigrationIDs(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	err := m.txClient.SelectContext(ctx, &ids, "SELECT id FROM migration")
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}

func getFileNames(source MigrationSource) ([]string, error) {
	entries, err := source.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		result = append(result, entry.Name())
	}
	sort.Strings(result)
	return result, nil
}

func readFile(source MigrationSource, fileName string) (string, error) {
	content, err := fs.ReadFile(source, fileName)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
