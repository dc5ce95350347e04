package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

func New(databaseURL string) (*Database, error) {
	var db *gorm.DB
	var err error

	if strings.HasPrefix(databaseURL, "sqlite://") {
		// SQLite for development
		dbPath := strings.TrimPrefix(databaseURL, "sqlite://")
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	} else {
		// PostgreSQL for production
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	createTablesSQL := `
	CREATE TABLE IF NOT EXISTS import_runs (
		id UUID PRIMARY KEY,
		source TEXT NOT NULL,
		file_name TEXT,
		created_count INTEGER DEFAULT 0,
		failed_count INTEGER DEFAULT 0,
		error TEXT,
		started_at TIMESTAMPTZ,
		finished_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS import_run_items (
		id UUID PRIMARY KEY,
		run_id UUID NOT NULL,
		row_num INTEGER NOT NULL,
		success BOOLEAN DEFAULT false,
		product_id INTEGER,
		name TEXT,
		type TEXT,
		sku TEXT,
		error TEXT,
		data TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_import_run_items_run_id ON import_run_items (run_id);

	CREATE TABLE IF NOT EXISTS product_events (
		id UUID PRIMARY KEY,
		type TEXT NOT NULL,
		product_id TEXT,
		payload TEXT,
		created_at TIMESTAMPTZ
	);
	`

	err = db.Exec(createTablesSQL).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
