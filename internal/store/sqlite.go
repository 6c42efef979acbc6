package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/go-wellness-backend/internal/domain"
)

// OpenSQLite opens (or creates) a SQLite database, applies PRAGMAs and
// installs the OpenTelemetry GORM plugin.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// AutoMigrate creates the kv_entries table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.KVEntry{})
}

// SQLiteEngine stores each key as one row of kv_entries.
type SQLiteEngine struct {
	db *gorm.DB
}

// NewSQLiteEngine wraps an already migrated handle.
func NewSQLiteEngine(db *gorm.DB) *SQLiteEngine { return &SQLiteEngine{db: db} }

func (e *SQLiteEngine) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row domain.KVEntry
	err := e.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Value, true, nil
}

func (e *SQLiteEngine) Set(ctx context.Context, key string, value []byte) error {
	row := domain.KVEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return e.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

func (e *SQLiteEngine) Delete(ctx context.Context, key string) error {
	return e.db.WithContext(ctx).Where("key = ?", key).Delete(&domain.KVEntry{}).Error
}
