package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newKVDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("kv_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if migrate {
		if err := AutoMigrate(db); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestSQLiteEngine_SetGetOverwriteDelete(t *testing.T) {
	ctx := context.Background()
	eng := NewSQLiteEngine(newKVDB(t, true))

	if _, ok, err := eng.Get(ctx, "forumPosts"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := eng.Set(ctx, "forumPosts", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := eng.Set(ctx, "forumPosts", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err := eng.Get(ctx, "forumPosts")
	if err != nil || !ok || string(v) != `[{"id":"1"}]` {
		t.Fatalf("Get = %q ok=%v err=%v", v, ok, err)
	}
	if err := eng.Delete(ctx, "forumPosts"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := eng.Get(ctx, "forumPosts"); ok {
		t.Fatalf("expected key gone after delete")
	}
	if err := eng.Delete(ctx, "forumPosts"); err != nil {
		t.Fatalf("deleting a missing key should succeed: %v", err)
	}
}

func TestSQLiteEngine_NoTableSurfacesAsWriteFailure(t *testing.T) {
	s := New(NewSQLiteEngine(newKVDB(t, false)))
	if err := Write(context.Background(), s, "k", 1); err == nil {
		t.Fatalf("expected write error without table")
	}
	// reads still fall back to the default
	if got := Read(context.Background(), s, "k", 42); got != 42 {
		t.Fatalf("Read = %d; want default", got)
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	_, err := OpenSQLite(filepath.Join(t.TempDir(), "missing", "app.db"))
	if err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestOpenSQLite_CreatesFile(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	s := New(NewSQLiteEngine(db))
	if err := Write(context.Background(), s, KeyLanguage, "vi"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := Read(context.Background(), s, KeyLanguage, "en"); got != "vi" {
		t.Fatalf("Read = %q", got)
	}
}
