package testutil

import (
	"testing"

	"social-platform/internal/shared/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestStore opens an in-memory SQLite store and migrates the given
// models. Each test should pass a unique name so databases do not bleed
// into each other under shared cache.
func OpenTestStore(t *testing.T, name string, models ...any) *db.Store {
	t.Helper()
	g, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if len(models) > 0 {
		if err := g.AutoMigrate(models...); err != nil {
			t.Fatalf("migrate test db: %v", err)
		}
	}
	sqlDB, err := g.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return &db.Store{DB: g}
}
