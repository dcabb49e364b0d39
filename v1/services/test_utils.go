package services

import (
	"fmt"
	"testing"

	v1 "github.com/society-rp/staff-portal/v1"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates a per-test in-memory SQLite database with the full
// schema migrated. The database is named after the test so parallel tests
// do not share state. Exported for use in handler tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := v1.MigrateSchema(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
