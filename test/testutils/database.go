package testutils

import (
	"testing"

	"github.com/fridgechef/v1/internal/infrastructure/persistence/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDatabase creates an in-memory SQLite database with the full
// schema migrated. Each call returns an isolated database.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.SetupDatabase(":memory:", logger.Silent)
	if err != nil {
		t.Fatalf("failed to set up test database: %v", err)
	}

	return db
}
