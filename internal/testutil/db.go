package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/synergysphere-dev/synergysphere/db"
	"github.com/synergysphere-dev/synergysphere/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB points the package-global connection at a fresh in-memory
// SQLite database with foreign keys enforced and the schema migrated, and
// restores the previous connection when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDB, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := testDB.DB()

	if err != nil {
		t.Fatalf("failed to access test database pool: %v", err)
	}

	// A pooled :memory: connection would be a different empty database;
	// keep everything on one connection.
	sqlDB.SetMaxOpenConns(1)

	if err := testDB.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMembership{},
		&models.Task{},
		&models.Message{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	previous := db.DB
	db.DB = testDB

	t.Cleanup(func() {
		db.DB = previous
		sqlDB.Close()
	})

	return testDB
}
