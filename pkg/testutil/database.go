package testutil

import (
	"os"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/authbase-lab/userdb/migration"
)

// NewTestDB opens an in-memory sqlite database carrying the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal("failed to create in memory db")
	}

	if err := migration.AutoMigrate(db); err != nil {
		t.Fatal("failed to migrate db")
	}

	return db
}

// NewIntegrationTestDB connects to the MySQL database named by DB_CONNECTION
// and migrates it. Guard calls with EnableIntegrationTest.
func NewIntegrationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(mysql.Open(os.Getenv("DB_CONNECTION")), &gorm.Config{})
	if err != nil {
		t.Fatal("cannot connect to db")
	}

	if err := migration.AutoMigrate(db); err != nil {
		t.Fatal("cannot do migration for integration test")
	}

	return db
}

func EnableIntegrationTest() bool {
	return len(os.Getenv("RUN_INTEGRATION_TEST")) > 0
}
