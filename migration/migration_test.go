package migration

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/authbase-lab/userdb/entity"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	return db
}

func TestAutoMigrate(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{
		"users",
		"oauth_accounts",
		"access_tokens",
		"access_refresh_tokens",
	} {
		require.True(t, db.Migrator().HasTable(table), table)
	}

	require.True(t, db.Migrator().HasColumn(&entity.User{}, "metadata"))
}

func TestMigrators(t *testing.T) {
	db := openTestDB(t)

	latest, ok := Migrators["latest"]
	require.True(t, ok)
	require.NoError(t, latest(db))
	require.True(t, db.Migrator().HasTable(&entity.AccessRefreshToken{}))

	// The numbered deltas must be no-ops on an up-to-date schema.
	require.NoError(t, Migrators["0001"](db))
	require.NoError(t, Migrators["0002"](db))
}

func TestMigrationsTempDir(t *testing.T) {
	dir, err := MigrationsTempDir()
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var ups, downs int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}

	require.Greater(t, ups, 0)
	require.Equal(t, ups, downs)
}
