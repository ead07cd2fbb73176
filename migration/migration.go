package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"github.com/authbase-lab/userdb/pkg/logger"
)

// Migrators maps a schema version to the migrator bringing a database up to
// it. "latest" creates the full schema from scratch; the numbered entries
// are the deltas for databases that already exist.
var Migrators = map[string]func(db *gorm.DB) error{
	"0000":   migrate0000,
	"0001":   migrate0001,
	"0002":   migrate0002,
	"latest": migrate0000,
}

//go:embed mysql/*.sql
var mysqlFS embed.FS

// MigrationsTempDir materializes the embedded migration files into a
// temporary directory and returns its path, so migrations can run from the
// binary alone without shipping the sql files separately.
//
// It is the caller's responsibility to remove the directory when it is no
// longer needed.
func MigrationsTempDir() (string, error) {
	tmpDir, err := os.MkdirTemp("", "userdb-migrations-*")
	if err != nil {
		return "", err
	}

	mFS, err := fs.Sub(mysqlFS, "mysql")
	if err != nil {
		return "", err
	}

	if err := fs.WalkDir(mFS, ".", func(path string, d fs.DirEntry, _ error) error {
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(mFS, path)
		if err != nil {
			return err
		}

		return os.WriteFile(filepath.Join(tmpDir, path), content, 0600)
	}); err != nil {
		return "", err
	}

	return tmpDir, nil
}

type dbLogger struct {
	logger logger.Logger
}

func (l *dbLogger) Printf(format string, v ...interface{}) {
	l.logger.Infof(format, v...)
}

func (l *dbLogger) Verbose() bool {
	return true
}

// Migrate applies the embedded sql migrations to a MySQL database with
// golang-migrate. An already up-to-date database is not an error.
func Migrate(db *sql.DB, database string, log logger.Logger) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{DatabaseName: database})
	if err != nil {
		return err
	}

	migrationDir, err := MigrationsTempDir()
	if err != nil {
		return fmt.Errorf("cannot create temporary directory for migrations: %w", err)
	}
	defer os.RemoveAll(migrationDir)

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationDir, database, driver)
	if err != nil {
		return err
	}

	m.Log = &dbLogger{logger: log}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
