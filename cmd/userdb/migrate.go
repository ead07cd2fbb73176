package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/authbase-lab/userdb/migration"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()

	if cctx.Bool("sql") {
		db, err := s.db.DB()
		if err != nil {
			return err
		}

		return migration.Migrate(db, s.configs.Database.Database, s.logger)
	}

	version := cctx.String("version")
	migrator, ok := migration.Migrators[version]
	if !ok {
		return fmt.Errorf("not found version %s", version)
	}

	if err := migrator(s.db); err != nil {
		return err
	}

	s.logger.Infof("schema migrated to %s", version)

	return nil
}
