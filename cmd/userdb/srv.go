package main

import (
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/authbase-lab/userdb/config"
	"github.com/authbase-lab/userdb/pkg/logger"
	"github.com/authbase-lab/userdb/pkg/metrics"
	"github.com/authbase-lab/userdb/repository"
)

type srv struct {
	app *cli.App

	configs config.Configs
	logger  logger.Logger

	db *gorm.DB

	userRepo        repository.UserRepository
	accessTokenRepo repository.AccessTokenRepository
}

func (s *srv) loadConfig(cctx *cli.Context) {
	configs, err := config.Load(cctx.String("config"))
	if err != nil {
		panic(err)
	}

	s.configs = configs
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(logger.ParseLevel(s.configs.Log.Level))
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(s.dialector(), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if s.configs.Metrics.Enabled {
		if err := s.db.Use(metrics.Plugin{}); err != nil {
			panic(err)
		}
	}
}

func (s *srv) dialector() gorm.Dialector {
	dsn := s.configs.Database.ConnectionString()

	switch s.configs.Database.Driver {
	case "sqlite":
		return sqlite.Open(dsn)
	case "postgres":
		return postgres.Open(dsn)
	default:
		return mysql.New(mysql.Config{
			DSN:               dsn, // data source name
			DefaultStringSize: 256, // default size for string fields
		})
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository(s.db, repository.WithOAuthAccounts())
	s.accessTokenRepo = repository.NewAccessTokenRepository(s.db)
}
