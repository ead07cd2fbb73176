package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Configs struct {
	Env string `toml:"env" env:"USERDB_ENV"`

	Database DatabaseConfigs `toml:"database"`
	Redis    RedisConfigs    `toml:"redis"`
	Log      LogConfigs      `toml:"log"`
	Metrics  MetricsConfigs  `toml:"metrics"`
}

type DatabaseConfigs struct {
	Driver   string `toml:"driver" env:"USERDB_DATABASE_DRIVER"`
	Host     string `toml:"host" env:"USERDB_DATABASE_HOST"`
	Port     string `toml:"port" env:"USERDB_DATABASE_PORT"`
	Database string `toml:"database" env:"USERDB_DATABASE_NAME"`
	User     string `toml:"user" env:"USERDB_DATABASE_USER"`
	Password string `toml:"password" env:"USERDB_DATABASE_PASSWORD"`
}

// ConnectionString builds the DSN for the configured driver. Relational
// sessions are pinned to UTC so timestamps come back the way they were
// written.
func (d *DatabaseConfigs) ConnectionString() string {
	switch d.Driver {
	case "sqlite":
		return d.Database
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			d.Host,
			d.Port,
			d.User,
			d.Password,
			d.Database,
		)
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User,
			d.Password,
			d.Host,
			d.Port,
			d.Database,
		)
	}
}

type RedisConfigs struct {
	Addr string `toml:"addr" env:"USERDB_REDIS_ADDR"`
}

type LogConfigs struct {
	Level string `toml:"level" env:"USERDB_LOG_LEVEL"`
}

type MetricsConfigs struct {
	Enabled bool `toml:"enabled" env:"USERDB_METRICS_ENABLED"`
}

func Default() Configs {
	return Configs{
		Env: "local",
		Database: DatabaseConfigs{
			Driver:   "mysql",
			Host:     "localhost",
			Port:     "3306",
			Database: "userdb",
			User:     "root",
		},
		Redis: RedisConfigs{
			Addr: "localhost:6379",
		},
		Log: LogConfigs{
			Level: "info",
		},
	}
}

// Load layers the optional toml file and then the environment on top of the
// defaults.
func Load(path string) (Configs, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}
