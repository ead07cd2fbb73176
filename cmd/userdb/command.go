package main

import "github.com/urfave/cli/v2"

// loadApp creates an app with sane defaults.
func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "userdb"
	app.Usage = "housekeeping for the user database"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to a toml config file, the environment overrides it",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action: server.startMigrate,
			Name:   "migrate",
			Usage:  "Bring the schema up to date",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Usage: "run a single versioned migrator instead of the latest schema",
					Value: "latest",
				},
				&cli.BoolFlag{
					Name:  "sql",
					Usage: "apply the embedded sql migrations through golang-migrate (mysql only)",
				},
			},
			Category:    "Database",
			Description: `Used to create or upgrade the users, oauth_accounts and token tables.`,
		},
		{
			Action: server.startSeed,
			Name:   "seed",
			Usage:  "Create a superuser and print an access token for it",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "email",
					Usage:    "email of the superuser",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "password",
					Usage:    "password of the superuser",
					Required: true,
				},
			},
			Category:    "Database",
			Description: `Used for local development, it writes one verified superuser and one access token.`,
		},
	}

	s.app = app
}
