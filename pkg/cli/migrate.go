package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/blueprint-app/blueprint/pkg/repository/sqlite"
	"github.com/blueprint-app/blueprint/pkg/utils/logging"
)

func cmdMigrate() *cli.Command {
	var dbPath string

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Create or update the SQLite database schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "db-path",
				Usage:       "SQLite database file path",
				Value:       "blueprint.db",
				Sources:     cli.EnvVars("BLUEPRINT_DB_PATH"),
				Destination: &dbPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()
			logger.Info("Migrating database", "path", dbPath)

			repo, err := sqlite.New(dbPath)
			if err != nil {
				return goerr.Wrap(err, "failed to open database")
			}
			if err := repo.Close(); err != nil {
				return goerr.Wrap(err, "failed to close database")
			}

			logger.Info("Migration completed", "path", dbPath)
			return nil
		},
	}
}
