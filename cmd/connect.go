package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/moviedb/internal/iodb"
	"github.com/gnames/moviedb/pkg/config"
	"github.com/gnames/moviedb/pkg/db"
)

// connect opens the database selected by the configuration. The caller
// closes the returned operator.
func connect(ctx context.Context, dbCfg *config.DatabaseConfig) (db.Operator, error) {
	op, err := iodb.New(dbCfg)
	if err != nil {
		return nil, err
	}

	if err = op.Connect(ctx, dbCfg); err != nil {
		return nil, err
	}

	if dbCfg.Driver == config.DriverSQLite {
		gn.Info("Connected to database: <em>%s</em>", dbCfg.Path)
	} else {
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			dbCfg.User, dbCfg.Host, dbCfg.Port, dbCfg.Database)
	}
	return op, nil
}
