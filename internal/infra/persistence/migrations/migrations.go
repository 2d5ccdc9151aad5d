// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

// Dir is the path of the migration files inside the embedded filesystem.
const Dir = "sql"

//go:embed sql/*.sql
var files embed.FS

func setup() error {
	goose.SetBaseFS(files)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	return nil
}

// Run executes a goose command (up, down, status, redo, reset) against db.
func Run(ctx context.Context, db *sql.DB, command string, args ...string) error {
	if db == nil {
		return errors.New("db is required")
	}
	if err := setup(); err != nil {
		return err
	}

	if err := goose.RunContext(ctx, command, db, Dir, args...); err != nil {
		return errors.Wrapf(err, "goose %s", command)
	}

	return nil
}

// MigrateToVersion moves the schema up or down to targetVersion.
func MigrateToVersion(ctx context.Context, db *sql.DB, targetVersion string) error {
	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid version %q", targetVersion)
	}
	if err := setup(); err != nil {
		return err
	}

	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Wrap(err, "get db version")
	}

	switch {
	case current == target:
		return nil
	case current < target:
		return errors.Wrapf(goose.UpToContext(ctx, db, Dir, target), "goose up-to %d", target)
	default:
		return errors.Wrapf(goose.DownToContext(ctx, db, Dir, target), "goose down-to %d", target)
	}
}

// Versions lists the embedded migration versions in ascending order.
func Versions() ([]int64, error) {
	if err := setup(); err != nil {
		return nil, err
	}

	found, err := goose.CollectMigrations(Dir, 0, goose.MaxVersion)
	if err != nil {
		return nil, errors.Wrap(err, "collect migrations")
	}

	versions := make([]int64, 0, len(found))
	for _, m := range found {
		versions = append(versions, m.Version)
	}

	return versions, nil
}
