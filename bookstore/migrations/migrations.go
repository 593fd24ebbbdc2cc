package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var MigrationFiles embed.FS

// Dialect returns the migration set for the given directory (postgres or sqlite).
func Dialect(name string) fs.FS {
	sub, err := fs.Sub(MigrationFiles, name)
	if err != nil {
		panic(err)
	}
	return sub
}

func Postgres() fs.FS { return Dialect("postgres") }
func SQLite() fs.FS   { return Dialect("sqlite") }
