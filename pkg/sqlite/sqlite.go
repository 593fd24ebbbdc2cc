package sqlite

import (
	"context"
	"io/fs"

	"github.com/kimnamhyeong01/bookstore-service/pkg/migrate"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // sqlite database/sql driver
)

const (
	DriverName = "sqlite"
	InMemory   = ":memory:"
)

type DB struct {
	Path string `yaml:"path" envconfig:"SQLITE_PATH" default:"bookstore.db"`
}

// NewSQLiteDB opens the database file (or an in-memory database) and applies the embedded migrations.
// SQLite has a single writer, so the pool is pinned to one connection; this also keeps an
// in-memory database alive for the lifetime of the pool.
func NewSQLiteDB(ctx context.Context, cfg *DB, migrations fs.FS, log *zap.Logger) (*sqlx.DB, error) {
	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := migrate.Run(ctx, db.DB, migrate.DialectSQLite, migrations, migrate.Up, log); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func Connect(ctx context.Context, cfg *DB) (*sqlx.DB, error) {
	dsn := cfg.Path
	if dsn != InMemory {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sqlx.ConnectContext(ctx, DriverName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sqlx.ConnectContext")
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "enable foreign keys")
	}
	return db, nil
}
