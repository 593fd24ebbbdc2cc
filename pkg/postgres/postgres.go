package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"time"

	"github.com/kimnamhyeong01/bookstore-service/pkg/migrate"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DriverName = "pgx"

type DB struct {
	Host     string `yaml:"host" envconfig:"DB_HOST" default:"localhost"`
	Port     string `yaml:"port" envconfig:"DB_PORT" default:"5432"`
	User     string `yaml:"user" envconfig:"DB_USER" default:"postgres"`
	Password string `yaml:"password" envconfig:"DB_PASSWORD" json:"-"`
	NameDB   string `yaml:"name" envconfig:"DB_NAME" default:"bookstore"`
	SSLMode  string `yaml:"sslmode" envconfig:"DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `yaml:"maxOpenConns" envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `yaml:"maxIdleConns" envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime" envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
}

func (cfg *DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.NameDB,
		RawQuery: fmt.Sprintf("sslmode=%s", cfg.SSLMode),
	}
	return u.String()
}

// NewPostgresDB connects through the pgx stdlib driver and applies the embedded migrations.
func NewPostgresDB(ctx context.Context, cfg *DB, migrations fs.FS, log *zap.Logger) (*sqlx.DB, error) {
	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := migrate.Run(ctx, db.DB, migrate.DialectPostgres, migrations, migrate.Up, log); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Connect opens the pool without running migrations.
func Connect(ctx context.Context, cfg *DB) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, DriverName, cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "sqlx.ConnectContext")
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}
