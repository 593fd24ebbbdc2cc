package migrate

import (
	"context"
	"database/sql"
	"io/fs"
	"sync"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

type Command string

const (
	Up     Command = "up"
	Down   Command = "down"
	Status Command = "status"
)

// goose keeps its file system and dialect in package state.
var mu sync.Mutex

// Run applies cmd to db using the goose files at the root of migrations.
func Run(ctx context.Context, db *sql.DB, dialect string, migrations fs.FS, cmd Command, log *zap.Logger) error {
	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{log: log.Named("goose").Sugar()})

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "goose.SetDialect")
	}

	var err error
	switch cmd {
	case Up:
		err = goose.UpContext(ctx, db, ".")
	case Down:
		err = goose.DownContext(ctx, db, ".")
	case Status:
		err = goose.StatusContext(ctx, db, ".")
	default:
		return errors.Errorf("unknown migrate command %q", cmd)
	}
	return errors.Wrapf(err, "goose %s", cmd)
}

type gooseLogger struct {
	log *zap.SugaredLogger
}

func (l gooseLogger) Fatal(v ...interface{})                 { l.log.Fatal(v...) }
func (l gooseLogger) Fatalf(format string, v ...interface{}) { l.log.Fatalf(format, v...) }
func (l gooseLogger) Print(v ...interface{})                 { l.log.Info(v...) }
func (l gooseLogger) Println(v ...interface{})               { l.log.Info(v...) }
func (l gooseLogger) Printf(format string, v ...interface{}) { l.log.Infof(format, v...) }
